package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	cases := map[string]FlexString{
		`"42"`:          "42",
		`42`:            "42",
		`42.0`:          "42",
		`4.2e1`:         "42",
		`1700000000000`: "1700000000000",
		`1.7e12`:        "1700000000000",
		`42.5`:          "42.5",
		`"abc-1"`:       "abc-1",
		`null`:          "",
		`-7.0`:          "-7",
	}
	for in, want := range cases {
		var got FlexString
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		assert.Equal(t, want, got, in)
	}

	var bad FlexString
	assert.Error(t, json.Unmarshal([]byte(`true`), &bad))
}

func TestStringifyID_MatchesFlexString(t *testing.T) {
	for _, v := range []any{42, int64(42), 42.0, json.Number("42.0"), FlexString("42"), "42"} {
		s, ok := StringifyID(v)
		assert.True(t, ok)
		assert.Equal(t, "42", s)
	}

	_, ok := StringifyID([]int{1})
	assert.False(t, ok)
}
