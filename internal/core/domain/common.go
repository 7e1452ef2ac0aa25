package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Fields is a partial entity in its API-facing (camelCase) form.
// Create and update operations pass only the fields the caller supplied.
type Fields map[string]any

// Has reports whether key is present with a non-nil, non-empty value.
func (f Fields) Has(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString && s == "" {
		return false
	}
	return true
}

// FlexString is an identifier that may arrive as a JSON string or a JSON number.
// It always marshals as a string, so "42", 42 and 42.0 address the same record.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("identifier must be a string or a number: %w", err)
	}
	*s = FlexString(numberString(num))
	return nil
}

func numberString(num json.Number) string {
	if i, err := num.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := num.Float64(); err == nil {
		s, _ := StringifyID(f)
		return s
	}
	return num.String()
}

func (s FlexString) String() string {
	return string(s)
}

// StringifyID renders a stored identifier value as a string.
// Integral floats lose their fraction so 42.0 becomes "42".
func StringifyID(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, true
	case FlexString:
		return string(id), true
	case int:
		return strconv.Itoa(id), true
	case int32:
		return strconv.FormatInt(int64(id), 10), true
	case int64:
		return strconv.FormatInt(id, 10), true
	case float64:
		if id == float64(int64(id)) {
			return strconv.FormatInt(int64(id), 10), true
		}
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case json.Number:
		return numberString(id), true
	default:
		return "", false
	}
}
