package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeToCamel(t *testing.T) {
	cases := map[string]string{
		"borrower_name":         "borrowerName",
		"address_as_per_aadhar": "addressAsPerAadhar",
		"file_id":               "fileId",
		"emi":                   "emi",
		"loan_ID":               "loanId",
		"a__b":                  "aB",
		"":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, SnakeToCamel(in), in)
	}
}

func TestCamelToSnake(t *testing.T) {
	cases := map[string]string{
		"borrowerName":       "borrower_name",
		"addressAsPerAadhar": "address_as_per_aadhar",
		"fileId":             "file_id",
		"emi":                "emi",
		"ID":                 "i_d",
		"":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, CamelToSnake(in), in)
	}
}

func TestKeyTranslationRoundTrip(t *testing.T) {
	fields := []string{
		"id", "borrowerName", "phoneNumber", "lastAmount", "emi", "startDate", "endDate",
		"interestRate", "paymentMode", "totalLoan", "paidAmount", "status", "loanType",
		"createdAt", "updatedAt", "profilePhoto", "occupation", "address", "addressAsPerAadhar",
		"nave", "haste", "purava", "guarantors", "paymentRecords", "loanId", "name", "type",
		"uploadedAt", "fileName", "fileId", "fileSize", "borrowerId", "amountDue", "noticeDate",
		"description", "amount", "date", "residenceAddress", "permanentAddress", "mobileNumber",
	}
	for _, f := range fields {
		assert.Equal(t, f, SnakeToCamel(CamelToSnake(f)), f)
	}
}

func TestKeysToSnake_Nested(t *testing.T) {
	in := map[string]any{
		"borrowerName": "Ravi",
		"guarantors": []any{
			map[string]any{"mobileNumber": "98", "residenceAddress": "Pune"},
		},
		"paymentRecords": []map[string]any{{"date": "2024-01-01", "amount": 500.0}},
		"meta":           map[string]any{"lastSeenAt": "x"},
	}

	got := KeysToSnake(in)

	assert.Equal(t, "Ravi", got["borrower_name"])
	guarantor := got["guarantors"].([]any)[0].(map[string]any)
	assert.Equal(t, "98", guarantor["mobile_number"])
	assert.Equal(t, "Pune", guarantor["residence_address"])
	assert.Equal(t, 500.0, got["payment_records"].([]map[string]any)[0]["amount"])
	assert.Equal(t, "x", got["meta"].(map[string]any)["last_seen_at"])

	assert.Equal(t, in, KeysToCamel(got))
	_, mutated := in["borrower_name"]
	assert.False(t, mutated, "input map must not be modified")
}

func TestKeysOpaqueValuesRoundTrip(t *testing.T) {
	in := map[string]any{
		"occupation": "Farmer",
		"paymentRecords": []any{
			map[string]any{"date": "2024-01-05", "amount": 5000.0, "UPIRef": "AXIS123", "paidVia": "UPI"},
		},
	}

	stored := KeysToSnake(in, "paymentRecords")
	record := stored["payment_records"].([]any)[0].(map[string]any)
	assert.Equal(t, "AXIS123", record["UPIRef"])
	assert.Equal(t, "UPI", record["paidVia"])
	assert.NotContains(t, record, "u_p_i_ref")

	assert.Equal(t, in, KeysToCamel(stored, "paymentRecords"))

	// Without the opaque key the acronym does not survive.
	lossy := KeysToCamel(KeysToSnake(in))
	assert.Equal(t, "AXIS123", lossy["paymentRecords"].([]any)[0].(map[string]any)["uPIRef"])
}

func TestKeysToCamel_Nil(t *testing.T) {
	assert.Nil(t, KeysToCamel(nil))
}
