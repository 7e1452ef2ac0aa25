package dto

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
)

// ToFields converts a request into the partial field set the repositories
// write. Only fields present in the request (non-nil pointers, non-empty
// omitempty values) are included.
func ToFields(req any) (domain.Fields, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request fields: %w", err)
	}
	fields := domain.Fields{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode request fields: %w", err)
	}
	return fields, nil
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// DeleteResponse acknowledges a delete, whether or not the record existed.
type DeleteResponse struct {
	Message string `json:"message"`
}

// GuarantorRequest is a guarantor as supplied by clients. The id may be a
// string or a number.
type GuarantorRequest struct {
	ID               domain.FlexString `json:"id,omitempty"`
	Name             string            `json:"name" binding:"required"`
	ResidenceAddress string            `json:"residenceAddress"`
	PermanentAddress string            `json:"permanentAddress"`
	MobileNumber     string            `json:"mobileNumber"`
}
