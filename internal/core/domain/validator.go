package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reads the same "binding" tags gin
// uses, so entity reconstruction and request binding share one contract.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	if err := RegisterValidations(v); err != nil {
		// Only reachable with a malformed tag name.
		panic(err)
	}
	return v
}

// RegisterValidations installs the enum and payment-record rules and reports
// fields by their JSON names.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		"payment_mode":     enumRule(func(s string) bool { return PaymentMode(s).IsValid() }),
		"loan_status":      enumRule(func(s string) bool { return LoanStatus(s).IsValid() }),
		"loan_type":        enumRule(func(s string) bool { return LoanType(s).IsValid() }),
		"notice_status":    enumRule(func(s string) bool { return NoticeStatus(s).IsValid() }),
		"transaction_type": enumRule(func(s string) bool { return TransactionType(s).IsValid() }),
		"payment_record":   validPaymentRecord,
		"account_id":       enumRule(ValidAccountID),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return nil
}

func enumRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return valid(fl.Field().String())
	}
}

func validPaymentRecord(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Map || f.Type().Key().Kind() != reflect.String {
		return false
	}
	for _, k := range requiredPaymentRecordKeys {
		if !f.MapIndex(reflect.ValueOf(k).Convert(f.Type().Key())).IsValid() {
			return false
		}
	}
	return true
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

var ruleMessages = map[string]string{
	"required":         "is required",
	"payment_mode":     "must be one of Cash, Bank Transfer, Cheque, UPI",
	"loan_status":      "must be one of Active, Pending, Closed",
	"loan_type":        "must be one of Cash Loan, Gold Loan, Home Loan",
	"notice_status":    "must be one of Pending, Resolved",
	"transaction_type": "must be one of Payment, Loan Issue, Interest",
	"payment_record":   "must include date and amount",
	"account_id":       "must be a single path segment of letters, digits and _.@:-",
}

// AsValidationError converts a binding, decoding or validation failure into
// a *apperrors.ValidationError naming the offending JSON field.
func AsValidationError(err error) *apperrors.ValidationError {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg, ok := ruleMessages[fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed the %q rule", fe.Tag())
		}
		return apperrors.NewValidationError(fieldPath(fe.Namespace()), msg)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewValidationError(typeErr.Field, "must be of type "+typeErr.Type.String())
	}

	return apperrors.NewValidationError("", err.Error())
}

// fieldPath drops the root struct name from a validator namespace,
// "Loan.guarantors[0].name" becomes "guarantors[0].name".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
