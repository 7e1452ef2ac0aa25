package services

import "context"

type HealthSvc interface {
	// CheckStore reports whether the document store answers.
	CheckStore(ctx context.Context) error
}
