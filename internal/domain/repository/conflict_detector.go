package repository

import (
	"context"

	"pricing/internal/domain/entity"
)

// ConflictDetector guards the read-modify-write of a product price. It runs after a new
// price was decided from product and before the write. Returning an error aborts the write.
type ConflictDetector interface {
	// BeforeCommit checks that product still reflects the stored state.
	BeforeCommit(ctx context.Context, product *entity.Product) error

	// ExpectedPrice returns the price the write should be conditioned on, or nil for an
	// unconditional write.
	ExpectedPrice(product *entity.Product) *float64
}
