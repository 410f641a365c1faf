// Package reference allocates the short public identifiers handed to guests
// when a booking is accepted. References are human-facing and distinct from
// the internal booking id.
package reference

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

const (
	// Prefix starts every booking reference.
	Prefix = "BK"

	digits      = 8
	maxAttempts = 5
)

// ErrAllocationExhausted is returned when every generated candidate collided
// with an existing reference. The caller must abort the booking without
// leaving a partial write behind.
var ErrAllocationExhausted = errors.New("booking reference space exhausted")

// ExistsFunc reports whether a candidate reference is already taken.
type ExistsFunc func(ctx context.Context, reference string) (bool, error)

// Generate produces a unique booking reference of the form BK followed by
// eight decimal digits. The exists check is an optimization to avoid a
// predictable insert error; the storage-level unique constraint on
// reference_number remains the actual correctness guarantee.
func Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	for range maxAttempts {
		candidate := newCandidate()

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check reference uniqueness: %w", err)
		}

		if !taken {
			return candidate, nil
		}
	}

	return "", ErrAllocationExhausted
}

func newCandidate() string {
	// 10^8 combinations; collisions are a defensive check, not the primary
	// correctness mechanism, so math/rand is enough here.
	return fmt.Sprintf("%s%08d", Prefix, rand.Intn(100000000))
}
