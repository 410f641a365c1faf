package reference_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"lodge/shared/reference"

	"github.com/stretchr/testify/assert"
)

var referencePattern = regexp.MustCompile(`^BK\d{8}$`)

func TestGenerate_Format(t *testing.T) {
	ref, err := reference.Generate(context.Background(), func(ctx context.Context, candidate string) (bool, error) {
		return false, nil
	})

	assert.NoError(t, err)
	assert.Regexp(t, referencePattern, ref)
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	calls := 0

	ref, err := reference.Generate(context.Background(), func(ctx context.Context, candidate string) (bool, error) {
		calls++

		// First two candidates are taken, third is free.
		return calls < 3, nil
	})

	assert.NoError(t, err)
	assert.Regexp(t, referencePattern, ref)
	assert.Equal(t, 3, calls)
}

func TestGenerate_Exhaustion(t *testing.T) {
	calls := 0

	ref, err := reference.Generate(context.Background(), func(ctx context.Context, candidate string) (bool, error) {
		calls++

		return true, nil
	})

	assert.Empty(t, ref)
	assert.True(t, errors.Is(err, reference.ErrAllocationExhausted))
	assert.Equal(t, 5, calls)
}

func TestGenerate_ExistsCheckError(t *testing.T) {
	boom := errors.New("store unavailable")

	ref, err := reference.Generate(context.Background(), func(ctx context.Context, candidate string) (bool, error) {
		return false, boom
	})

	assert.Empty(t, ref)
	assert.True(t, errors.Is(err, boom))
}

func TestGenerate_DistinctAcrossCalls(t *testing.T) {
	seen := map[string]bool{}

	for range 50 {
		ref, err := reference.Generate(context.Background(), func(ctx context.Context, candidate string) (bool, error) {
			return seen[candidate], nil
		})

		assert.NoError(t, err)
		assert.False(t, seen[ref], "reference %s allocated twice", ref)

		seen[ref] = true
	}
}
