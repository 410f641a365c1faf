package password_test

import (
	"errors"
	"testing"

	"lodge/shared/password"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("front-desk-secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "front-desk-secret", hash)

	assert.NoError(t, password.Verify("front-desk-secret", hash))
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerifyMismatch(t *testing.T) {
	hash, err := password.Hash("correct-password")
	assert.NoError(t, err)

	err = password.Verify("wrong-password", hash)
	assert.True(t, errors.Is(err, password.ErrInvalidPassword))
}

func TestVerifyEmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		pass string
		hash string
	}{
		{name: "empty password", pass: "", hash: "some-hash"},
		{name: "empty hash", pass: "some-pass", hash: ""},
		{name: "both empty", pass: "", hash: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.pass, tt.hash)
			assert.True(t, errors.Is(err, password.ErrInvalidPassword))
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same-input")
	assert.NoError(t, err)

	second, err := password.Hash("same-input")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
