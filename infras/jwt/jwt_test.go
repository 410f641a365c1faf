package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/config"
	"lodge/infras/jwt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "lodge-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-1", "admin@example.com", "Admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)
}

func TestJWT_ValidateToken_WrongType(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-1", "admin@example.com", "Admin", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.Error(t, err)
}

func TestJWT_ValidateToken_Tampered(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-1", "admin@example.com", "Admin", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken+"x", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestJWT_ValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessExpireMin = -1

	svc := jwt.New(cfg)

	pair, err := svc.GenerateTokenPair("user-1", "admin@example.com", "Admin", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestJWT_RefreshTokens(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-1", "admin@example.com", "Admin", "admin")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}
