package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-report-server/config"
	"waste-report-server/types"
)

func setupConfig(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 1}}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rajesh-pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("rajesh-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("rajesh-pass", "not-a-hash"))
}

func TestGenerateAndVerifyToken(t *testing.T) {
	setupConfig(t)

	token, err := GenerateToken(7, "priya@waste.gov", types.RoleWorker)
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.SubjectID)
	assert.Equal(t, "priya@waste.gov", claims.Email)
	assert.Equal(t, types.RoleWorker, claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	setupConfig(t)
	token, err := GenerateToken(1, "admin@panchayat.gov", types.RoleAdmin)
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "rotated"

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_RejectsNoneAlgorithm(t *testing.T) {
	setupConfig(t)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &types.Claims{Role: types.RoleAdmin})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyToken(tokenString)
	assert.Error(t, err)
}
