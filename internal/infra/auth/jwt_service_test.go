package auth

import (
	"testing"
	"time"

	"pricing/config"
	"pricing/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	operatorID := uuid.New()
	roles := entity.Roles{entity.RolePricingAdmin}.ToStrings()

	token, err := svc.IssueToken(operatorID, roles, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, operatorID, claims.OperatorID)
	assert.Equal(t, operatorID.String(), claims.Subject)
	assert.Equal(t, roles, claims.Roles)
}

func TestJWTService_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("a_different_secret_of_sufficient_length"))
	require.NoError(t, err)

	foreign, err := other.IssueToken(uuid.New(), nil, time.Hour)
	require.NoError(t, err)

	expired, err := svc.IssueToken(uuid.New(), nil, -time.Minute)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "invalid.token.string"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "no expiry", token: noExpiry},
		{name: "subject not uuid", token: badSubject},
		{name: "alg none", token: noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
