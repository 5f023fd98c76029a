package auth

import (
	"testing"
	"time"

	"georemind/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_device_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{DeviceSecret: testSecret, TokenTTL: time.Hour},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateDeviceToken("pixel-7")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "pixel-7", claims.DeviceID)
	assert.Equal(t, "pixel-7", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)

	_, err = NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	require.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{DeviceSecret: testSecret}})
	require.NoError(t, err)

	assert.Equal(t, 30*24*time.Hour, svc.(*jwtService).ttl)
}

func TestJWTService_RejectsEmptyDeviceID(t *testing.T) {
	_, err := newTestJWTService(t).GenerateDeviceToken("")
	require.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService(t)

	valid, err := svc.GenerateDeviceToken("pixel-7")
	require.NoError(t, err)

	otherSvc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{DeviceSecret: "another_secret_key_for_testing_only"},
	})
	require.NoError(t, err)
	foreign, err := otherSvc.GenerateDeviceToken("pixel-7")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"device_id": "pixel-7",
		"iss":       issuer,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "tampered", token: valid + "x"},
		{name: "foreign secret", token: foreign},
		{name: "unsigned", token: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateDeviceToken("pixel-7")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}
