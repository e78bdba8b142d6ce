package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-event-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key"
)

var testUser = models.User{UserID: "u-1", Name: "alice", Tier: models.TierPending}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	token, err := GenerateJWTToken(testUser, testIssuer, time.Hour, testKey, issuedAt)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	require.NotNil(t, token.Token)

	claims := token.Claims
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, models.TierPending, claims.Tier)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, issuedAt, claims.IssuedAt.Time.UTC())
	assert.Equal(t, issuedAt.Add(time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		user     models.User
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty name", models.User{}, "iss", time.Hour, "key"},
		{"empty issuer", testUser, "", time.Hour, "key"},
		{"zero duration", testUser, "iss", 0, "key"},
		{"negative duration", testUser, "iss", -time.Minute, "key"},
		{"empty key", testUser, "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.user, tt.issuer, tt.duration, tt.key, time.Now())
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_ExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := GenerateJWTToken(testUser, testIssuer, time.Hour, testKey, issuedAt)
	require.NoError(t, err)

	t.Run("valid at T+59m", func(t *testing.T) {
		parsed, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, fixedClock(issuedAt.Add(59*time.Minute)))
		require.NoError(t, err)
		assert.Equal(t, "alice", parsed.Claims.Name)
		assert.Equal(t, models.TierPending, parsed.Claims.Tier)
	})

	t.Run("expired at T+61m", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, fixedClock(issuedAt.Add(61*time.Minute)))
		require.Error(t, err)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	now := time.Now()
	valid, err := GenerateJWTToken(testUser, testIssuer, time.Hour, testKey, now)
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, valid.Claims)
	hs512String, err := hs512.SignedString([]byte(testKey))
	require.NoError(t, err)

	unnamed := jwt.NewWithClaims(jwt.SigningMethodHS256, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	unnamedString, err := unnamed.SignedString([]byte(testKey))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, models.TokenClaims{
		Name:             "alice",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer},
	})
	noExpiryString, err := noExpiry.SignedString([]byte(testKey))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", testIssuer},
		{"wrong issuer", valid.SignedString, testKey, "other-issuer"},
		{"garbage", "not.a.token", testKey, testIssuer},
		{"empty", "", testKey, testIssuer},
		{"other signing method", hs512String, testKey, testIssuer},
		{"missing username", unnamedString, testKey, testIssuer},
		{"missing expiry", noExpiryString, testKey, testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, time.Now)
			assert.Error(t, err)
		})
	}
}
