package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTokenWithSecret(t *testing.T, secret string, claims jwtlib.Claims) string {
	t.Helper()
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestCreateToken_AndDecode(t *testing.T) {
	mgr := NewJwtManager("test-secret", 0)

	token, err := mgr.CreateToken("ops")
	require.NoError(t, err)
	require.NoError(t, mgr.ValidateToken(token))

	claims, err := mgr.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	signed := signTokenWithSecret(t, "other-secret", &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		IssuedAt: jwtlib.NewNumericDate(time.Now()),
	}})

	err := NewJwtManager("test-secret", time.Minute).ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	signed := signTokenWithSecret(t, "expire-secret", &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
	}})

	err := NewJwtManager("expire-secret", time.Minute).ValidateToken(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	unsigned, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, &Claims{}).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.ErrorIs(t, NewJwtManager("s", time.Minute).ValidateToken(unsigned), ErrInvalidToken)
	assert.ErrorIs(t, NewJwtManager("s", time.Minute).ValidateToken("not-a-token"), ErrInvalidToken)
}
