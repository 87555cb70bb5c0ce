package jwt

import (
	"testing"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupSecret() {
	secret = []byte("test-secret")
}

func signClaims(t *testing.T, claims jwtgo.RegisteredClaims) string {
	t.Helper()

	signedToken, err := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	return signedToken
}

func TestSignAndValidUsername(t *testing.T) {
	setupSecret()

	sign, err := Sign("alice")
	assert.NoError(t, err)

	username, err := ValidUsername(sign)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestValidUsername_InvalidAudience(t *testing.T) {
	setupSecret()

	signedToken := signClaims(t, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{"different-audience"},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   Issuer,
		Subject:  "alice",
	})

	username, err := ValidUsername(signedToken)
	assert.ErrorIs(t, err, jwtgo.ErrTokenInvalidAudience)
	assert.Equal(t, "", username)
}

func TestValidUsername_InvalidIssuer(t *testing.T) {
	setupSecret()

	signedToken := signClaims(t, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   "invalid-issuer",
		Subject:  "alice",
	})

	username, err := ValidUsername(signedToken)
	assert.ErrorIs(t, err, jwtgo.ErrTokenInvalidIssuer)
	assert.Equal(t, "", username)
}

func TestValidUsername_Expired(t *testing.T) {
	setupSecret()

	signedToken := signClaims(t, jwtgo.RegisteredClaims{
		Audience:  jwtgo.ClaimStrings{Audience},
		ID:        uuid.New().String(),
		IssuedAt:  jwtgo.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwtgo.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		Issuer:    Issuer,
		Subject:   "alice",
	})

	username, err := ValidUsername(signedToken)
	assert.ErrorIs(t, err, jwtgo.ErrTokenExpired)
	assert.Equal(t, "", username)
}

func TestValidUsername_WrongSecret(t *testing.T) {
	setupSecret()
	sign, err := Sign("alice")
	assert.NoError(t, err)

	secret = []byte("another-secret")
	_, err = ValidUsername(sign)
	assert.ErrorIs(t, err, jwtgo.ErrTokenSignatureInvalid)
}

func TestValidUsername_MissingSubject(t *testing.T) {
	setupSecret()

	signedToken := signClaims(t, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		Issuer:   Issuer,
	})

	_, err := ValidUsername(signedToken)
	assert.EqualError(t, err, "missing subject")
}
