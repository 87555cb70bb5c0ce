package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pokerroom-server/internal/config"
	"pokerroom-server/pkg/token"
)

// Issuer issues the JWT
const Issuer = "pokerroom-server"

// Audience is the intended JWT audience
const Audience = "pokerroom-client"

// secretLength is the length of a generated secret
const secretLength = 48

var secret []byte

// LoadKey will load the signing secret from the configuration
// If none is configured, a random secret is generated and tokens will not survive a restart.
// this method should only be called once.
func LoadKey() {
	s := config.Instance().JWT.Secret
	if s == "" {
		var err error
		if s, err = token.Generate(secretLength); err != nil {
			logrus.WithError(err).Fatal("could not generate a jwt secret")
		}

		logrus.Warn("no jwt secret configured, generated a random one")
	}

	secret = []byte(s)
}

// Sign will sign a JWT for the username
func Sign(username string) (string, error) {
	if secret == nil {
		panic("LoadKey() not called")
	}

	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   Issuer,
		Subject:  username,
	})

	return token.SignedString(secret)
}

// ValidUsername will validate a signed JWT and return its username
func ValidUsername(signedString string) (string, error) {
	if secret == nil {
		panic("LoadKey() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &jwtgo.RegisteredClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return secret, nil
	}, jwtgo.WithAudience(Audience), jwtgo.WithIssuer(Issuer))

	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwtgo.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("expected jwt.RegisteredClaims, got %T", token.Claims)
	}

	if claims.Subject == "" {
		return "", errors.New("missing subject")
	}

	return claims.Subject, nil
}
