package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	// AccessTokenCookieName is the cookie the access token travels in.
	AccessTokenCookieName = "bookly.access-token"
	// AccessTokenDuration is the lifetime of a regular session token.
	AccessTokenDuration = 7 * 24 * time.Hour
	// KeyID is pinned in the token header so tokens minted with a future
	// key scheme can be rejected.
	KeyID  = "v1"
	Issuer = "bookly"
)

type ClaimsMessage struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateAccessToken returns a signed access token for the given user.
func GenerateAccessToken(email string, userID int32, expireTime time.Time, secret []byte) (string, error) {
	registeredClaims := jwt.RegisteredClaims{
		Issuer:   Issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
		Subject:  fmt.Sprint(userID),
	}
	if !expireTime.IsZero() {
		registeredClaims.ExpiresAt = jwt.NewNumericDate(expireTime)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ClaimsMessage{
		Email:            email,
		RegisteredClaims: registeredClaims,
	})
	token.Header["kid"] = KeyID

	accessToken, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}
	return accessToken, nil
}

// ParseAccessToken validates the signature, algorithm and key id of the
// given token and returns its claims.
func ParseAccessToken(accessToken string, secret []byte) (*ClaimsMessage, error) {
	claims := &ClaimsMessage{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Name {
			return nil, errors.New("unexpected signing method")
		}
		if kid, ok := t.Header["kid"].(string); !ok || kid != KeyID {
			return nil, errors.New("unexpected key id")
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.New("invalid or expired access token")
	}
	return claims, nil
}
