package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenExpiry reads the exp claim out of a JWT bearer token without
// verifying the signature. The client holds no keys; verification is the
// backend's job. Used only for diagnostics during restore.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "[TokenExpiry] parse token")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "[TokenExpiry] exp claim")
	}
	if exp == nil {
		return time.Time{}, errors.New("[TokenExpiry] token has no exp claim")
	}
	return exp.Time, nil
}
