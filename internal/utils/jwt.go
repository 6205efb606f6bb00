package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/pulse-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("jwt token is invalid")

// GenerateDeviceToken creates a signed HMAC-SHA256 JWT for a device session.
//
// Standard claims carried by the token:
//   - Issuer    (iss): the hub service name
//   - Subject   (sub): the device identifier
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + tokenDuration
func GenerateDeviceToken(issuer, deviceID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || deviceID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating device token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   deviceID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing device token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed}, nil
}

// ValidateDeviceToken parses and verifies a signed device token and returns
// the device identifier from its subject claim. Expired, malformed and
// wrongly-signed tokens all yield ErrTokenInvalid.
func ValidateDeviceToken(signedToken, signKey string) (string, error) {
	token, err := jwt.ParseWithClaims(signedToken, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(signKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
