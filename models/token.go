package models

import "github.com/golang-jwt/jwt/v5"

// Token pairs a parsed JWT with its signed string representation.
type Token struct {
	Token        *jwt.Token
	SignedString string
}
