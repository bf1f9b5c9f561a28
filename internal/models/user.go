package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims представляет собой данные, хранящиеся в сессионной куке.
type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
