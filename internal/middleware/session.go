package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shorturlweb/internal/models"
)

// contextKey используется как ключ для значений в контексте.
type contextKey string

const (
	// UserIDKey используется как ключ для хранения ID пользователя в контексте.
	UserIDKey contextKey = "user_id"

	sessionCookieName = "session"
	sessionLifetime   = 24 * time.Hour
)

// WithSession middleware выдает и проверяет сессионную куку пользователя.
// Кука содержит подписанный JWT с идентификатором пользователя; при
// отсутствии или невалидности куки выдается новая.
func WithSession(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err == nil {
				claims := &models.SessionClaims{}
				token, err := jwt.ParseWithClaims(cookie.Value, claims,
					func(t *jwt.Token) (interface{}, error) {
						if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
							return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
						}
						return []byte(secret), nil
					})
				if err == nil && token.Valid {
					ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			// Куки нет или она невалидна - выдаем новую.
			userID := uuid.New().String()
			signed, err := createSessionToken(userID, secret)
			if err != nil {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    signed,
				Path:     "/",
				Expires:  time.Now().Add(sessionLifetime),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// createSessionToken создает подписанный JWT сессии пользователя.
func createSessionToken(userID, secret string) (string, error) {
	claims := &models.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
