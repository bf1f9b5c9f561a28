package client

import "fmt"

// AuthError возвращается, когда эндпоинт выдачи токена ответил не-2xx статусом.
type AuthError struct {
	Status     int
	StatusText string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth request failed: %s", e.StatusText)
}

// APIError возвращается, когда REST API ответил не-2xx статусом.
type APIError struct {
	Status     int
	StatusText string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed: %s", e.StatusText)
}
