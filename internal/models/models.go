// Package models содержит модели данных, которыми обменивается приложение с REST API.
package models

import "time"

// ShortURL представляет короткую ссылку, возвращаемую API.
type ShortURL struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Page представляет одну страницу результатов листинга.
// Порядок элементов в Content задаётся сервером и не пересортировывается.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"number_of_elements"`
	TotalElements    int64 `json:"total_elements"`
	TotalPages       int   `json:"total_pages"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
}

// Envelope представляет конверт ответа API; потребляется только поле Data.
type Envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// CreateShortURLRequest представляет тело запроса на создание короткой ссылки.
// Пустое описание передается как null, как того ожидает API.
type CreateShortURLRequest struct {
	URL         string  `json:"url"`
	Description *string `json:"description"`
}

// TokenResponse представляет ответ эндпоинта выдачи токена.
type TokenResponse struct {
	TokenValue string `json:"token_value"`
}
