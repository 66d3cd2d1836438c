package api

import (
	"encoding/json"
	"time"
)

// Envelope представляет стандартный ответ API: {data, message, error}
type Envelope[T any] struct {
	Data    T      `json:"data,omitzero"`     // полезная нагрузка ответа
	Message string `json:"message,omitempty"` // сообщение об успешной операции
	Error   string `json:"error,omitempty"`   // описание ошибки
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// User представляет автора постов в ответах API
type User struct {
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Phone     *string         `json:"phone"`
	Website   *string         `json:"website"`
	Name      string          `json:"name"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Address   json.RawMessage `json:"address"`
	Company   json.RawMessage `json:"company"`
	ID        int64           `json:"id"`
}

// Post представляет пост в ответах API
type Post struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *User     `json:"user,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
}

// CreatePostRequest представляет запрос на создание поста
type CreatePostRequest struct {
	Title  string `json:"title"`  // заголовок, 1..255 символов
	Body   string `json:"body"`   // текст, 1..5000 символов
	UserID int64  `json:"userId"` // идентификатор существующего пользователя
}

// UpdatePostRequest представляет частичное обновление поста.
// Отсутствующие поля не изменяются.
type UpdatePostRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// PaginatedPosts представляет страницу постов
type PaginatedPosts struct {
	Data       []Post `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
