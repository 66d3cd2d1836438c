package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Ошибки, по которым вызывающий код отличает отказ сервера от сбоя сети
var (
	// ErrNotFound сервер ответил 404 (пост или пользователь не найден)
	ErrNotFound = errors.New("not found")

	// ErrValidation сервер отклонил данные (400)
	ErrValidation = errors.New("validation failed")
)

// StatusError is returned for every non-2xx response.
// errors.Is maps 404 to ErrNotFound and 400 to ErrValidation.
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest
	}
	return false
}

// ServerMessage возвращает сообщение сервера, если ошибка пришла от него,
// иначе текст самой ошибки
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return err.Error()
}
