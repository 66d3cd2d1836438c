package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/postkeeper/pkg/api"
)

// Сообщения об ошибках, которые видит клиент
const (
	msgInvalidBody   = "Invalid request body"
	msgInvalidPostID = "Invalid post ID"
	msgPostNotFound  = "Post not found"
	msgUserNotFound  = "User not found"
	msgUnexpected    = "An unexpected error occurred"
)

// sendJSON отправляет JSON ответ
func sendJSON(w http.ResponseWriter, logger *slog.Logger, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendRaw отправляет уже сериализованный JSON (например, из кеша)
func sendRaw(w http.ResponseWriter, logger *slog.Logger, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	sendJSON(w, logger, api.ErrorResponse{Error: message}, statusCode)
}
