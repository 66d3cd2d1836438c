package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/postkeeper/internal/server/storage"
	"github.com/iudanet/postkeeper/pkg/api"
)

// UsersHandler handles /api/users
type UsersHandler struct {
	logger  *slog.Logger
	storage storage.UserStorage
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(logger *slog.Logger, users storage.UserStorage) *UsersHandler {
	return &UsersHandler{
		logger:  logger,
		storage: users,
	}
}

// List обрабатывает GET /api/users, пользователи отсортированы по имени
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.storage.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("Failed to list users", "error", err)
		sendError(w, h.logger, "Failed to fetch users", http.StatusInternalServerError)
		return
	}

	out := make([]api.User, 0, len(users))
	for _, u := range users {
		out = append(out, api.UserFromModel(u))
	}

	sendJSON(w, h.logger, api.Envelope[[]api.User]{Data: out}, http.StatusOK)
}
