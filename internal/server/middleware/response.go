package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/postkeeper/pkg/api"
)

// writeError пишет ошибку в формате API конверта
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: msg})
}
