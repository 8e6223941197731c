package handlers

import (
	"encoding/json"
	"net/http"

	"lastomo-app/internal/chat"
	"lastomo-app/internal/store"
)

// Handlers bundles the request handlers with their dependencies. The chat
// service and the store are injected so tests can substitute fakes.
type Handlers struct {
	chat  *chat.Service
	store store.Store
}

// NewHandlers creates the handler set
func NewHandlers(chatService *chat.Service, profileStore store.Store) *Handlers {
	return &Handlers{
		chat:  chatService,
		store: profileStore,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// sendJSON writes a JSON response with the given status
func sendJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// sendError writes a standardized JSON error response. The message is what
// the caller sees; any underlying detail stays in the server-side logs.
func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, ErrorResponse{Error: message})
}
