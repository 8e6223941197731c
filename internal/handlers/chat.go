package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"lastomo-app/internal/llm"
	"lastomo-app/internal/logger"
	"lastomo-app/pkg/validation"

	"github.com/sirupsen/logrus"
)

type ChatRequest struct {
	Message string        `json:"message"`
	History []llm.Message `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ChatHandler handles POST /api/chat: it assembles the conversation context,
// forwards it to the completion provider, and returns the generated text.
// No state is persisted on this path.
func (h *Handlers) ChatHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || !validation.IsJSONObject(body) {
		sendError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var req ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validation.ValidateMessage(req.Message); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.chat.Respond(req.Message, req.History)
	if err != nil {
		// Provider faults are logged in full but surfaced uniformly: the
		// caller never sees the underlying error text.
		logger.Log.WithFields(logrus.Fields{
			"error":          err.Error(),
			"history_length": len(req.History),
		}).Error("Chat completion failed")
		sendError(w, http.StatusInternalServerError, "Failed to get response from AI")
		return
	}

	sendJSON(w, http.StatusOK, ChatResponse{Response: response})
}
