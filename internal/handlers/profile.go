package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"lastomo-app/internal/logger"
	"lastomo-app/internal/store"
	"lastomo-app/pkg/validation"
)

// ProfileRequest carries the optional profile fields. Pointer fields
// distinguish "absent" from "empty" so missing values persist as NULL.
type ProfileRequest struct {
	Username        *string `json:"username"`
	Nickname        *string `json:"nickname"`
	Email           *string `json:"email"`
	Gender          *string `json:"gender"`
	Age             *int    `json:"age"`
	Occupation      *string `json:"occupation"`
	FamilyStructure *string `json:"familyStructure"`
	Location        *string `json:"location"`
	Nationality     *string `json:"nationality"`
	Religion        *string `json:"religion"`
}

type ProfileResponse struct {
	Message string `json:"message"`
}

// ProfileHandler handles POST /api/profile: it validates the body and
// inserts one denormalized profile row. No generated identifier is
// returned to the caller.
func (h *Handlers) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || !validation.IsJSONObject(body) {
		sendError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var req ProfileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	record := &store.ProfileRecord{
		Username:        req.Username,
		Nickname:        req.Nickname,
		Email:           req.Email,
		Gender:          req.Gender,
		Age:             req.Age,
		Occupation:      req.Occupation,
		FamilyStructure: req.FamilyStructure,
		Location:        req.Location,
		Nationality:     req.Nationality,
		Religion:        req.Religion,
	}

	if err := h.store.SaveProfile(record); err != nil {
		// Store errors stay server-side; the caller gets a generic message.
		logger.Log.WithField("error", err.Error()).Error("Profile insert failed")
		sendError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	sendJSON(w, http.StatusOK, ProfileResponse{Message: "Profile saved successfully"})
}
