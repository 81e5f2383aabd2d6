package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"creatorhub/internal/apperr"
	"creatorhub/internal/db"
	"creatorhub/internal/middleware"
	"creatorhub/internal/models"
)

// ListChannels returns the channels owned by the authenticated user.
func (h *Handlers) ListChannels(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, errors.New("user not in context"))
		return
	}

	channels, err := db.GetChannelsByUserID(user.ID)
	if err != nil {
		h.log.Errorf("Failed to list channels for user %d: %v", user.ID, err)
		apperr.Write(w, err)
		return
	}
	if channels == nil {
		channels = []models.Channel{}
	}

	writeJSON(w, http.StatusOK, map[string][]models.Channel{"channels": channels})
}

// UnlinkChannel deletes a channel owned by the authenticated user. Absent
// and not-owned produce the identical response.
func (h *Handlers) UnlinkChannel(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, errors.New("user not in context"))
		return
	}

	channelID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		apperr.Write(w, apperr.Invalid("Invalid channel ID"))
		return
	}

	deleted, err := db.DeleteChannel(user.ID, channelID)
	if err != nil {
		h.log.Errorf("Failed to delete channel %d for user %d: %v", channelID, user.ID, err)
		apperr.Write(w, err)
		return
	}
	if !deleted {
		apperr.Write(w, apperr.NotFound("Channel not found"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
