package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"creatorhub/internal/apperr"
	"creatorhub/internal/db"
	"creatorhub/internal/middleware"
	"creatorhub/internal/models"
	"creatorhub/internal/youtube"
)

const (
	platformYouTube = "youtube"
	statePrefix     = "user:"
)

// Connect returns the provider consent URL for the authenticated user.
// The state parameter round-trips through the provider unsigned and is the
// sole correlation back to the user on callback.
func (h *Handlers) Connect(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, errors.New("user not in context"))
		return
	}

	state := fmt.Sprintf("%s%d", statePrefix, user.ID)
	writeJSON(w, http.StatusOK, map[string]string{
		"auth_url": h.youtube.AuthCodeURL(state),
	})
}

// Callback completes the authorization-code exchange: it trades the code for
// tokens, resolves the linked channel, encrypts the credentials and upserts
// the channel record for the user carried in state.
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	if code == "" || !strings.HasPrefix(state, statePrefix) {
		apperr.Write(w, apperr.Invalid("Invalid state"))
		return
	}
	userID, err := strconv.ParseInt(strings.TrimPrefix(state, statePrefix), 10, 64)
	if err != nil {
		apperr.Write(w, apperr.Invalid("Invalid state"))
		return
	}

	user, err := db.GetUserByID(userID)
	if err != nil {
		apperr.Write(w, apperr.Invalid("User not found"))
		return
	}

	tokens, err := h.youtube.Exchange(r.Context(), code)
	if err != nil {
		apperr.Write(w, err)
		return
	}

	channel, err := h.youtube.MyChannel(r.Context(), tokens.AccessToken)
	if err != nil {
		apperr.Write(w, err)
		return
	}

	accessEnc, err := h.cipher.Encrypt([]byte(tokens.AccessToken))
	if err != nil {
		h.log.Errorf("Failed to encrypt access token: %v", err)
		apperr.Write(w, err)
		return
	}
	refreshEnc := ""
	if tokens.RefreshToken != "" {
		refreshEnc, err = h.cipher.Encrypt([]byte(tokens.RefreshToken))
		if err != nil {
			h.log.Errorf("Failed to encrypt refresh token: %v", err)
			apperr.Write(w, err)
			return
		}
	}

	expiry := time.Now().UTC().Add(time.Duration(tokens.ExpiresIn) * time.Second)

	saved, err := db.UpsertChannel(&models.Channel{
		UserID:            user.ID,
		Platform:          platformYouTube,
		PlatformChannelID: channel.ID,
		ChannelTitle:      channel.Snippet.Title,
		ChannelURL:        youtube.WatchURL(channel.ID),
		AccessTokenEnc:    accessEnc,
		RefreshTokenEnc:   refreshEnc,
		TokenExpiryISO:    expiry.Format(time.RFC3339),
	})
	if err != nil {
		// No row back means the pair is claimed by another user; a unique
		// violation means a concurrent callback won the insert.
		if errors.Is(err, sql.ErrNoRows) || db.IsUniqueViolation(err) {
			apperr.Write(w, apperr.Conflict("Channel already linked to another user"))
			return
		}
		h.log.Errorf("Failed to upsert channel: %v", err)
		apperr.Write(w, err)
		return
	}

	h.log.Infof("Channel %s linked for user %d", saved.PlatformChannelID, user.ID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"message": "YouTube channel linked. You can close this window.",
	})
}
