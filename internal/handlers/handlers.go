package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"creatorhub/internal/auth"
	"creatorhub/internal/secrets"
	"creatorhub/internal/youtube"
)

// Handlers bundles the dependencies shared by the HTTP handlers.
type Handlers struct {
	log     *logrus.Logger
	cipher  *secrets.Cipher
	issuer  *auth.TokenIssuer
	hasher  auth.PasswordHasher
	youtube *youtube.Client
}

func New(log *logrus.Logger, cipher *secrets.Cipher, issuer *auth.TokenIssuer, yt *youtube.Client) *Handlers {
	return &Handlers{
		log:     log,
		cipher:  cipher,
		issuer:  issuer,
		hasher:  auth.PasswordHasher{},
		youtube: yt,
	}
}

// Health reports service liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
