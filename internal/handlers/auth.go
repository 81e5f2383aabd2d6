package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"creatorhub/internal/apperr"
	"creatorhub/internal/auth"
	"creatorhub/internal/db"
	"creatorhub/internal/middleware"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new account from an email and password.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Write(w, apperr.Invalid("Invalid request body"))
		return
	}

	if !strings.Contains(req.Email, "@") {
		apperr.Write(w, apperr.Invalid("Invalid email address"))
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		apperr.Write(w, err)
		return
	}

	if _, err := db.GetUserByEmail(req.Email); err == nil {
		apperr.Write(w, apperr.Conflict("Email already registered"))
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		h.log.Errorf("Failed to check existing email: %v", err)
		apperr.Write(w, err)
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		apperr.Write(w, err)
		return
	}

	user, err := db.CreateUser(req.Email, hash)
	if err != nil {
		// Two concurrent registrations can both pass the existence check;
		// the email uniqueness constraint decides the loser.
		if db.IsUniqueViolation(err) {
			apperr.Write(w, apperr.Conflict("Email already registered"))
			return
		}
		h.log.Errorf("Failed to create user: %v", err)
		apperr.Write(w, err)
		return
	}

	h.log.Infof("User registered: %s", user.Email)
	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

// Login authenticates an account and issues a session token.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Write(w, apperr.Invalid("Invalid request body"))
		return
	}

	if len(req.Password) > auth.MaxPasswordBytes {
		apperr.Write(w, apperr.Invalid("Password too long. Maximum length is 72 characters."))
		return
	}

	user, err := db.GetUserByEmail(req.Email)
	if err != nil || !h.hasher.Verify(req.Password, user.PasswordHash) {
		apperr.Write(w, apperr.Unauthenticated("Invalid credentials"))
		return
	}

	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		h.log.Errorf("Failed to issue token: %v", err)
		apperr.Write(w, err)
		return
	}

	h.log.Infof("User logged in: %s", user.Email)
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated user's identity.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, errors.New("user not in context"))
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Email: user.Email})
}
