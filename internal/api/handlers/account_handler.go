package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/dmarques/postline-be/internal/auth"
	"github.com/dmarques/postline-be/internal/services"
)

// AccountHandler handles HTTP requests for registration, login, and the
// authenticated user's profile.
type AccountHandler struct {
	service services.AccountServiceProvider
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider) *AccountHandler {
	return &AccountHandler{service: service}
}

// CredentialsPayload defines the structure for register and login requests.
type CredentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration and returns a token for the new
// account.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Register(r.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			respondError(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, services.ErrDuplicateEmail):
			// Duplicate registration surfaces as a generic internal error,
			// not 409.
			log.Warn().Str("email", payload.Email).Msg("Duplicate registration attempt")
			respondError(w, http.StatusInternalServerError, "Failed to register user")
		default:
			log.Error().Err(err).Msg("Failed to register user")
			respondError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"token": token})
}

// Login handles user authentication and token generation.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			respondError(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, services.ErrInvalidCredentials):
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			log.Error().Err(err).Msg("Login failed")
			respondError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GetMe retrieves the currently authenticated user's profile.
func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user ID from context")
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	user, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// The record can vanish after the token was issued.
			log.Warn().Str("user_id", userID).Msg("User from token not found")
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load user")
		respondError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
