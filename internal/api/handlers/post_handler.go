package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/dmarques/postline-be/internal/auth"
	"github.com/dmarques/postline-be/internal/services"
)

// PostHandler handles HTTP requests for the authenticated user's posts.
type PostHandler struct {
	service services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePostPayload defines the structure for post creation requests.
type CreatePostPayload struct {
	Text string `json:"text"`
}

// Create handles post creation. The owner is always the authenticated user.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user ID from context")
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	var payload CreatePostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.CreatePost(r.Context(), userID, payload.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyText) {
			respondError(w, http.StatusBadRequest, "Post text is required")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create post")
		respondError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	respondJSON(w, http.StatusCreated, post)
}

// List returns every post owned by the authenticated user.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user ID from context")
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	posts, err := h.service.ListPostsForUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list posts")
		respondError(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	respondJSON(w, http.StatusOK, posts)
}
