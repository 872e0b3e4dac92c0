package social_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"sportshub/internal/logger"
	"sportshub/internal/models"
	"sportshub/internal/social"
	"sportshub/internal/utils"
)

type Handler struct {
	SocialService *social.Service
	Logger        *logger.Logger
}

func NewHandler(socialService *social.Service, log *logger.Logger) *Handler {
	return &Handler{
		SocialService: socialService,
		Logger:        log,
	}
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req models.GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateGame: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreateGame: validation failed: %v", err))
		http.Error(w, "Invalid game: "+err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.SocialService.CreateGame(r.Context(), req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateGame: %v", err))
		http.Error(w, "Failed to create game: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateGame: game %v created", record["id"]))
	utils.WriteJSON(w, http.StatusCreated, record)
}

// ListGames never fails: store errors come back from the service as an
// empty list.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	docs, err := h.SocialService.ListGames(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListGames: %v", err))
		http.Error(w, "Failed to fetch games: "+err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, docs)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreatePost: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreatePost: validation failed: %v", err))
		http.Error(w, "Invalid post: "+err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.SocialService.CreatePost(r.Context(), req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreatePost: %v", err))
		http.Error(w, "Failed to create post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreatePost: post %v created", record["id"]))
	utils.WriteJSON(w, http.StatusCreated, record)
}

// ListPosts shares the games policy: read failures become an empty list.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	docs, err := h.SocialService.ListPosts(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListPosts: %v", err))
		http.Error(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, docs)
}
