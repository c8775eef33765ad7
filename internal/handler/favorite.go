package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/service"
)

// FavoriteHandler exposes bookmark operations over HTTP.
type FavoriteHandler struct {
	favorites *service.FavoriteService
	logger    *slog.Logger
}

func NewFavoriteHandler(favorites *service.FavoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, logger: logger}
}

// HandleAdd bookmarks an artwork.
//
// HTTP: POST /api/favorites
// REQUEST BODY: {"userId": 1, "artworkId": 2}
//
// Responds 201 whether the favorite was just created or already existed —
// the add is idempotent and the stored record is returned either way.
func (h *FavoriteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var in model.InsertFavorite
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Warn("invalid favorite JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("Invalid favorite data", nil), "")
		return
	}

	favorite, err := h.favorites.Add(r.Context(), in)
	if err != nil {
		writeError(w, err, "Failed to add favorite")
		return
	}
	writeJSON(w, http.StatusCreated, favorite)
}

// HandleListForUser returns the artworks a user has bookmarked.
//
// HTTP: GET /api/favorites/{userId}
//
// A non-numeric userId matches no favorites and yields an empty array, the
// same as an unknown user.
func (h *FavoriteHandler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		writeJSON(w, http.StatusOK, []model.Artwork{})
		return
	}

	artworks, err := h.favorites.UserFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Failed to fetch favorites")
		return
	}
	writeJSON(w, http.StatusOK, artworks)
}

// HandleRemove deletes a favorite.
//
// HTTP: DELETE /api/favorites/{id}
//
// Always 204: deleting an absent (or non-numeric) id removes nothing and
// still succeeds.
func (h *FavoriteHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.favorites.Remove(r.Context(), id); err != nil {
		writeError(w, err, "Failed to remove favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
