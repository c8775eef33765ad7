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

// ArtworkHandler exposes the catalog over HTTP.
type ArtworkHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

func NewArtworkHandler(catalog *service.CatalogService, logger *slog.Logger) *ArtworkHandler {
	return &ArtworkHandler{catalog: catalog, logger: logger}
}

// HandleList returns the catalog.
//
// HTTP: GET /api/artworks[?style=...|?q=...]
//
// With no query parameters, the full catalog in insertion order. `q` runs
// a case-insensitive substring search over title, description, prompt, and
// style; `style` filters by exact tag ("all" returns everything). `q`
// wins when both are present.
func (h *ArtworkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		artworks []model.Artwork
		err      error
	)

	params := r.URL.Query()
	switch {
	case params.Has("q"):
		artworks, err = h.catalog.SearchArtworks(r.Context(), params.Get("q"))
	case params.Has("style"):
		artworks, err = h.catalog.ArtworksByStyle(r.Context(), params.Get("style"))
	default:
		artworks, err = h.catalog.ListArtworks(r.Context())
	}

	if err != nil {
		writeError(w, err, "Failed to fetch artworks")
		return
	}
	writeJSON(w, http.StatusOK, artworks)
}

// HandleGet returns a single artwork.
//
// HTTP: GET /api/artworks/{id}
//
// A non-numeric id is treated as "not found" rather than a server error.
func (h *ArtworkHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Artwork not found"})
		return
	}

	artwork, err := h.catalog.GetArtwork(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to fetch artwork")
		return
	}
	writeJSON(w, http.StatusOK, artwork)
}

// HandleCreate stores a new artwork.
//
// HTTP: POST /api/artworks
// REQUEST BODY: InsertArtwork-shaped JSON
//
// Validation failures come back as 400 with every violated field listed.
func (h *ArtworkHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.InsertArtwork
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Warn("invalid artwork JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("Invalid artwork data", nil), "")
		return
	}

	artwork, err := h.catalog.CreateArtwork(r.Context(), in)
	if err != nil {
		writeError(w, err, "Failed to create artwork")
		return
	}
	writeJSON(w, http.StatusCreated, artwork)
}
