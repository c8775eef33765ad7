package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/repository"
)

// CatalogService handles artwork browsing, filtering, search, and creation.
type CatalogService struct {
	store    repository.Storage
	validate *validator.Validate
	logger   *slog.Logger
}

func NewCatalogService(store repository.Storage, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:    store,
		validate: newValidator(),
		logger:   logger,
	}
}

func (s *CatalogService) ListArtworks(ctx context.Context) ([]model.Artwork, error) {
	artworks, err := s.store.GetAllArtworks(ctx)
	if err != nil {
		s.logger.Error("failed to list artworks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing artworks: %w", err)
	}
	return artworks, nil
}

// ArtworksByStyle filters by exact style tag; "all" short-circuits to the
// full catalog.
func (s *CatalogService) ArtworksByStyle(ctx context.Context, style string) ([]model.Artwork, error) {
	artworks, err := s.store.GetArtworksByStyle(ctx, style)
	if err != nil {
		s.logger.Error("failed to filter artworks",
			slog.String("style", style),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("filtering artworks by style: %w", err)
	}
	return artworks, nil
}

func (s *CatalogService) SearchArtworks(ctx context.Context, query string) ([]model.Artwork, error) {
	artworks, err := s.store.SearchArtworks(ctx, query)
	if err != nil {
		s.logger.Error("failed to search artworks",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("searching artworks: %w", err)
	}
	return artworks, nil
}

// GetArtwork retrieves one artwork. A missing id propagates as a NotFound
// domain error for the handler to map to 404.
func (s *CatalogService) GetArtwork(ctx context.Context, id int) (*model.Artwork, error) {
	return s.store.GetArtwork(ctx, id)
}

func (s *CatalogService) CreateArtwork(ctx context.Context, in model.InsertArtwork) (*model.Artwork, error) {
	if err := validatePayload(s.validate, in, "Invalid artwork data"); err != nil {
		return nil, err
	}

	artwork, err := s.store.CreateArtwork(ctx, in)
	if err != nil {
		s.logger.Error("failed to create artwork",
			slog.String("title", in.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating artwork: %w", err)
	}

	s.logger.Info("artwork created",
		slog.Int("id", artwork.ID),
		slog.String("title", artwork.Title),
	)
	return artwork, nil
}
