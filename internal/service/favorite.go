package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/repository"
)

// FavoriteService handles a user's artwork bookmarks.
type FavoriteService struct {
	store    repository.Storage
	validate *validator.Validate
	logger   *slog.Logger
}

func NewFavoriteService(store repository.Storage, logger *slog.Logger) *FavoriteService {
	return &FavoriteService{
		store:    store,
		validate: newValidator(),
		logger:   logger,
	}
}

// Add bookmarks an artwork for a user. Adding an existing pair is a no-op
// that returns the stored favorite, so callers can treat the operation as
// idempotent.
func (s *FavoriteService) Add(ctx context.Context, in model.InsertFavorite) (*model.Favorite, error) {
	if err := validatePayload(s.validate, in, "Invalid favorite data"); err != nil {
		return nil, err
	}

	favorite, err := s.store.AddFavorite(ctx, in)
	if err != nil {
		s.logger.Error("failed to add favorite",
			slog.Int("userId", in.UserID),
			slog.Int("artworkId", in.ArtworkID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("adding favorite: %w", err)
	}

	s.logger.Info("favorite added",
		slog.Int("id", favorite.ID),
		slog.Int("userId", favorite.UserID),
		slog.Int("artworkId", favorite.ArtworkID),
	)
	return favorite, nil
}

// UserFavorites returns the artworks a user has bookmarked, in bookmark
// order.
func (s *FavoriteService) UserFavorites(ctx context.Context, userID int) ([]model.Artwork, error) {
	artworks, err := s.store.GetUserFavorites(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch favorites",
			slog.Int("userId", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fetching favorites: %w", err)
	}
	return artworks, nil
}

// Remove deletes a favorite by id. Removing an absent id succeeds.
func (s *FavoriteService) Remove(ctx context.Context, id int) error {
	if err := s.store.RemoveFavorite(ctx, id); err != nil {
		s.logger.Error("failed to remove favorite",
			slog.Int("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("removing favorite: %w", err)
	}

	s.logger.Info("favorite removed", slog.Int("id", id))
	return nil
}
