// Package repository defines the storage contract for the storefront's
// data layer, plus the seed gallery every backend loads at startup.
package repository

import (
	"context"

	"github.com/artifyai/storefront/internal/model"
)

// Storage owns the authoritative artwork, favorite, order, and user
// collections for the lifetime of the process.
//
// Contract notes:
//   - Every create assigns a monotonically increasing id per collection;
//     ids are never reused within a process lifetime. Seeded and
//     API-created artworks share the same id space.
//   - Lookups for a missing id return an error wrapping
//     apperror.ErrNotFound; handlers map that to 404.
//   - GetUserFavorites resolves each favorite to its artwork and fails
//     with a plain (non-apperror) error if a referenced artwork is
//     missing — an internal-consistency fault, mapped to 500.
//   - AddFavorite is idempotent: an existing (userId, artworkId) pair is
//     returned as-is instead of inserting a duplicate.
//   - RemoveFavorite is a silent no-op when the id is absent.
//   - CreateUser performs no username/email uniqueness check.
type Storage interface {
	// User operations
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error)

	// Artwork operations
	GetArtwork(ctx context.Context, id int) (*model.Artwork, error)
	GetAllArtworks(ctx context.Context) ([]model.Artwork, error)
	GetArtworksByStyle(ctx context.Context, style string) ([]model.Artwork, error)
	CreateArtwork(ctx context.Context, in model.InsertArtwork) (*model.Artwork, error)
	SearchArtworks(ctx context.Context, query string) ([]model.Artwork, error)

	// Favorite operations
	GetFavorite(ctx context.Context, id int) (*model.Favorite, error)
	GetUserFavorites(ctx context.Context, userID int) ([]model.Artwork, error)
	AddFavorite(ctx context.Context, in model.InsertFavorite) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, id int) error

	// Order operations
	GetOrder(ctx context.Context, id int) (*model.Order, error)
	GetUserOrders(ctx context.Context, userID int) ([]model.Order, error)
	CreateOrder(ctx context.Context, in model.InsertOrder) (*model.Order, error)

	Close() error
}

// StyleAll is the catalog filter value that short-circuits to the full set.
const StyleAll = "all"
