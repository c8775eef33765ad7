// Package memory implements the storage contract entirely in process
// memory. It is the canonical backend for the storefront: state lives for
// the lifetime of the process and is discarded on restart.
//
// Requests run on separate goroutines, so a mutex guards every operation.
// In particular the id-counter increment and the insert it belongs to are
// one critical section, and AddFavorite's check-then-insert cannot
// interleave with a concurrent add of the same pair.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/repository"
)

// Compile-time check that *Storage satisfies the repository contract.
var _ repository.Storage = (*Storage)(nil)

// Storage holds all four collections plus one id counter per collection.
// Counters are owned by the instance, not the package — tests construct
// fresh, isolated instances with New.
type Storage struct {
	mu sync.Mutex

	users     map[int]*model.User
	artworks  map[int]*model.Artwork
	favorites map[int]*model.Favorite
	orders    map[int]*model.Order

	userID     int
	artworkID  int
	favoriteID int
	orderID    int

	logger *slog.Logger
}

// New creates an empty storage instance and loads the seed gallery through
// the same create path the API uses, so seed ids start at 1 and share the
// counter with API-created artworks.
func New(logger *slog.Logger) *Storage {
	s := &Storage{
		users:     make(map[int]*model.User),
		artworks:  make(map[int]*model.Artwork),
		favorites: make(map[int]*model.Favorite),
		orders:    make(map[int]*model.Order),
		logger:    logger,
	}

	for _, in := range repository.SeedArtworks() {
		s.createArtworkLocked(in)
	}
	logger.Info("seeded gallery", slog.Int("artworks", len(s.artworks)))

	return s
}

// Close exists to satisfy the storage contract; there is nothing to release.
func (s *Storage) Close() error {
	return nil
}

// --- User operations ---

func (s *Storage) GetUser(_ context.Context, id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	out := *user
	return &out, nil
}

func (s *Storage) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Linear scan. Fine at this scale.
	for _, user := range s.users {
		if user.Username == username {
			out := *user
			return &out, nil
		}
	}
	return nil, &apperror.AppError{
		Err:     apperror.ErrNotFound,
		Message: fmt.Sprintf("user not found with username %s", username),
	}
}

// CreateUser stores the user exactly as given. No username/email
// uniqueness check is performed (see DESIGN.md), and the password is kept
// verbatim.
func (s *Storage) CreateUser(_ context.Context, in model.InsertUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID++
	user := &model.User{
		ID:        s.userID,
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		CreatedAt: time.Now(),
	}
	s.users[user.ID] = user

	out := *user
	return &out, nil
}

// --- Artwork operations ---

func (s *Storage) GetArtwork(_ context.Context, id int) (*model.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	artwork, ok := s.artworks[id]
	if !ok {
		return nil, apperror.NotFound("artwork", id)
	}
	out := *artwork
	return &out, nil
}

func (s *Storage) GetAllArtworks(_ context.Context) ([]model.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.allArtworksLocked(), nil
}

func (s *Storage) GetArtworksByStyle(_ context.Context, style string) ([]model.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if style == repository.StyleAll {
		return s.allArtworksLocked(), nil
	}

	matches := make([]model.Artwork, 0)
	for _, artwork := range s.sortedArtworksLocked() {
		if artwork.Style == style {
			matches = append(matches, *artwork)
		}
	}
	return matches, nil
}

func (s *Storage) CreateArtwork(_ context.Context, in model.InsertArtwork) (*model.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *s.createArtworkLocked(in)
	return &out, nil
}

// SearchArtworks returns every artwork whose title, description, prompt, or
// style contains the query, case-insensitively. An empty query is a
// substring of everything and therefore matches every artwork.
func (s *Storage) SearchArtworks(_ context.Context, query string) ([]model.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	matches := make([]model.Artwork, 0)
	for _, artwork := range s.sortedArtworksLocked() {
		if strings.Contains(strings.ToLower(artwork.Title), q) ||
			strings.Contains(strings.ToLower(artwork.Description), q) ||
			strings.Contains(strings.ToLower(artwork.Prompt), q) ||
			strings.Contains(strings.ToLower(artwork.Style), q) {
			matches = append(matches, *artwork)
		}
	}
	return matches, nil
}

// createArtworkLocked assigns the next id and inserts. Callers hold s.mu,
// except New, which runs before the instance is shared.
func (s *Storage) createArtworkLocked(in model.InsertArtwork) *model.Artwork {
	s.artworkID++
	artwork := &model.Artwork{
		ID:          s.artworkID,
		Title:       in.Title,
		Description: in.Description,
		Prompt:      in.Prompt,
		ImageURL:    in.ImageURL,
		BasePrice:   in.BasePrice,
		Featured:    in.Featured,
		Style:       in.Style,
		CreatedAt:   time.Now(),
	}
	if in.StyleSettings != nil {
		artwork.StyleSettings = *in.StyleSettings
	}
	s.artworks[artwork.ID] = artwork
	return artwork
}

// sortedArtworksLocked returns artworks in insertion order. Ids are
// monotonic and artworks are never deleted, so ascending id IS insertion
// order.
func (s *Storage) sortedArtworksLocked() []*model.Artwork {
	out := make([]*model.Artwork, 0, len(s.artworks))
	for _, artwork := range s.artworks {
		out = append(out, artwork)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Storage) allArtworksLocked() []model.Artwork {
	sorted := s.sortedArtworksLocked()
	out := make([]model.Artwork, 0, len(sorted))
	for _, artwork := range sorted {
		out = append(out, *artwork)
	}
	return out
}

// --- Favorite operations ---

func (s *Storage) GetFavorite(_ context.Context, id int) (*model.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorite, ok := s.favorites[id]
	if !ok {
		return nil, apperror.NotFound("favorite", id)
	}
	out := *favorite
	return &out, nil
}

// GetUserFavorites resolves the user's favorites to their artworks, in
// favorite insertion order. A favorite pointing at a missing artwork is an
// internal-consistency fault and propagates as a generic error.
func (s *Storage) GetUserFavorites(_ context.Context, userID int) ([]model.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userFavorites := make([]*model.Favorite, 0)
	for _, favorite := range s.favorites {
		if favorite.UserID == userID {
			userFavorites = append(userFavorites, favorite)
		}
	}
	sort.Slice(userFavorites, func(i, j int) bool {
		return userFavorites[i].ID < userFavorites[j].ID
	})

	artworks := make([]model.Artwork, 0, len(userFavorites))
	for _, favorite := range userFavorites {
		artwork, ok := s.artworks[favorite.ArtworkID]
		if !ok {
			return nil, fmt.Errorf("memory: favorite %d references missing artwork %d",
				favorite.ID, favorite.ArtworkID)
		}
		artworks = append(artworks, *artwork)
	}
	return artworks, nil
}

// AddFavorite is idempotent: if the (userId, artworkId) pair already
// exists, the existing favorite is returned and nothing is inserted.
func (s *Storage) AddFavorite(_ context.Context, in model.InsertFavorite) (*model.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, favorite := range s.favorites {
		if favorite.UserID == in.UserID && favorite.ArtworkID == in.ArtworkID {
			out := *favorite
			return &out, nil
		}
	}

	s.favoriteID++
	favorite := &model.Favorite{
		ID:        s.favoriteID,
		UserID:    in.UserID,
		ArtworkID: in.ArtworkID,
		CreatedAt: time.Now(),
	}
	s.favorites[favorite.ID] = favorite

	out := *favorite
	return &out, nil
}

// RemoveFavorite deletes the favorite if present and silently does nothing
// otherwise.
func (s *Storage) RemoveFavorite(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.favorites, id)
	return nil
}

// --- Order operations ---

func (s *Storage) GetOrder(_ context.Context, id int) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, apperror.NotFound("order", id)
	}
	out := *order
	return &out, nil
}

func (s *Storage) GetUserOrders(_ context.Context, userID int) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userOrders := make([]model.Order, 0)
	for _, order := range s.orders {
		if order.UserID == userID {
			userOrders = append(userOrders, *order)
		}
	}
	sort.Slice(userOrders, func(i, j int) bool { return userOrders[i].ID < userOrders[j].ID })
	return userOrders, nil
}

func (s *Storage) CreateOrder(_ context.Context, in model.InsertOrder) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	s.orderID++
	order := &model.Order{
		ID:        s.orderID,
		UserID:    in.UserID,
		ArtworkID: in.ArtworkID,
		Size:      in.Size,
		Frame:     in.Frame,
		Price:     in.Price,
		Status:    status,
		CreatedAt: time.Now(),
	}
	s.orders[order.ID] = order

	out := *order
	return &out, nil
}
