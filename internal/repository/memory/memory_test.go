package memory

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/repository"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(logger)
}

func insertArtwork(title, style string) model.InsertArtwork {
	return model.InsertArtwork{
		Title:         title,
		Description:   "a test piece",
		Prompt:        "a test prompt",
		ImageURL:      "/img/" + title,
		BasePrice:     4999,
		Style:         style,
		StyleSettings: &model.StyleSettings{AbstractToRealistic: 50, ArtisticInfluence: "vangogh"},
	}
}

// =========================================================================
// SEED
// =========================================================================

func TestSeed_InitialGallery(t *testing.T) {
	s := newTestStorage(t)

	artworks, err := s.GetAllArtworks(context.Background())
	if err != nil {
		t.Fatalf("GetAllArtworks() error = %v", err)
	}

	if len(artworks) != 8 {
		t.Fatalf("seed size = %d, want 8", len(artworks))
	}
	for i, artwork := range artworks {
		if artwork.ID != i+1 {
			t.Errorf("artworks[%d].ID = %d, want sequential id %d", i, artwork.ID, i+1)
		}
		if artwork.CreatedAt.IsZero() {
			t.Errorf("artworks[%d].CreatedAt is zero", i)
		}
		if artwork.BasePrice != 4999 {
			t.Errorf("artworks[%d].BasePrice = %d, want 4999", i, artwork.BasePrice)
		}
	}
	if artworks[0].Title != "Diamond Serpent" {
		t.Errorf("first seed title = %q, want %q", artworks[0].Title, "Diamond Serpent")
	}
	if artworks[7].Title != "Nostalgic Sunset" {
		t.Errorf("last seed title = %q, want %q", artworks[7].Title, "Nostalgic Sunset")
	}
}

// =========================================================================
// IDENTITY
// =========================================================================

func TestCreate_MonotonicIDs(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Artwork ids continue after the 8 seeds.
	a1, err := s.CreateArtwork(ctx, insertArtwork("one", "abstract"))
	if err != nil {
		t.Fatalf("CreateArtwork() error = %v", err)
	}
	a2, _ := s.CreateArtwork(ctx, insertArtwork("two", "abstract"))
	if a1.ID != 9 || a2.ID != 10 {
		t.Errorf("artwork ids = %d, %d, want 9, 10", a1.ID, a2.ID)
	}

	// Each collection has its own counter starting at 1.
	user, err := s.CreateUser(ctx, model.InsertUser{Username: "ada", Email: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if user.ID != 1 {
		t.Errorf("first user id = %d, want 1", user.ID)
	}

	order, _ := s.CreateOrder(ctx, model.InsertOrder{UserID: 1, ArtworkID: 1, Size: "large", Price: 8999})
	if order.ID != 1 {
		t.Errorf("first order id = %d, want 1", order.ID)
	}

	fav, _ := s.AddFavorite(ctx, model.InsertFavorite{UserID: 1, ArtworkID: 1})
	if fav.ID != 1 {
		t.Errorf("first favorite id = %d, want 1", fav.ID)
	}
}

// =========================================================================
// ARTWORK LOOKUPS
// =========================================================================

func TestGetArtwork_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetArtwork(context.Background(), 999999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGetArtworksByStyle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	t.Run("all equals full catalog", func(t *testing.T) {
		all, _ := s.GetAllArtworks(ctx)
		filtered, err := s.GetArtworksByStyle(ctx, repository.StyleAll)
		if err != nil {
			t.Fatalf("GetArtworksByStyle() error = %v", err)
		}
		if len(filtered) != len(all) {
			t.Fatalf("len = %d, want %d", len(filtered), len(all))
		}
		for i := range all {
			if filtered[i].ID != all[i].ID {
				t.Errorf("order mismatch at %d: %d vs %d", i, filtered[i].ID, all[i].ID)
			}
		}
	})

	t.Run("exact style match", func(t *testing.T) {
		abstract, err := s.GetArtworksByStyle(ctx, "abstract")
		if err != nil {
			t.Fatalf("GetArtworksByStyle() error = %v", err)
		}
		if len(abstract) != 3 {
			t.Errorf("len = %d, want 3 abstract seeds", len(abstract))
		}
		for _, artwork := range abstract {
			if artwork.Style != "abstract" {
				t.Errorf("artwork %d style = %q, want %q", artwork.ID, artwork.Style, "abstract")
			}
		}
	})

	t.Run("unknown style is empty, not an error", func(t *testing.T) {
		none, err := s.GetArtworksByStyle(ctx, "dadaism")
		if err != nil {
			t.Fatalf("GetArtworksByStyle() error = %v", err)
		}
		if len(none) != 0 {
			t.Errorf("len = %d, want 0", len(none))
		}
	})
}

func TestSearchArtworks(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	t.Run("matches across fields case-insensitively", func(t *testing.T) {
		// Only the "Neon Futurism" seed mentions cyberpunk (description + prompt).
		got, err := s.SearchArtworks(ctx, "CYBERPUNK")
		if err != nil {
			t.Fatalf("SearchArtworks() error = %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Title != "Neon Futurism" {
			t.Errorf("title = %q, want %q", got[0].Title, "Neon Futurism")
		}
	})

	t.Run("style tag is searchable", func(t *testing.T) {
		got, _ := s.SearchArtworks(ctx, "portrait")
		// "Dreamy Portrait" matches on title AND style tag; no other seed does.
		if len(got) != 1 {
			t.Errorf("len = %d, want 1", len(got))
		}
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		got, _ := s.SearchArtworks(ctx, "")
		if len(got) != 8 {
			t.Errorf("len = %d, want 8", len(got))
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		got, _ := s.SearchArtworks(ctx, "zzzzzz")
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}

// =========================================================================
// FAVORITES
// =========================================================================

func TestAddFavorite_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.AddFavorite(ctx, model.InsertFavorite{UserID: 1, ArtworkID: 2})
	if err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}
	second, err := s.AddFavorite(ctx, model.InsertFavorite{UserID: 1, ArtworkID: 2})
	if err != nil {
		t.Fatalf("AddFavorite() repeat error = %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("repeat add ids = %d, %d, want same id", first.ID, second.ID)
	}

	favorites, _ := s.GetUserFavorites(ctx, 1)
	if len(favorites) != 1 {
		t.Errorf("favorites len = %d, want 1 after duplicate add", len(favorites))
	}

	// A different pair still gets a fresh, larger id.
	third, _ := s.AddFavorite(ctx, model.InsertFavorite{UserID: 1, ArtworkID: 3})
	if third.ID <= first.ID {
		t.Errorf("new favorite id = %d, want > %d", third.ID, first.ID)
	}
}

func TestGetUserFavorites_JoinOrder(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	s.AddFavorite(ctx, model.InsertFavorite{UserID: 7, ArtworkID: 3})
	s.AddFavorite(ctx, model.InsertFavorite{UserID: 7, ArtworkID: 1})
	s.AddFavorite(ctx, model.InsertFavorite{UserID: 8, ArtworkID: 2}) // other user

	artworks, err := s.GetUserFavorites(ctx, 7)
	if err != nil {
		t.Fatalf("GetUserFavorites() error = %v", err)
	}
	if len(artworks) != 2 {
		t.Fatalf("len = %d, want 2", len(artworks))
	}
	// Join order is favorite insertion order, not artwork id order.
	if artworks[0].ID != 3 || artworks[1].ID != 1 {
		t.Errorf("artwork ids = %d, %d, want 3, 1", artworks[0].ID, artworks[1].ID)
	}
}

func TestGetUserFavorites_MissingArtworkIsFault(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Nothing stops a favorite from referencing an id that was never
	// created; resolving it must fail as an internal fault, not NotFound.
	s.AddFavorite(ctx, model.InsertFavorite{UserID: 1, ArtworkID: 999})

	_, err := s.GetUserFavorites(ctx, 1)
	if err == nil {
		t.Fatal("GetUserFavorites() should fail on dangling artwork reference")
	}
	if errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, must not be ErrNotFound (would map to 404 instead of 500)", err)
	}
}

func TestRemoveFavorite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	fav, _ := s.AddFavorite(ctx, model.InsertFavorite{UserID: 1, ArtworkID: 2})

	if err := s.RemoveFavorite(ctx, fav.ID); err != nil {
		t.Fatalf("RemoveFavorite() error = %v", err)
	}
	favorites, _ := s.GetUserFavorites(ctx, 1)
	if len(favorites) != 0 {
		t.Errorf("favorites len = %d after remove, want 0", len(favorites))
	}

	// Removing an absent id is a silent no-op.
	if err := s.RemoveFavorite(ctx, 424242); err != nil {
		t.Errorf("RemoveFavorite(absent) error = %v, want nil", err)
	}
}

// =========================================================================
// ORDERS
// =========================================================================

func TestCreateOrder_Defaults(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	order, err := s.CreateOrder(ctx, model.InsertOrder{UserID: 1, ArtworkID: 2, Size: "large", Price: 8999})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	if order.Status != model.OrderStatusPending {
		t.Errorf("Status = %q, want %q", order.Status, model.OrderStatusPending)
	}
	if order.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}

	// A caller-supplied status is kept as-is.
	paid, _ := s.CreateOrder(ctx, model.InsertOrder{UserID: 1, ArtworkID: 3, Size: "small", Price: 3999, Status: "paid"})
	if paid.Status != "paid" {
		t.Errorf("Status = %q, want %q", paid.Status, "paid")
	}
}

func TestGetUserOrders(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	s.CreateOrder(ctx, model.InsertOrder{UserID: 5, ArtworkID: 1, Size: "small", Price: 3999})
	s.CreateOrder(ctx, model.InsertOrder{UserID: 5, ArtworkID: 2, Size: "large", Price: 8999})
	s.CreateOrder(ctx, model.InsertOrder{UserID: 6, ArtworkID: 1, Size: "medium", Price: 5999})

	orders, err := s.GetUserOrders(ctx, 5)
	if err != nil {
		t.Fatalf("GetUserOrders() error = %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("len = %d, want 2", len(orders))
	}
	if orders[0].ID >= orders[1].ID {
		t.Errorf("orders not in insertion order: ids %d, %d", orders[0].ID, orders[1].ID)
	}

	// Unknown user gets an empty list, not an error.
	none, err := s.GetUserOrders(ctx, 999)
	if err != nil || len(none) != 0 {
		t.Errorf("GetUserOrders(unknown) = %v, %v, want empty, nil", none, err)
	}
}

// =========================================================================
// USERS
// =========================================================================

func TestUsers(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, model.InsertUser{Username: "ada", Email: "ada@example.com", Password: "plain"})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	byID, err := s.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if byID.Username != "ada" {
		t.Errorf("Username = %q, want %q", byID.Username, "ada")
	}
	// Stored exactly as given — no hashing at this layer.
	if byID.Password != "plain" {
		t.Errorf("Password = %q, want stored verbatim", byID.Password)
	}

	byName, err := s.GetUserByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if byName.ID != created.ID {
		t.Errorf("ID = %d, want %d", byName.ID, created.ID)
	}

	_, err = s.GetUser(ctx, 999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetUser(absent) error = %v, want ErrNotFound", err)
	}
	_, err = s.GetUserByUsername(ctx, "nobody")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetUserByUsername(absent) error = %v, want ErrNotFound", err)
	}
}

func TestCreateUser_NoUniquenessCheck(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, _ := s.CreateUser(ctx, model.InsertUser{Username: "dup", Email: "dup@example.com", Password: "a"})
	second, err := s.CreateUser(ctx, model.InsertUser{Username: "dup", Email: "dup@example.com", Password: "b"})
	if err != nil {
		t.Fatalf("duplicate CreateUser() error = %v, duplicates are allowed", err)
	}
	if first.ID == second.ID {
		t.Errorf("duplicate users share id %d", first.ID)
	}
}
