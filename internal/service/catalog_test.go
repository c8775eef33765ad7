package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	logger := testLogger()
	return NewCatalogService(memory.New(logger), logger)
}

func validInsertArtwork() model.InsertArtwork {
	return model.InsertArtwork{
		Title:         "Test Piece",
		Description:   "a description",
		Prompt:        "a prompt",
		ImageURL:      "/img/test",
		BasePrice:     4999,
		Style:         "abstract",
		StyleSettings: &model.StyleSettings{AbstractToRealistic: 50, ArtisticInfluence: "vangogh"},
	}
}

func TestCreateArtwork_Valid(t *testing.T) {
	svc := newTestCatalog(t)

	artwork, err := svc.CreateArtwork(context.Background(), validInsertArtwork())
	if err != nil {
		t.Fatalf("CreateArtwork() error = %v", err)
	}
	if artwork.ID == 0 {
		t.Error("expected an assigned id")
	}
	if artwork.Title != "Test Piece" {
		t.Errorf("Title = %q, want %q", artwork.Title, "Test Piece")
	}
}

func TestCreateArtwork_ReportsEveryViolation(t *testing.T) {
	svc := newTestCatalog(t)

	// Missing title AND prompt: both must be reported, not just the first.
	in := validInsertArtwork()
	in.Title = ""
	in.Prompt = ""

	_, err := svc.CreateArtwork(context.Background(), in)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error %v is not an AppError", err)
	}
	if len(appErr.Fields) != 2 {
		t.Fatalf("Fields = %+v, want 2 violations", appErr.Fields)
	}

	got := map[string]bool{}
	for _, fe := range appErr.Fields {
		got[fe.Field] = true
	}
	if !got["title"] || !got["prompt"] {
		t.Errorf("violated fields = %+v, want title and prompt (json names)", appErr.Fields)
	}
}

func TestCreateArtwork_MissingStyleSettings(t *testing.T) {
	svc := newTestCatalog(t)

	in := validInsertArtwork()
	in.StyleSettings = nil

	_, err := svc.CreateArtwork(context.Background(), in)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestGetArtwork_PropagatesNotFound(t *testing.T) {
	svc := newTestCatalog(t)

	_, err := svc.GetArtwork(context.Background(), 999999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSearchAndFilter(t *testing.T) {
	svc := newTestCatalog(t)
	ctx := context.Background()

	all, err := svc.ListArtworks(ctx)
	if err != nil {
		t.Fatalf("ListArtworks() error = %v", err)
	}
	if len(all) != 8 {
		t.Fatalf("catalog len = %d, want the 8 seeds", len(all))
	}

	abstract, err := svc.ArtworksByStyle(ctx, "abstract")
	if err != nil {
		t.Fatalf("ArtworksByStyle() error = %v", err)
	}
	if len(abstract) != 3 {
		t.Errorf("abstract len = %d, want 3", len(abstract))
	}

	found, err := svc.SearchArtworks(ctx, "serpent")
	if err != nil {
		t.Fatalf("SearchArtworks() error = %v", err)
	}
	if len(found) != 1 || found[0].Title != "Diamond Serpent" {
		t.Errorf("search = %+v, want Diamond Serpent", found)
	}
}
