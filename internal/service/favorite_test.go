package service

import (
	"context"
	"errors"
	"testing"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/repository/memory"
)

func newTestFavorites(t *testing.T) *FavoriteService {
	t.Helper()
	logger := testLogger()
	return NewFavoriteService(memory.New(logger), logger)
}

func TestFavoriteAdd_Idempotent(t *testing.T) {
	svc := newTestFavorites(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, model.InsertFavorite{UserID: 1, ArtworkID: 2})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	second, err := svc.Add(ctx, model.InsertFavorite{UserID: 1, ArtworkID: 2})
	if err != nil {
		t.Fatalf("Add() repeat error = %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("ids = %d, %d, want same favorite both times", first.ID, second.ID)
	}
}

func TestFavoriteAdd_Validation(t *testing.T) {
	svc := newTestFavorites(t)

	_, err := svc.Add(context.Background(), model.InsertFavorite{UserID: 1})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error %v is not an AppError", err)
	}
	if len(appErr.Fields) != 1 || appErr.Fields[0].Field != "artworkId" {
		t.Errorf("Fields = %+v, want a single artworkId violation", appErr.Fields)
	}
}

func TestFavoriteRoundTrip(t *testing.T) {
	svc := newTestFavorites(t)
	ctx := context.Background()

	svc.Add(ctx, model.InsertFavorite{UserID: 4, ArtworkID: 2})
	fav, _ := svc.Add(ctx, model.InsertFavorite{UserID: 4, ArtworkID: 5})

	artworks, err := svc.UserFavorites(ctx, 4)
	if err != nil {
		t.Fatalf("UserFavorites() error = %v", err)
	}
	if len(artworks) != 2 || artworks[0].ID != 2 || artworks[1].ID != 5 {
		t.Errorf("favorites = %+v, want artworks 2 then 5", artworks)
	}

	if err := svc.Remove(ctx, fav.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	artworks, _ = svc.UserFavorites(ctx, 4)
	if len(artworks) != 1 {
		t.Errorf("len = %d after remove, want 1", len(artworks))
	}
}
