package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
)

// AddFavorite is idempotent per (userId, artworkId): if the pair already
// exists the stored favorite is returned unchanged.
func (db *DB) AddFavorite(ctx context.Context, in model.InsertFavorite) (*model.Favorite, error) {
	existing, err := db.favoriteByPair(ctx, in.UserID, in.ArtworkID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	createdAt := time.Now()
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO favorites (user_id, artwork_id, created_at) VALUES (?, ?, ?)`,
		in.UserID, in.ArtworkID, createdAt)
	if err != nil {
		return nil, fmt.Errorf("sqlite: adding favorite: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading favorite id: %w", err)
	}

	return &model.Favorite{
		ID:        int(id),
		UserID:    in.UserID,
		ArtworkID: in.ArtworkID,
		CreatedAt: createdAt,
	}, nil
}

func (db *DB) favoriteByPair(ctx context.Context, userID, artworkID int) (*model.Favorite, error) {
	var favorite model.Favorite
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, artwork_id, created_at FROM favorites
		 WHERE user_id = ? AND artwork_id = ?`,
		userID, artworkID,
	).Scan(&favorite.ID, &favorite.UserID, &favorite.ArtworkID, &favorite.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking favorite pair: %w", err)
	}
	return &favorite, nil
}

func (db *DB) GetFavorite(ctx context.Context, id int) (*model.Favorite, error) {
	var favorite model.Favorite
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, artwork_id, created_at FROM favorites WHERE id = ?`,
		id,
	).Scan(&favorite.ID, &favorite.UserID, &favorite.ArtworkID, &favorite.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("favorite", id)
		}
		return nil, fmt.Errorf("sqlite: getting favorite %d: %w", id, err)
	}
	return &favorite, nil
}

// GetUserFavorites resolves favorites to artworks in favorite insertion
// order. Resolution is deliberately two-step rather than an inner join: a
// join would silently drop a favorite whose artwork is missing, and that
// condition must surface as an internal fault instead.
func (db *DB) GetUserFavorites(ctx context.Context, userID int) ([]model.Artwork, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, artwork_id FROM favorites WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: querying favorites: %w", err)
	}
	defer rows.Close()

	type ref struct{ favoriteID, artworkID int }
	refs := make([]ref, 0)
	for rows.Next() {
		var r ref
		if err := rows.Scan(&r.favoriteID, &r.artworkID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning favorite row: %w", err)
		}
		refs = append(refs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating favorites: %w", err)
	}

	artworks := make([]model.Artwork, 0, len(refs))
	for _, r := range refs {
		artwork, err := db.GetArtwork(ctx, r.artworkID)
		if err != nil {
			// %v, not %w: a dangling favorite is an internal fault, and
			// wrapping would let the NotFound leak out as a 404.
			return nil, fmt.Errorf("sqlite: favorite %d references missing artwork %d: %v",
				r.favoriteID, r.artworkID, err)
		}
		artworks = append(artworks, *artwork)
	}
	return artworks, nil
}

// RemoveFavorite deletes the favorite. A missing id is not an error —
// deleting nothing is still a successful delete.
func (db *DB) RemoveFavorite(ctx context.Context, id int) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id); err != nil {
		return fmt.Errorf("sqlite: removing favorite %d: %w", id, err)
	}
	return nil
}
