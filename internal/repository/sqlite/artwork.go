package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/repository"
)

const artworkColumns = `id, title, description, prompt, image_url, style_settings,
	base_price, featured, style, created_at`

// scanArtwork reads one artwork row. style_settings is stored as a JSON
// blob in a TEXT column; nothing ever queries inside it.
func scanArtwork(scan func(dest ...any) error) (*model.Artwork, error) {
	var (
		artwork  model.Artwork
		settings string
	)
	if err := scan(
		&artwork.ID,
		&artwork.Title,
		&artwork.Description,
		&artwork.Prompt,
		&artwork.ImageURL,
		&settings,
		&artwork.BasePrice,
		&artwork.Featured,
		&artwork.Style,
		&artwork.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(settings), &artwork.StyleSettings); err != nil {
		return nil, fmt.Errorf("decoding style settings for artwork %d: %w", artwork.ID, err)
	}
	return &artwork, nil
}

func (db *DB) CreateArtwork(ctx context.Context, in model.InsertArtwork) (*model.Artwork, error) {
	var settings model.StyleSettings
	if in.StyleSettings != nil {
		settings = *in.StyleSettings
	}
	encoded, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("sqlite: encoding style settings: %w", err)
	}

	createdAt := time.Now()
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO artworks (title, description, prompt, image_url, style_settings,
			base_price, featured, style, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Title,
		in.Description,
		in.Prompt,
		in.ImageURL,
		string(encoded),
		in.BasePrice,
		in.Featured,
		in.Style,
		createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: creating artwork: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading artwork id: %w", err)
	}

	return &model.Artwork{
		ID:            int(id),
		Title:         in.Title,
		Description:   in.Description,
		Prompt:        in.Prompt,
		ImageURL:      in.ImageURL,
		StyleSettings: settings,
		BasePrice:     in.BasePrice,
		Featured:      in.Featured,
		Style:         in.Style,
		CreatedAt:     createdAt,
	}, nil
}

func (db *DB) GetArtwork(ctx context.Context, id int) (*model.Artwork, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+artworkColumns+` FROM artworks WHERE id = ?`, id)

	artwork, err := scanArtwork(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("artwork", id)
		}
		return nil, fmt.Errorf("sqlite: getting artwork %d: %w", id, err)
	}
	return artwork, nil
}

func (db *DB) GetAllArtworks(ctx context.Context) ([]model.Artwork, error) {
	return db.queryArtworks(ctx,
		`SELECT `+artworkColumns+` FROM artworks ORDER BY id`)
}

func (db *DB) GetArtworksByStyle(ctx context.Context, style string) ([]model.Artwork, error) {
	if style == repository.StyleAll {
		return db.GetAllArtworks(ctx)
	}
	return db.queryArtworks(ctx,
		`SELECT `+artworkColumns+` FROM artworks WHERE style = ? ORDER BY id`, style)
}

func (db *DB) SearchArtworks(ctx context.Context, query string) ([]model.Artwork, error) {
	// instr on lowered text gives the same case-insensitive substring
	// semantics as the memory backend without LIKE-pattern escaping.
	return db.queryArtworks(ctx,
		`SELECT `+artworkColumns+` FROM artworks
		 WHERE instr(lower(title), lower(?)) > 0
		    OR instr(lower(description), lower(?)) > 0
		    OR instr(lower(prompt), lower(?)) > 0
		    OR instr(lower(style), lower(?)) > 0
		    OR ? = ''
		 ORDER BY id`,
		query, query, query, query, query)
}

func (db *DB) queryArtworks(ctx context.Context, query string, args ...any) ([]model.Artwork, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: querying artworks: %w", err)
	}
	defer rows.Close()

	artworks := make([]model.Artwork, 0)
	for rows.Next() {
		artwork, err := scanArtwork(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning artwork row: %w", err)
		}
		artworks = append(artworks, *artwork)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating artworks: %w", err)
	}
	return artworks, nil
}
