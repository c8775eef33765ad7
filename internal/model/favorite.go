package model

import "time"

// Favorite is a user's bookmark of an artwork. The repository deduplicates
// favorites per (UserID, ArtworkID) pair, so at most one row exists per pair.
type Favorite struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	ArtworkID int       `json:"artworkId"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertFavorite is the inbound payload for adding a favorite.
type InsertFavorite struct {
	UserID    int `json:"userId" validate:"required"`
	ArtworkID int `json:"artworkId" validate:"required"`
}
