// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// StyleSettings describes where a generation request sits on the style axes.
// The 0–100 range on the numeric axes is a UI convention; the data layer
// does not enforce bounds.
type StyleSettings struct {
	AbstractToRealistic int    `json:"abstractToRealistic"`
	WarmToCool          int    `json:"warmToCool"`
	MinimalToDetailed   int    `json:"minimalToDetailed"`
	ArtisticInfluence   string `json:"artisticInfluence"`
}

// Artwork represents a generated piece of art available for browsing and ordering.
// The `json:"..."` tags tell Go's encoding/json package how to serialize/deserialize
// this struct to/from JSON; the API uses camelCase field names.
//
// BasePrice is in minor currency units (cents). ID and CreatedAt are
// assigned by the repository and immutable once set.
type Artwork struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Prompt        string        `json:"prompt"`
	ImageURL      string        `json:"imageUrl"`
	StyleSettings StyleSettings `json:"styleSettings"`
	BasePrice     int           `json:"basePrice"`
	Featured      bool          `json:"featured"`
	Style         string        `json:"style,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// InsertArtwork is the inbound payload for creating an artwork: the full
// record minus the repository-assigned ID and CreatedAt.
//
// The `validate` tags drive payload validation in the service layer.
// StyleSettings is a pointer so "field absent" is distinguishable from an
// all-zero settings object; Featured and Style are optional (Featured
// defaults to false, Style is a free-text tag used for filtering).
type InsertArtwork struct {
	Title         string         `json:"title" validate:"required"`
	Description   string         `json:"description" validate:"required"`
	Prompt        string         `json:"prompt" validate:"required"`
	ImageURL      string         `json:"imageUrl" validate:"required"`
	StyleSettings *StyleSettings `json:"styleSettings" validate:"required"`
	BasePrice     int            `json:"basePrice" validate:"required"`
	Featured      bool           `json:"featured"`
	Style         string         `json:"style"`
}
