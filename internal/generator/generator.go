// Package generator defines the seam where a real art-generation backend
// would be substituted. The API only depends on the Generator interface;
// the mock implementation in this package fabricates a deterministic
// response after a simulated delay.
package generator

import (
	"context"

	"github.com/artifyai/storefront/internal/model"
)

// Request carries the generation input: the visitor's prompt plus the
// style-axis settings from the creator UI.
type Request struct {
	Prompt        string              `json:"prompt"`
	StyleSettings model.StyleSettings `json:"styleSettings"`
}

// Result is what every generation backend must produce: one primary image
// plus a fixed-size list of variations.
type Result struct {
	ImageURL   string   `json:"imageUrl"`
	Variations []string `json:"variations"`
}

// Generator produces artwork renditions for a prompt. Implementations must
// honor context cancellation — generation can take seconds.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
