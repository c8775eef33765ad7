package generator

import (
	"context"
	"time"

	"github.com/rs/xid"
)

// Stock renditions returned by the mock. A fresh cache-buster token is
// appended per request so clients treat every generation as a new image.
var (
	mockPrimaryImage = "https://images.unsplash.com/photo-1655635949212-1d8f4f103ea1"

	mockVariations = []string{
		"https://images.unsplash.com/photo-1664995397375-9a8b7208d957",
		"https://images.unsplash.com/photo-1658457459786-dfeae5cbc258",
		"https://images.unsplash.com/photo-1670121125613-75ed568640c3",
	}
)

// Config holds mock generator settings.
type Config struct {
	// Delay simulates model inference latency before the response is
	// produced. Zero means respond immediately (useful in tests).
	Delay time.Duration
}

// DefaultConfig simulates a couple of seconds of model inference.
func DefaultConfig() Config {
	return Config{Delay: 2 * time.Second}
}

// Mock is a Generator that returns stock images instead of calling a
// model. The delay runs on the request's own goroutine, so other requests
// are served normally while one generation "runs".
type Mock struct {
	config Config
}

var _ Generator = (*Mock)(nil)

// NewMock creates a mock generator.
func NewMock(cfg Config) *Mock {
	return &Mock{config: cfg}
}

// Generate waits out the configured delay, then fabricates a result. A
// cancelled context (client disconnect, shutdown) aborts the wait.
func (m *Mock) Generate(ctx context.Context, req Request) (*Result, error) {
	if m.config.Delay > 0 {
		timer := time.NewTimer(m.config.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	token := xid.New().String()
	variations := make([]string, 0, len(mockVariations))
	for _, url := range mockVariations {
		variations = append(variations, url+"?v="+token)
	}

	return &Result{
		ImageURL:   mockPrimaryImage + "?v=" + token,
		Variations: variations,
	}, nil
}
