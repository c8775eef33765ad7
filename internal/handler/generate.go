package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/artifyai/storefront/internal/generator"
)

// GenerateHandler exposes the art-generation seam over HTTP. It depends
// only on the Generator interface, so swapping the mock for a real model
// backend never touches this file.
type GenerateHandler struct {
	gen    generator.Generator
	logger *slog.Logger
}

func NewGenerateHandler(gen generator.Generator, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{gen: gen, logger: logger}
}

// HandleGenerate produces a rendition for a prompt.
//
// HTTP: POST /api/generate-art
// REQUEST BODY: {"prompt": "...", "styleSettings": {...}}
//
// The prompt is required and checked here, before anything downstream
// runs. The response always carries one primary image plus a fixed-size
// variations list.
func (h *GenerateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid generate JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Prompt is required"})
		return
	}

	result, err := h.gen.Generate(r.Context(), req)
	if err != nil {
		// The client went away mid-generation; nothing useful to write.
		if errors.Is(err, context.Canceled) {
			return
		}
		h.logger.Error("generation failed",
			slog.String("prompt", req.Prompt),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Failed to generate artwork"})
		return
	}

	h.logger.Info("art generated", slog.String("prompt", req.Prompt))
	writeJSON(w, http.StatusOK, result)
}
