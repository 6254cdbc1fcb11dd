package api

import (
	"gourmet-search/config"
	"gourmet-search/internal/pipeline"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	fetcher pipeline.Fetcher
	cfg     *config.Config
}

// NewHandler creates a new API handler.
func NewHandler(f pipeline.Fetcher, cfg *config.Config) *Handler {
	return &Handler{
		fetcher: f,
		cfg:     cfg,
	}
}
