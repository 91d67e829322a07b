package orchestrator

import (
	"context"

	"github.com/valpere/civiclink/internal/config"
	"github.com/valpere/civiclink/internal/logger"
	"github.com/valpere/civiclink/internal/translator"
)

// NewFromConfig builds the configured provider and an Orchestrator around
// it. The returned service is exposed so callers can close it.
func NewFromConfig(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Orchestrator, translator.TranslationService, error) {
	svc, err := translator.NewFromConfig(ctx, cfg.Provider)
	if err != nil {
		return nil, nil, err
	}

	o := New(svc, Config{
		MaxChunkSize:   cfg.Translation.MaxChunkSize,
		ChunkTimeout:   cfg.Translation.ChunkTimeout,
		AllowedTargets: cfg.Translation.AllowedTargets,
		Logger:         log,
	})
	return o, svc, nil
}
