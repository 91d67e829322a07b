package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/valpere/civiclink/internal"
	"github.com/valpere/civiclink/internal/config"
	"github.com/valpere/civiclink/internal/detector"
	"github.com/valpere/civiclink/internal/validator"
)

var sharedDetector = sync.OnceValue(detector.New)

// NewFromConfig builds the provider named in cfg. From the inside out it is
// wrapped in markup protection, output language validation and a rate
// limiter, each when enabled. Construction failures wrap
// internal.ErrProviderUnavailable.
func NewFromConfig(ctx context.Context, cfg config.Provider) (TranslationService, error) {
	var (
		svc TranslationService
		err error
	)

	switch strings.ToLower(strings.TrimSpace(cfg.Name)) {
	case "google":
		svc, err = NewGoogleService(ctx, cfg.Google)
	case "mymemory":
		svc = NewMyMemoryService(cfg.MyMemory, sharedDetector())
	case "amazon":
		svc, err = NewAmazonService(ctx, cfg.Amazon)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", internal.ErrProviderUnavailable, cfg.Name)
	}
	if err != nil {
		return nil, err
	}

	if cfg.ProtectMarkup {
		svc = NewProtected(svc)
	}
	if cfg.ValidateLanguage {
		svc = NewValidated(svc, validator.New(sharedDetector()))
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		svc = NewRateLimited(svc, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	return svc, nil
}
