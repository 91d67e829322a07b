package translator

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimited throttles Translate calls to the wrapped service. The other
// methods pass through unthrottled.
type RateLimited struct {
	TranslationService
	limiter *rate.Limiter
}

// NewRateLimited wraps svc with a token bucket of rps requests per second.
// A burst below 1 is raised to 1.
func NewRateLimited(svc TranslationService, rps float64, burst int) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		TranslationService: svc,
		limiter:            rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimited) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return &ServiceResult{ServiceName: r.Name(), Error: err.Error()},
			fmt.Errorf("rate limit wait: %w", err)
	}
	return r.TranslationService.Translate(ctx, req)
}

// Close releases the wrapped service if it holds resources.
func (r *RateLimited) Close() error {
	return closeInner(r.TranslationService)
}
