package translator

import (
	"context"
	"time"
)

// Func adapts a plain function into a TranslationService. It is handy for
// tests and for wrapping ad-hoc providers.
type Func struct {
	ServiceName string
	Fn          func(ctx context.Context, text, targetLang, sourceLang string) (string, error)
}

func (f Func) Name() string {
	if f.ServiceName == "" {
		return "func"
	}
	return f.ServiceName
}

func (f Func) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: f.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	text, err := f.Fn(ctx, req.Text, req.TargetLang, req.SourceLang)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.TranslatedText = text
	return result, nil
}

func (f Func) IsAvailable(ctx context.Context) error {
	return nil
}

func (f Func) SupportedLanguages(ctx context.Context) ([]string, error) {
	return nil, nil
}
