package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/valpere/civiclink/internal"
	"github.com/valpere/civiclink/internal/config"
	"github.com/valpere/civiclink/internal/languages"
)

// GoogleService translates through the Cloud Translation v2 API.
type GoogleService struct {
	client *translate.Client
}

// NewGoogleService creates the API client. Credentials default to
// GOOGLE_APPLICATION_CREDENTIALS when cfg.Credentials is empty.
func NewGoogleService(ctx context.Context, cfg config.Google) (*GoogleService, error) {
	var opts []option.ClientOption
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}
	if cfg.ProjectID != "" {
		opts = append(opts, option.WithQuotaProject(cfg.ProjectID))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: google: %v", internal.ErrProviderUnavailable, err)
	}
	return &GoogleService{client: client}, nil
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	target, err := language.Parse(languages.ToCode(req.TargetLang))
	if err != nil {
		result.Error = fmt.Sprintf("invalid target language: %v", err)
		return result, fmt.Errorf("invalid target language: %w", err)
	}

	opts := &translate.Options{Format: translate.Text}
	if src := languages.ToCode(req.SourceLang); src != "" && src != "auto" {
		source, err := language.Parse(src)
		if err != nil {
			result.Error = fmt.Sprintf("invalid source language: %v", err)
			return result, fmt.Errorf("invalid source language: %w", err)
		}
		opts.Source = source
	}

	translations, err := s.client.Translate(ctx, []string{req.Text}, target, opts)
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("no translation returned")
	}

	result.TranslatedText = translations[0].Text
	if translations[0].Source != (language.Tag{}) {
		result.Metadata = map[string]string{"detected_source": translations[0].Source.String()}
	}
	return result, nil
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("google client not initialised")
	}
	return nil
}

func (s *GoogleService) SupportedLanguages(ctx context.Context) ([]string, error) {
	langs, err := s.client.SupportedLanguages(ctx, language.English)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Tag.String())
	}
	return codes, nil
}

func (s *GoogleService) Close() error {
	return s.client.Close()
}
