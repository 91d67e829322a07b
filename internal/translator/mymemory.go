package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/valpere/civiclink/internal/config"
	"github.com/valpere/civiclink/internal/languages"
)

// SourceDetector resolves the "auto" source language. MyMemory requires an
// explicit language pair.
type SourceDetector interface {
	DetectISO(text string) (string, bool)
}

type MyMemoryService struct {
	email    string
	client   *resty.Client
	detector SourceDetector
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus  any    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// NewMyMemoryService builds a MyMemory client. detector may be nil, in which
// case an "auto" source falls back to English.
func NewMyMemoryService(cfg config.MyMemory, detector SourceDetector) *MyMemoryService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.mymemory.translated.net"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json")

	return &MyMemoryService{
		email:    cfg.Email,
		client:   client,
		detector: detector,
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := s.resolveSource(req)
	langPair := fmt.Sprintf("%s|%s", sourceLang, languages.ToCode(req.TargetLang))

	params := map[string]string{
		"q":        req.Text,
		"langpair": langPair,
	}
	if s.email != "" {
		params["de"] = s.email
	}

	var body myMemoryResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&body).
		Get("/get")
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		result.Error = fmt.Sprintf("HTTP %d", resp.StatusCode())
		return result, fmt.Errorf("mymemory returned HTTP %d", resp.StatusCode())
	}

	// responseStatus is a number on success but sometimes a string on error.
	if status := fmt.Sprint(body.ResponseStatus); status != "200" {
		result.Error = fmt.Sprintf("API error: %s (%s)", body.ResponseDetails, status)
		return result, fmt.Errorf("API error: %s", body.ResponseDetails)
	}
	if body.ResponseData.TranslatedText == "" {
		result.Error = "empty translation"
		return result, fmt.Errorf("empty translation")
	}

	result.TranslatedText = body.ResponseData.TranslatedText
	result.Metadata = map[string]string{
		"source_lang": sourceLang,
		"match":       fmt.Sprintf("%.2f", body.ResponseData.Match),
	}
	return result, nil
}

func (s *MyMemoryService) resolveSource(req TranslateRequest) string {
	src := strings.TrimSpace(languages.ToCode(req.SourceLang))
	if src != "" && src != "auto" {
		return src
	}
	if s.detector != nil {
		if code, ok := s.detector.DetectISO(req.Text); ok {
			return code
		}
	}
	return "en"
}

func (s *MyMemoryService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *MyMemoryService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{
		"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh-CN",
		"ar", "hi", "tl", "vi", "nl", "pl", "tr", "sv", "da", "no",
		"fi", "el", "he", "th", "id", "ms", "cs", "hu", "ro", "uk",
	}, nil
}
