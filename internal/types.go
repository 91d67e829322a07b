package internal

import "time"

// TranslationRequest is the caller-facing description of a single request.
// It is never persisted by the pipeline itself.
type TranslationRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetLanguage string `json:"target_language"`
}

// TranslationResult is built once per request and not modified afterwards.
type TranslationResult struct {
	OriginalText       string    `json:"original_text"`
	TranslatedText     string    `json:"translated_text"`
	SourceLanguage     string    `json:"source_language"`
	TargetLanguage     string    `json:"target_language"`
	ChunksProcessed    int       `json:"chunks_processed"`
	TotalCharacters    int       `json:"total_characters"`
	QualityScore       float64   `json:"quality_score"`
	TranslationService string    `json:"translation_service,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}
