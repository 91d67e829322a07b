package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/valpere/civiclink/internal"
	"github.com/valpere/civiclink/internal/chunker"
	"github.com/valpere/civiclink/internal/languages"
	"github.com/valpere/civiclink/internal/logger"
	"github.com/valpere/civiclink/internal/quality"
	"github.com/valpere/civiclink/internal/translator"
)

// Config tunes the pipeline. Zero values are usable.
type Config struct {
	// MaxChunkSize is the chunk limit in characters; non-positive means
	// chunker.DefaultMaxChunkSize.
	MaxChunkSize int
	// ChunkTimeout bounds each provider call. Zero means no limit.
	ChunkTimeout time.Duration
	// AllowedTargets restricts target languages (codes or names). Empty
	// allows any target.
	AllowedTargets []string
	// Logger receives per-chunk failures. May be nil.
	Logger *logger.Logger
}

// Orchestrator splits a text into chunks, translates them one at a time
// through a single provider and reassembles the result. It holds no
// per-request state and may be shared between goroutines.
type Orchestrator struct {
	service translator.TranslationService
	config  Config
	log     *logger.Logger
}

// New returns an orchestrator that sends every chunk to service.
func New(service translator.TranslationService, config Config) *Orchestrator {
	if config.MaxChunkSize <= 0 {
		config.MaxChunkSize = chunker.DefaultMaxChunkSize
	}
	return &Orchestrator{
		service: service,
		config:  config,
		log:     config.Logger,
	}
}

// ServiceName reports the name of the underlying provider.
func (o *Orchestrator) ServiceName() string {
	return o.service.Name()
}

// ChunkOutcome is the result of translating one chunk. A failed chunk
// carries Err and contributes its Source text to the output.
type ChunkOutcome struct {
	Index  int
	Source string
	Text   string
	Err    error
}

// Failed reports whether the chunk kept its original text.
func (c ChunkOutcome) Failed() bool {
	return c.Err != nil
}

// Output is the text this chunk contributes to the reassembled translation.
func (c ChunkOutcome) Output() string {
	if c.Failed() {
		return c.Source
	}
	return c.Text
}

// Reassemble joins chunk outputs with a single space, in chunk order. Failed
// chunks contribute their source text.
func Reassemble(outcomes []ChunkOutcome) string {
	parts := make([]string, len(outcomes))
	for i, oc := range outcomes {
		parts[i] = oc.Output()
	}
	return strings.Join(parts, " ")
}

// Translate runs the full pipeline for one request. Only input validation
// and provider availability produce an error; individual chunk failures are
// absorbed by falling back to the untranslated chunk.
func (o *Orchestrator) Translate(ctx context.Context, text, targetLang, sourceLang string) (*internal.TranslationResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: text is empty", internal.ErrInvalidInput)
	}
	targetLang = strings.TrimSpace(targetLang)
	if targetLang == "" {
		return nil, fmt.Errorf("%w: target language is required", internal.ErrInvalidInput)
	}
	sourceLang = strings.TrimSpace(sourceLang)
	if sourceLang == "" {
		sourceLang = "auto"
	}
	if !languages.IsAllowed(targetLang, o.config.AllowedTargets) {
		return nil, fmt.Errorf("%w: unsupported target language %q", internal.ErrInvalidInput, targetLang)
	}

	if err := o.service.IsAvailable(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internal.ErrProviderUnavailable, o.service.Name(), err)
	}

	providerTarget := languages.ProviderName(targetLang)
	providerSource := languages.ProviderName(sourceLang)

	chunks := chunker.Split(trimmed, o.config.MaxChunkSize)
	o.log.Debug("Translating %d chars in %d chunk(s) to %s via %s",
		utf8.RuneCountInString(trimmed), len(chunks), providerTarget, o.service.Name())

	outcomes := make([]ChunkOutcome, 0, len(chunks))
	for _, ch := range chunks {
		oc := o.translateChunk(ctx, ch, providerTarget, providerSource)
		if oc.Failed() {
			o.log.Warn("Chunk %d/%d failed, keeping original text: %v", ch.Index+1, len(chunks), oc.Err)
		}
		outcomes = append(outcomes, oc)
	}

	translated := Reassemble(outcomes)

	return &internal.TranslationResult{
		OriginalText:       trimmed,
		TranslatedText:     translated,
		SourceLanguage:     sourceLang,
		TargetLanguage:     targetLang,
		ChunksProcessed:    len(chunks),
		TotalCharacters:    utf8.RuneCountInString(trimmed),
		QualityScore:       quality.Score(trimmed, translated),
		TranslationService: o.service.Name(),
		Timestamp:          time.Now().UTC(),
	}, nil
}

func (o *Orchestrator) translateChunk(ctx context.Context, ch chunker.Segment, target, source string) (oc ChunkOutcome) {
	oc = ChunkOutcome{Index: ch.Index, Source: ch.Content}

	fail := func(err error) ChunkOutcome {
		oc.Text = ""
		oc.Err = &internal.ChunkError{Index: ch.Index, Err: err}
		return oc
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	defer func() {
		if r := recover(); r != nil {
			oc = fail(fmt.Errorf("provider panic: %v", r))
		}
	}()

	chunkCtx := ctx
	if o.config.ChunkTimeout > 0 {
		var cancel context.CancelFunc
		chunkCtx, cancel = context.WithTimeout(ctx, o.config.ChunkTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := o.service.Translate(chunkCtx, translator.TranslateRequest{
		Text:       ch.Content,
		SourceLang: source,
		TargetLang: target,
	})
	switch {
	case err != nil:
		return fail(err)
	case res == nil:
		return fail(errors.New("provider returned no result"))
	case res.Error != "":
		return fail(errors.New(res.Error))
	case strings.TrimSpace(res.TranslatedText) == "":
		return fail(errors.New("provider returned empty translation"))
	}

	o.log.Debug("Chunk %d translated in %v", ch.Index+1, time.Since(start).Round(time.Millisecond))
	oc.Text = res.TranslatedText
	return oc
}
