// Package httpapi exposes the translation pipeline over HTTP with gin.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/valpere/civiclink/internal"
	"github.com/valpere/civiclink/internal/logger"
	"github.com/valpere/civiclink/internal/store"
)

// Translator runs one translation request.
type Translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) (*internal.TranslationResult, error)
	ServiceName() string
}

// HistoryStore persists and queries finished translations.
type HistoryStore interface {
	SaveResult(ctx context.Context, r *internal.TranslationResult) (string, error)
	List(ctx context.Context, f store.ListFilter) ([]store.Record, error)
	Count(ctx context.Context, f store.ListFilter) (int, error)
	Stats(ctx context.Context) (*store.Stats, error)
}

type Server struct {
	translator Translator
	history    HistoryStore
	log        *logger.Logger
	router     *gin.Engine
}

// New builds the router. history may be nil, in which case translations are
// not recorded and the history endpoints are not registered.
func New(tr Translator, history HistoryStore, log *logger.Logger) *Server {
	s := &Server{
		translator: tr,
		history:    history,
		log:        log,
		router:     gin.New(),
	}
	s.router.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/translate", s.handleTranslate)
	api.POST("/translate-text", s.handleTranslate)
	api.POST("/translate-civic-term", s.handleCivicTerm)
	api.GET("/languages", s.handleLanguages)

	if s.history != nil {
		api.GET("/translations", s.handleListTranslations)
		api.GET("/translations/stats", s.handleStats)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start).Round(time.Millisecond))
	}
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, internal.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, internal.ErrProviderUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("Request %s failed: %v", c.Request.URL.Path, err)
		msg = "Translation failed"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// record stores a result in the history. Failures are logged only.
func (s *Server) record(ctx context.Context, result *internal.TranslationResult) {
	if s.history == nil {
		return
	}
	if _, err := s.history.SaveResult(ctx, result); err != nil {
		s.log.Warn("Failed to record translation: %v", err)
	}
}
