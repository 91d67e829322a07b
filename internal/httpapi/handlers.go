package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/valpere/civiclink/internal"
	"github.com/valpere/civiclink/internal/languages"
	"github.com/valpere/civiclink/internal/store"
)

const (
	defaultTarget    = "es"
	defaultPageLimit = 20
)

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

type translateResponse struct {
	Success bool `json:"success"`
	*internal.TranslationResult
}

type civicTermRequest struct {
	Term           string `json:"term"`
	TargetLanguage string `json:"target_language"`
}

type civicTermResponse struct {
	OriginalTerm   string  `json:"original_term"`
	TranslatedTerm string  `json:"translated_term"`
	TargetLanguage string  `json:"target_language"`
	QualityScore   float64 `json:"quality_score"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type listResponse struct {
	Translations []store.Record `json:"translations"`
	Pagination   pagination     `json:"pagination"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"message":             "CivicLink Translation Service is running",
		"translation_service": s.translator.ServiceName(),
		"civic_languages":     len(languages.CivicTargets),
	})
}

func (s *Server) handleTranslate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}
	if req.TargetLanguage == "" {
		req.TargetLanguage = defaultTarget
	}

	result, err := s.translator.Translate(c.Request.Context(), req.Text, req.TargetLanguage, req.SourceLanguage)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	s.record(c.Request.Context(), result)

	c.JSON(http.StatusOK, translateResponse{Success: true, TranslationResult: result})
}

func (s *Server) handleCivicTerm(c *gin.Context) {
	var req civicTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	term := strings.TrimSpace(req.Term)
	if term == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Term is required"})
		return
	}
	if req.TargetLanguage == "" {
		req.TargetLanguage = defaultTarget
	}

	result, err := s.translator.Translate(c.Request.Context(), term, req.TargetLanguage, "")
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	s.record(c.Request.Context(), result)

	c.JSON(http.StatusOK, civicTermResponse{
		OriginalTerm:   term,
		TranslatedTerm: result.TranslatedText,
		TargetLanguage: req.TargetLanguage,
		QualityScore:   result.QualityScore,
	})
}

func (s *Server) handleLanguages(c *gin.Context) {
	civic := languages.Civic()
	c.JSON(http.StatusOK, gin.H{
		"civic_languages": civic,
		"civic_targets":   languages.CivicTargets,
		"total_count":     len(civic),
	})
}

func (s *Server) handleListTranslations(c *gin.Context) {
	page, err := intQuery(c, "page", 1)
	if err != nil || page < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	limit, err := intQuery(c, "limit", defaultPageLimit)
	if err != nil || limit < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}
	if limit > store.MaxListLimit {
		limit = store.MaxListLimit
	}

	filter := store.ListFilter{
		TargetLanguage: c.Query("language"),
		Search:         c.Query("search"),
		Limit:          limit,
		Offset:         (page - 1) * limit,
	}

	ctx := c.Request.Context()
	total, err := s.history.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count translations: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	records, err := s.history.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list translations: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if records == nil {
		records = []store.Record{}
	}

	c.JSON(http.StatusOK, listResponse{
		Translations: records,
		Pagination: pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	})
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.history.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("Failed to load stats: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
