package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/valpere/civiclink/internal"
)

// ErrNotFound is returned when a translation id does not exist.
var ErrNotFound = errors.New("translation not found")

// MaxListLimit caps the page size accepted by List.
const MaxListLimit = 100

type Store struct {
	db *sql.DB
}

// Record is a stored translation.
type Record struct {
	ID              string    `json:"id"`
	OriginalText    string    `json:"original_text"`
	TranslatedText  string    `json:"translated_text"`
	SourceLanguage  string    `json:"source_language"`
	TargetLanguage  string    `json:"target_language"`
	ChunksProcessed int       `json:"chunks_processed"`
	TotalCharacters int       `json:"total_characters"`
	QualityScore    float64   `json:"quality_score"`
	Service         string    `json:"translation_service"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListFilter narrows List. Zero values mean no filtering; Limit 0 means
// MaxListLimit.
type ListFilter struct {
	TargetLanguage string
	Search         string
	SourceText     string
	Limit          int
	Offset         int
}

// Stats summarises the translation history.
type Stats struct {
	TotalTranslations int            `json:"total_translations"`
	TotalCharacters   int            `json:"total_characters"`
	AverageQuality    float64        `json:"average_quality"`
	ByLanguage        map[string]int `json:"by_language"`
}

var recordColumns = []string{
	"id", "original_text", "translated_text", "source_language", "target_language",
	"chunks_processed", "total_characters", "quality_score", "service", "created_at",
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translations (
		id TEXT PRIMARY KEY,
		original_text TEXT NOT NULL,
		source_key TEXT NOT NULL,
		translated_text TEXT NOT NULL,
		source_language TEXT NOT NULL,
		target_language TEXT NOT NULL,
		chunks_processed INTEGER NOT NULL DEFAULT 0,
		total_characters INTEGER NOT NULL DEFAULT 0,
		quality_score REAL NOT NULL DEFAULT 0,
		service TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_translations_lookup ON translations(source_key, source_language, target_language);
	CREATE INDEX IF NOT EXISTS idx_translations_target ON translations(target_language);
	CREATE INDEX IF NOT EXISTS idx_translations_created ON translations(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveResult records a finished translation and returns its id.
func (s *Store) SaveResult(ctx context.Context, r *internal.TranslationResult) (string, error) {
	if r == nil {
		return "", fmt.Errorf("nil result")
	}

	id := uuid.NewString()
	createdAt := r.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args, err := sq.Insert("translations").
		Columns(
			"id", "original_text", "source_key", "translated_text", "source_language", "target_language",
			"chunks_processed", "total_characters", "quality_score", "service", "created_at",
		).
		Values(
			id, r.OriginalText, normalizeText(r.OriginalText), r.TranslatedText, r.SourceLanguage, r.TargetLanguage,
			r.ChunksProcessed, r.TotalCharacters, r.QualityScore, r.TranslationService, createdAt.UTC(),
		).
		ToSql()
	if err != nil {
		return "", err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	query, args, err := sq.Select(recordColumns...).
		From("translations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, err
}

// List returns translations newest first.
func (s *Store) List(ctx context.Context, f ListFilter) ([]Record, error) {
	limit := f.Limit
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	q := sq.Select(recordColumns...).
		From("translations").
		OrderBy("created_at DESC", "rowid DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := applyFilter(q, f).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Count returns the number of translations matching f, ignoring its
// Limit and Offset.
func (s *Store) Count(ctx context.Context, f ListFilter) (int, error) {
	query, args, err := applyFilter(sq.Select("COUNT(*)").From("translations"), f).ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func applyFilter(q sq.SelectBuilder, f ListFilter) sq.SelectBuilder {
	if f.TargetLanguage != "" {
		q = q.Where(sq.Eq{"target_language": f.TargetLanguage})
	}
	if f.SourceText != "" {
		q = q.Where(sq.Eq{"source_key": normalizeText(f.SourceText)})
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + search + "%"
		q = q.Where(sq.Or{
			sq.Like{"original_text": pattern},
			sq.Like{"translated_text": pattern},
		})
	}
	return q
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByLanguage: make(map[string]int)}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_characters), 0),
			COALESCE(AVG(quality_score), 0)
		FROM translations`).Scan(
		&stats.TotalTranslations,
		&stats.TotalCharacters,
		&stats.AverageQuality,
	)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select("target_language", "COUNT(*)").
		From("translations").
		GroupBy("target_language").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lang string
		var n int
		if err := rows.Scan(&lang, &n); err != nil {
			return nil, err
		}
		stats.ByLanguage[lang] = n
	}
	return stats, rows.Err()
}

// Delete permanently removes a translation by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Clear removes all translations and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translations`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		rec     Record
		service sql.NullString
	)
	err := row.Scan(
		&rec.ID, &rec.OriginalText, &rec.TranslatedText, &rec.SourceLanguage, &rec.TargetLanguage,
		&rec.ChunksProcessed, &rec.TotalCharacters, &rec.QualityScore, &service, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Service = service.String
	return &rec, nil
}

// normalizeText trims whitespace and applies Unicode NFC normalization
// for consistent source lookups.
func normalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
