package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/platform/logger"
	"github.com/presently/presently-api/internal/store"
)

// PostgresSuggestionStore implements store.SuggestionStore.
type PostgresSuggestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSuggestionStore creates a new PostgresSuggestionStore.
func NewPostgresSuggestionStore(db store.DBTX, log *slog.Logger) *PostgresSuggestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresSuggestionStore{
		db:     db,
		logger: log.With(slog.String("component", "suggestion_store")),
	}
}

var _ store.SuggestionStore = (*PostgresSuggestionStore)(nil)

const suggestionColumns = `id, batch_id, recipient_name, name, description, price, category, image_url, link, created_at`

// WithTx implements store.SuggestionStore.WithTx
func (s *PostgresSuggestionStore) WithTx(tx *sql.Tx) store.SuggestionStore {
	return &PostgresSuggestionStore{db: tx, logger: s.logger}
}

// Create implements store.SuggestionStore.Create
func (s *PostgresSuggestionStore) Create(ctx context.Context, g *domain.GiftSuggestion) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	g.RecordID = uuid.New()
	g.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO gift_suggestions (`+suggestionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		g.RecordID, g.ID, g.RecipientName, g.Name, g.Description, g.Price,
		g.Category, g.ImageURL, g.Link, g.CreatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	log.Debug("gift suggestion stored",
		slog.String("record_id", g.RecordID.String()),
		slog.String("id", g.ID))
	return nil
}

// GetByID implements store.SuggestionStore.GetByID
func (s *PostgresSuggestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.GiftSuggestion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+suggestionColumns+`
		FROM gift_suggestions WHERE id = $1`, id)
	return scanSuggestion(row)
}

func scanSuggestion(row rowScanner) (*domain.GiftSuggestion, error) {
	var g domain.GiftSuggestion
	err := row.Scan(&g.RecordID, &g.ID, &g.RecipientName, &g.Name, &g.Description,
		&g.Price, &g.Category, &g.ImageURL, &g.Link, &g.CreatedAt)
	if err != nil {
		return nil, mapEntityError(err, store.ErrSuggestionNotFound, nil)
	}
	return &g, nil
}
