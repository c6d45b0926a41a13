package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/platform/logger"
	"github.com/presently/presently-api/internal/store"
)

// PostgresSavedGiftStore implements store.SavedGiftStore.
type PostgresSavedGiftStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSavedGiftStore creates a new PostgresSavedGiftStore.
func NewPostgresSavedGiftStore(db store.DBTX, log *slog.Logger) *PostgresSavedGiftStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresSavedGiftStore{
		db:     db,
		logger: log.With(slog.String("component", "saved_gift_store")),
	}
}

var _ store.SavedGiftStore = (*PostgresSavedGiftStore)(nil)

// Create implements store.SavedGiftStore.Create
func (s *PostgresSavedGiftStore) Create(ctx context.Context, sg *domain.SavedGift) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_gifts (id, user_id, suggestion_id, created_at)
		VALUES ($1, $2, $3, $4)`,
		sg.ID, sg.UserID, sg.SuggestionID, sg.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			// the user comes from a verified token, so the dangling key is the suggestion
			return store.ErrSuggestionNotFound
		}
		return MapError(err)
	}

	log.Debug("gift saved",
		slog.String("saved_gift_id", sg.ID.String()),
		slog.String("suggestion_id", sg.SuggestionID.String()))
	return nil
}

// ListByUser implements store.SavedGiftStore.ListByUser
func (s *PostgresSavedGiftStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sg.id, sg.user_id, sg.suggestion_id, sg.created_at,
		       gs.id, gs.batch_id, gs.recipient_name, gs.name, gs.description, gs.price,
		       gs.category, gs.image_url, gs.link, gs.created_at
		FROM saved_gifts sg
		JOIN gift_suggestions gs ON gs.id = sg.suggestion_id
		WHERE sg.user_id = $1
		ORDER BY sg.created_at DESC, sg.id`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	saved := make([]*domain.SavedGift, 0)
	for rows.Next() {
		var (
			sg domain.SavedGift
			g  domain.GiftSuggestion
		)
		err := rows.Scan(&sg.ID, &sg.UserID, &sg.SuggestionID, &sg.CreatedAt,
			&g.RecordID, &g.ID, &g.RecipientName, &g.Name, &g.Description, &g.Price,
			&g.Category, &g.ImageURL, &g.Link, &g.CreatedAt)
		if err != nil {
			return nil, MapError(err)
		}
		sg.Suggestion = &g
		saved = append(saved, &sg)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return saved, nil
}
