package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/platform/logger"
	"github.com/presently/presently-api/internal/store"
)

// PostgresRecipientStore implements store.RecipientStore.
// Interests and budget are stored as JSONB documents.
type PostgresRecipientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRecipientStore creates a new PostgresRecipientStore.
func NewPostgresRecipientStore(db store.DBTX, log *slog.Logger) *PostgresRecipientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresRecipientStore{
		db:     db,
		logger: log.With(slog.String("component", "recipient_store")),
	}
}

var _ store.RecipientStore = (*PostgresRecipientStore)(nil)

const recipientColumns = `id, user_id, name, age, gender, relationship, interests, occasion, budget, created_at`

// WithTx implements store.RecipientStore.WithTx
func (s *PostgresRecipientStore) WithTx(tx *sql.Tx) store.RecipientStore {
	return &PostgresRecipientStore{db: tx, logger: s.logger}
}

// Create implements store.RecipientStore.Create
func (s *PostgresRecipientStore) Create(ctx context.Context, r *domain.Recipient) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := r.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	interests, err := json.Marshal(r.Interests)
	if err != nil {
		return fmt.Errorf("failed to encode interests: %w", err)
	}
	budget, err := json.Marshal(r.Budget)
	if err != nil {
		return fmt.Errorf("failed to encode budget: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recipients (`+recipientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ID, r.UserID, r.Name, r.Age, string(r.Gender), r.Relationship,
		interests, r.Occasion, budget, r.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return store.ErrUserNotFound
		}
		return MapError(err)
	}

	log.Debug("recipient created",
		slog.String("recipient_id", r.ID.String()),
		slog.String("user_id", r.UserID.String()))
	return nil
}

// ListByUser implements store.RecipientStore.ListByUser
func (s *PostgresRecipientStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Recipient, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recipientColumns+`
		FROM recipients
		WHERE user_id = $1
		ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	recipients := make([]*domain.Recipient, 0)
	for rows.Next() {
		r, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, r)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return recipients, nil
}

// FindLatestByName implements store.RecipientStore.FindLatestByName
func (s *PostgresRecipientStore) FindLatestByName(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*domain.Recipient, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recipientColumns+`
		FROM recipients
		WHERE user_id = $1 AND name = $2
		ORDER BY created_at DESC
		LIMIT 1`, userID, name)
	return scanRecipient(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipient(row rowScanner) (*domain.Recipient, error) {
	var (
		r         domain.Recipient
		gender    string
		interests []byte
		budget    []byte
	)
	err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Age, &gender, &r.Relationship,
		&interests, &r.Occasion, &budget, &r.CreatedAt)
	if err != nil {
		return nil, mapEntityError(err, store.ErrRecipientNotFound, nil)
	}
	r.Gender = domain.Gender(gender)

	if err := json.Unmarshal(interests, &r.Interests); err != nil {
		return nil, fmt.Errorf("failed to decode interests for recipient %s: %w", r.ID, err)
	}
	if r.Interests == nil {
		r.Interests = []string{}
	}
	if err := json.Unmarshal(budget, &r.Budget); err != nil {
		return nil, fmt.Errorf("failed to decode budget for recipient %s: %w", r.ID, err)
	}
	return &r, nil
}
