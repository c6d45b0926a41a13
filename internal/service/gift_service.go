package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/platform/logger"
	"github.com/presently/presently-api/internal/store"
)

// Suggester produces enriched gift suggestions for a recipient profile.
// gift.Pipeline is the production implementation.
type Suggester interface {
	Suggest(ctx context.Context, recipient domain.Recipient) ([]domain.GiftSuggestion, error)
}

// GiftService covers recipients, suggestion generation and saved gifts.
// Every operation is scoped to the calling user.
type GiftService interface {
	// CreateRecipient validates profile and stores it for userID.
	CreateRecipient(ctx context.Context, userID uuid.UUID, profile domain.Recipient) (*domain.Recipient, error)

	// ListRecipients returns userID's recipients, newest first.
	ListRecipients(ctx context.Context, userID uuid.UUID) ([]*domain.Recipient, error)

	// GenerateSuggestions runs the pipeline for userID's newest recipient named
	// recipientName and persists the result. Returns store.ErrRecipientNotFound
	// when no such recipient exists and the generator's error unchanged (wrapped)
	// when generation fails.
	GenerateSuggestions(ctx context.Context, userID uuid.UUID, recipientName string) ([]domain.GiftSuggestion, error)

	// SaveGift bookmarks a persisted suggestion for userID.
	SaveGift(ctx context.Context, userID, suggestionID uuid.UUID) (*domain.SavedGift, error)

	// ListSavedGifts returns userID's saved gifts with their suggestions, newest first.
	ListSavedGifts(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error)
}

type giftServiceImpl struct {
	recipients  store.RecipientStore
	suggestions store.SuggestionStore
	saved       store.SavedGiftStore
	suggester   Suggester
	tx          store.TxRunner
	logger      *slog.Logger
}

// NewGiftService creates a GiftService. All dependencies are required.
func NewGiftService(
	recipients store.RecipientStore,
	suggestions store.SuggestionStore,
	saved store.SavedGiftStore,
	suggester Suggester,
	tx store.TxRunner,
	log *slog.Logger,
) (GiftService, error) {
	switch {
	case recipients == nil:
		return nil, errors.New("recipient store cannot be nil")
	case suggestions == nil:
		return nil, errors.New("suggestion store cannot be nil")
	case saved == nil:
		return nil, errors.New("saved gift store cannot be nil")
	case suggester == nil:
		return nil, errors.New("suggester cannot be nil")
	case tx == nil:
		return nil, errors.New("transaction runner cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &giftServiceImpl{
		recipients:  recipients,
		suggestions: suggestions,
		saved:       saved,
		suggester:   suggester,
		tx:          tx,
		logger:      log.With("component", "gift_service"),
	}, nil
}

func (s *giftServiceImpl) CreateRecipient(
	ctx context.Context,
	userID uuid.UUID,
	profile domain.Recipient,
) (*domain.Recipient, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	profile.Name = strings.TrimSpace(profile.Name)
	recipient, err := domain.NewRecipient(userID, profile)
	if err != nil {
		log.Debug("rejected recipient profile", "error", err)
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}

	if err := s.recipients.Create(ctx, recipient); err != nil {
		log.Error("failed to save recipient", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to save recipient: %w", err)
	}

	log.Info("recipient created", "recipient_id", recipient.ID, "user_id", userID)
	return recipient, nil
}

func (s *giftServiceImpl) ListRecipients(ctx context.Context, userID uuid.UUID) ([]*domain.Recipient, error) {
	recipients, err := s.recipients.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list recipients", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	return recipients, nil
}

func (s *giftServiceImpl) GenerateSuggestions(
	ctx context.Context,
	userID uuid.UUID,
	recipientName string,
) ([]domain.GiftSuggestion, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	name := strings.TrimSpace(recipientName)
	if name == "" {
		return nil, ErrEmptyRecipientName
	}

	recipient, err := s.recipients.FindLatestByName(ctx, userID, name)
	if err != nil {
		if !errors.Is(err, store.ErrRecipientNotFound) {
			log.Error("failed to look up recipient", "error", err, "user_id", userID)
		}
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}

	suggestions, err := s.suggester.Suggest(ctx, *recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		log.Warn("generator returned no usable suggestions", "recipient_id", recipient.ID)
		return []domain.GiftSuggestion{}, nil
	}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.suggestions.WithTx(tx)
		for i := range suggestions {
			if err := txStore.Create(ctx, &suggestions[i]); err != nil {
				return fmt.Errorf("suggestion %s: %w", suggestions[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to persist suggestions", "error", err, "recipient_id", recipient.ID)
		return nil, fmt.Errorf("failed to save suggestions: %w", err)
	}

	log.Info("suggestions saved", "recipient_id", recipient.ID, "count", len(suggestions))
	return suggestions, nil
}

func (s *giftServiceImpl) SaveGift(ctx context.Context, userID, suggestionID uuid.UUID) (*domain.SavedGift, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sg, err := domain.NewSavedGift(userID, suggestionID)
	if err != nil {
		return nil, fmt.Errorf("invalid saved gift: %w", err)
	}

	if err := s.saved.Create(ctx, sg); err != nil {
		if store.IsNotFoundError(err) || store.IsDuplicateError(err) {
			log.Debug("saved gift rejected", "error", err, "suggestion_id", suggestionID)
		} else {
			log.Error("failed to save gift", "error", err, "suggestion_id", suggestionID)
		}
		return nil, fmt.Errorf("failed to save gift: %w", err)
	}

	log.Info("gift saved", "saved_gift_id", sg.ID, "suggestion_id", suggestionID)
	return sg, nil
}

func (s *giftServiceImpl) ListSavedGifts(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error) {
	saved, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list saved gifts", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list saved gifts: %w", err)
	}
	return saved, nil
}
