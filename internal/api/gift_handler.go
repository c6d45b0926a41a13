package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/api/shared"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/service"
)

// GiftHandler handles recipient, suggestion and saved-gift requests.
// All routes require an authenticated user.
type GiftHandler struct {
	gifts service.GiftService
}

// NewGiftHandler creates a new GiftHandler.
func NewGiftHandler(gifts service.GiftService) *GiftHandler {
	return &GiftHandler{gifts: gifts}
}

// CreateRecipient handles POST /api/recipients.
func (h *GiftHandler) CreateRecipient(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateRecipientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	recipient, err := h.gifts.CreateRecipient(r.Context(), userID, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create recipient")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, recipient)
}

// ListRecipients handles GET /api/recipients.
func (h *GiftHandler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	recipients, err := h.gifts.ListRecipients(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list recipients")
		return
	}
	if recipients == nil {
		recipients = []*domain.Recipient{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, recipients)
}

// GenerateSuggestions handles POST /api/suggestions. Quota failures answer 429
// and other provider failures 502, each with its fixed user-facing message.
func (h *GiftHandler) GenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req GenerateSuggestionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	gifts, err := h.gifts.GenerateSuggestions(r.Context(), userID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate gift suggestions")
		return
	}
	if gifts == nil {
		gifts = []domain.GiftSuggestion{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuggestionsResponse{Gifts: gifts})
}

// SaveGift handles POST /api/saved-gifts.
func (h *GiftHandler) SaveGift(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req SaveGiftRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	suggestionID, err := uuid.Parse(req.SuggestionID)
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("suggestion_id", "has invalid format", domain.ErrInvalidID), "")
		return
	}

	sg, err := h.gifts.SaveGift(r.Context(), userID, suggestionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save gift")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newSavedGiftResponse(sg))
}

// ListSavedGifts handles GET /api/saved-gifts.
func (h *GiftHandler) ListSavedGifts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	saved, err := h.gifts.ListSavedGifts(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list saved gifts")
		return
	}

	resp := make([]SavedGiftResponse, 0, len(saved))
	for _, sg := range saved {
		resp = append(resp, newSavedGiftResponse(sg))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
