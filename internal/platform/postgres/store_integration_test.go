//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/platform/postgres"
	"github.com/presently/presently-api/internal/store"
	"github.com/presently/presently-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testDB *sql.DB

// TestMain opens one connection pool and migrates the schema once for all tests.
func TestMain(m *testing.M) {
	dbURL := testdb.GetTestDatabaseURL()
	if dbURL == "" {
		fmt.Printf("%s not set, skipping postgres integration tests\n", testdb.DatabaseURLEnv)
		os.Exit(0)
	}

	var err error
	testDB, err = testdb.OpenMigrated(dbURL)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	code := m.Run()
	_ = testDB.Close()
	os.Exit(code)
}

func withTx(t *testing.T, fn func(ctx context.Context, tx *sql.Tx)) {
	t.Helper()
	testdb.WithTx(t, testDB, fn)
}

func createTestUser(t *testing.T, ctx context.Context, tx *sql.Tx) *domain.User {
	t.Helper()
	user, err := domain.NewUser(fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8]), "password1234567")
	require.NoError(t, err)
	require.NoError(t, postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil).Create(ctx, user))
	return user
}

func createTestSuggestion(t *testing.T, ctx context.Context, tx *sql.Tx, name string) *domain.GiftSuggestion {
	t.Helper()
	g := &domain.GiftSuggestion{
		ID:            "gift-1",
		RecipientName: "Alex",
		GiftCandidate: domain.GiftCandidate{
			Name: name, Description: "A gift", Price: 42, Category: "Misc",
		},
		ImageURL: "https://images.example/1.jpg",
		Link:     "https://www.amazon.com/s?k=x",
	}
	require.NoError(t, postgres.NewPostgresSuggestionStore(tx, nil).Create(ctx, g))
	return g
}

func TestUserStore(t *testing.T) {
	withTx(t, func(ctx context.Context, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)

		user, err := domain.NewUser("Mixed.Case@Example.com", "password1234567")
		require.NoError(t, err)
		require.NoError(t, users.Create(ctx, user))
		assert.Empty(t, user.Password, "plaintext password should be cleared")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("password1234567")))

		byEmail, err := users.GetByEmail(ctx, "mixed.case@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.Equal(t, domain.RoleCore, byEmail.Role)

		byID, err := users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)

		_, err = users.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		dup, err := domain.NewUser("mixed.case@example.com", "password1234567")
		require.NoError(t, err)
		assert.ErrorIs(t, users.Create(ctx, dup), store.ErrEmailExists)
	})
}

func TestRecipientStore(t *testing.T) {
	withTx(t, func(ctx context.Context, tx *sql.Tx) {
		user := createTestUser(t, ctx, tx)
		recipients := postgres.NewPostgresRecipientStore(tx, nil)

		profile := domain.Recipient{
			Name: "Alex", Age: 30, Gender: domain.GenderMale, Relationship: "friend",
			Interests: []string{"chess", "coffee"}, Occasion: "birthday",
			Budget: domain.Budget{Min: 500, Max: 2000},
		}
		older, err := domain.NewRecipient(user.ID, profile)
		require.NoError(t, err)
		older.CreatedAt = older.CreatedAt.Add(-time.Hour)
		require.NoError(t, recipients.Create(ctx, older))

		profile.Interests = []string{"hiking"}
		newer, err := domain.NewRecipient(user.ID, profile)
		require.NoError(t, err)
		require.NoError(t, recipients.Create(ctx, newer))

		found, err := recipients.FindLatestByName(ctx, user.ID, "Alex")
		require.NoError(t, err)
		assert.Equal(t, newer.ID, found.ID)
		assert.Equal(t, []string{"hiking"}, found.Interests)
		assert.Equal(t, domain.Budget{Min: 500, Max: 2000}, found.Budget)

		_, err = recipients.FindLatestByName(ctx, user.ID, "Nobody")
		assert.ErrorIs(t, err, store.ErrRecipientNotFound)

		_, err = recipients.FindLatestByName(ctx, uuid.New(), "Alex")
		assert.ErrorIs(t, err, store.ErrRecipientNotFound, "recipients are scoped to their owner")

		list, err := recipients.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
	})
}

func TestSuggestionAndSavedGiftStores(t *testing.T) {
	withTx(t, func(ctx context.Context, tx *sql.Tx) {
		user := createTestUser(t, ctx, tx)
		suggestions := postgres.NewPostgresSuggestionStore(tx, nil)
		saved := postgres.NewPostgresSavedGiftStore(tx, nil)

		first := createTestSuggestion(t, ctx, tx, "Chess Set")
		assert.NotEqual(t, uuid.Nil, first.RecordID)
		assert.False(t, first.CreatedAt.IsZero())

		got, err := suggestions.GetByID(ctx, first.RecordID)
		require.NoError(t, err)
		assert.Equal(t, "Chess Set", got.Name)
		assert.Equal(t, "gift-1", got.ID)

		_, err = suggestions.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrSuggestionNotFound)

		bad := &domain.GiftSuggestion{ID: "gift-1"}
		assert.ErrorIs(t, suggestions.Create(ctx, bad), store.ErrInvalidEntity)

		second := createTestSuggestion(t, ctx, tx, "Pour-over Kit")

		sg1, err := domain.NewSavedGift(user.ID, first.RecordID)
		require.NoError(t, err)
		sg1.CreatedAt = sg1.CreatedAt.Add(-time.Minute)
		require.NoError(t, saved.Create(ctx, sg1))

		sg2, err := domain.NewSavedGift(user.ID, second.RecordID)
		require.NoError(t, err)
		require.NoError(t, saved.Create(ctx, sg2))

		list, err := saved.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, sg2.ID, list[0].ID)
		require.NotNil(t, list[0].Suggestion)
		assert.Equal(t, "Pour-over Kit", list[0].Suggestion.Name)

		missing, err := domain.NewSavedGift(user.ID, uuid.New())
		require.NoError(t, err)
		assert.ErrorIs(t, saved.Create(ctx, missing), store.ErrSuggestionNotFound)
	})
}
