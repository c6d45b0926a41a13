package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/mocks"
	"github.com/presently/presently-api/internal/service"
	"github.com/presently/presently-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("creates user in a transaction", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		tx := &mocks.MockTxRunner{}
		svc := service.NewUserService(users, tx, quietLogger())

		user, err := svc.CreateUser(context.Background(), "New@Example.com", "password1234567")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, domain.RoleCore, user.Role)
		assert.Empty(t, user.Password, "plaintext password should be cleared by the store")
		assert.Equal(t, 1, tx.Calls)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		svc := service.NewUserService(users, &mocks.MockTxRunner{}, quietLogger())

		_, err := svc.CreateUser(context.Background(), "dup@example.com", "password1234567")
		require.NoError(t, err)
		_, err = svc.CreateUser(context.Background(), "dup@example.com", "password1234567")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("invalid password never reaches the store", func(t *testing.T) {
		t.Parallel()
		tx := &mocks.MockTxRunner{}
		svc := service.NewUserService(mocks.NewMockUserStore(), tx, quietLogger())

		_, err := svc.CreateUser(context.Background(), "a@example.com", "short")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		assert.Zero(t, tx.Calls)
	})

	t.Run("transaction failure", func(t *testing.T) {
		t.Parallel()
		txErr := errors.New("begin failed")
		svc := service.NewUserService(mocks.NewMockUserStore(), &mocks.MockTxRunner{Err: txErr}, quietLogger())

		_, err := svc.CreateUser(context.Background(), "a@example.com", "password1234567")
		assert.ErrorIs(t, err, txErr)
	})
}

func TestUserService_Lookups(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	svc := service.NewUserService(users, &mocks.MockTxRunner{}, quietLogger())
	created, err := svc.CreateUser(context.Background(), "look@example.com", "password1234567")
	require.NoError(t, err)

	got, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got, err = svc.GetUserByEmail(context.Background(), "LOOK@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = svc.GetUserByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
