package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/localrail/railbook/internal/logger"
	"github.com/localrail/railbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) UserRepository {
	t.Helper()
	return NewUserRepository(filepath.Join(t.TempDir(), "users.json"), logger.Nop())
}

func TestUserRepository_List_StartsEmpty(t *testing.T) {
	repo := newTestUserRepo(t)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_Create(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	t.Run("persists the user and clears the plaintext password", func(t *testing.T) {
		created, err := repo.Create(ctx, models.User{
			UserID:         "u-1",
			Name:           "Ravi",
			Password:       "plaintext",
			HashedPassword: "$2a$10$fakehash",
		})
		require.NoError(t, err)
		assert.Empty(t, created.Password)
		assert.NotNil(t, created.TicketsBooked)

		found, err := repo.FindByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, "Ravi", found.Name)
		assert.Empty(t, found.Password)
		assert.Equal(t, "$2a$10$fakehash", found.HashedPassword)
	})

	t.Run("rejects a duplicate name regardless of case", func(t *testing.T) {
		_, err := repo.Create(ctx, models.User{UserID: "u-2", Name: "ravi"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestUserRepository_FindByName(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, models.User{UserID: "u-1", Name: "Ravi"})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		user, err := repo.FindByName(ctx, "Ravi")
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByName(ctx, "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := newTestUserRepo(t)

	_, err := repo.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_UpdateTickets(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, models.User{UserID: "u-1", Name: "Ravi"})
	require.NoError(t, err)

	t.Run("replaces the list", func(t *testing.T) {
		tickets := []models.Ticket{{TicketID: "TKT_1", UserID: "u-1", Source: "Guntur", Destination: "Vijayawada"}}
		require.NoError(t, repo.UpdateTickets(ctx, "u-1", tickets))

		user, err := repo.FindByID(ctx, "u-1")
		require.NoError(t, err)
		require.Len(t, user.TicketsBooked, 1)
		assert.Equal(t, "TKT_1", user.TicketsBooked[0].TicketID)
	})

	t.Run("nil empties the list", func(t *testing.T) {
		require.NoError(t, repo.UpdateTickets(ctx, "u-1", nil))

		user, err := repo.FindByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Empty(t, user.TicketsBooked)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := repo.UpdateTickets(ctx, "ghost", nil)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
