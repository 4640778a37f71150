package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

func TestRepository_Create_MostRecentFirst(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &model.Notification{Title: title})
		require.NoError(t, err)
	}

	notifications, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 3)

	assert.Equal(t, "third", notifications[0].Title)
	assert.Equal(t, "first", notifications[2].Title)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	id, err := repo.Create(ctx, &model.Notification{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	notifications, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	// Second removal of the same id reports not found.
	assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotificationNotFound)
}

func TestRepository_Delete_OnlyTargetRemoved(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	keepID, err := repo.Create(ctx, &model.Notification{Title: "keep"})
	require.NoError(t, err)
	dropID, err := repo.Create(ctx, &model.Notification{Title: "drop"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, dropID))

	notifications, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, keepID, notifications[0].ID)
}

func TestRepository_Delete_Unknown(t *testing.T) {
	repo := NewRepository()

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
