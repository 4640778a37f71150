package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

func TestRepository_AppendMessage_Chronological(t *testing.T) {
	repo := NewRepository(nil, nil)
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		_, err := repo.AppendMessage(ctx, "p1", &model.ChatMessage{
			Text: text,
			Type: model.MessageTypeText,
		})
		require.NoError(t, err)
	}

	msgs, err := repo.GetMessages(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "three", msgs[2].Text)
}

func TestRepository_GetMessages_UnknownConversation(t *testing.T) {
	repo := NewRepository(SeedMessages(), nil)

	msgs, err := repo.GetMessages(context.Background(), "p99")
	require.NoError(t, err)

	assert.Empty(t, msgs)
}

func TestRepository_SeededConversation(t *testing.T) {
	repo := NewRepository(SeedMessages(), nil)

	msgs, err := repo.GetMessages(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, "p1", msgs[0].SenderID)
}

func TestRepository_AppendCallLog_MostRecentFirst(t *testing.T) {
	repo := NewRepository(nil, SeedCallLogs())
	ctx := context.Background()

	_, err := repo.AppendCallLog(ctx, &model.CallLog{
		ProID:     "p2",
		Kind:      model.CallKindVideo,
		Direction: "outgoing",
		Status:    "completed",
	})
	require.NoError(t, err)

	logs, err := repo.GetCallLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, "p2", logs[0].ProID)
	assert.Equal(t, "missed", logs[1].Status)
}
