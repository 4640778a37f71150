package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

// SeedMessages returns the demo conversation with Robert Fox.
func SeedMessages() map[string][]model.ChatMessage {
	return map[string][]model.ChatMessage{
		"p1": {
			{
				ID:       uuid.New(),
				SenderID: "p1",
				Text:     "Hi! I can help with your electrical wiring issue.",
				Type:     model.MessageTypeText,
				SentAt:   time.Now().Add(-100 * time.Second),
			},
			{
				ID:       uuid.New(),
				SenderID: "u1",
				Text:     "Great, are you available tomorrow?",
				Type:     model.MessageTypeText,
				SentAt:   time.Now().Add(-90 * time.Second),
			},
		},
	}
}

// SeedCallLogs returns the demo call history: one missed incoming call from
// yesterday.
func SeedCallLogs() []model.CallLog {
	return []model.CallLog{
		{
			ID:        uuid.New(),
			ProID:     "p1",
			ProName:   "Robert Fox",
			ProImage:  "https://picsum.photos/200/200?random=1",
			Kind:      model.CallKindAudio,
			Direction: "incoming",
			Status:    "missed",
			Timestamp: time.Now().Add(-24 * time.Hour),
			Duration:  "0s",
		},
	}
}
