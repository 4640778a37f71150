package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

// Repository holds in-memory conversations keyed by professional id, plus the
// call history log. Messages are appended in arrival order; the call history
// is prepended most-recent-first like every other feed in the store.
type Repository struct {
	mu       sync.RWMutex
	messages map[string][]*model.ChatMessage
	calls    []*model.CallLog
}

// NewRepository creates a chat store with the given seed data.
func NewRepository(messages map[string][]model.ChatMessage, calls []model.CallLog) *Repository {
	r := &Repository{messages: make(map[string][]*model.ChatMessage)}

	for proID, msgs := range messages {
		for i := range msgs {
			m := msgs[i]
			r.messages[proID] = append(r.messages[proID], &m)
		}
	}
	for i := range calls {
		c := calls[i]
		r.calls = append(r.calls, &c)
	}

	return r
}

// AppendMessage adds a message to the conversation with the given professional.
func (r *Repository) AppendMessage(ctx context.Context, proID string, m *model.ChatMessage) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.SentAt.IsZero() {
		m.SentAt = time.Now()
	}

	r.messages[proID] = append(r.messages[proID], m)

	return m.ID, nil
}

// GetMessages returns the conversation with the given professional in
// chronological order. An unknown conversation is an empty one, not an error.
func (r *Repository) GetMessages(ctx context.Context, proID string) ([]model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.messages[proID]
	out := make([]model.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *m)
	}

	return out, nil
}

// AppendCallLog prepends an entry to the call history.
func (r *Repository) AppendCallLog(ctx context.Context, c *model.CallLog) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	r.calls = append([]*model.CallLog{c}, r.calls...)

	return c.ID, nil
}

// GetCallLogs returns the call history, most recent first.
func (r *Repository) GetCallLogs(ctx context.Context) ([]model.CallLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.CallLog, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, *c)
	}

	return out, nil
}
