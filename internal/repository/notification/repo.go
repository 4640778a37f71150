package notification

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository holds the transient in-memory notification queue. Entries are
// prepended so iteration order is most-recent-first. Expiry timers are owned
// by the service layer, not the store.
type Repository struct {
	mu            sync.RWMutex
	notifications []*model.Notification
}

// NewRepository creates an empty notification repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Create prepends a notification to the queue.
func (r *Repository) Create(ctx context.Context, n *model.Notification) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	r.notifications = append([]*model.Notification{n}, r.notifications...)

	return n.ID, nil
}

// Delete removes the notification with the given id. Deleting an id that is
// already gone returns ErrNotificationNotFound; callers that need idempotent
// removal treat that as a no-op.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}

	return ErrNotificationNotFound
}

// GetAll returns all visible notifications, most recent first.
func (r *Repository) GetAll(ctx context.Context) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		out = append(out, *n)
	}

	return out, nil
}
