package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
	notifrepo "github.com/gwalharshu287-lang/Service-get/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notifRepo interface {
	Create(ctx context.Context, n *model.Notification) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]model.Notification, error)
}

// Service manages the transient notification queue. Every emitted
// notification owns an independent expiry timer; removal of one never
// touches another's timer. A notification leaves the queue on timeout or
// explicit dismissal, whichever comes first.
type Service struct {
	repo notifRepo
	ttl  time.Duration

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

// NewService creates a notification service with the given auto-dismiss
// window.
func NewService(repo notifRepo, ttl time.Duration) *Service {
	return &Service{
		repo:   repo,
		ttl:    ttl,
		timers: make(map[uuid.UUID]*time.Timer),
	}
}

// Emit creates a notification, prepends it to the queue and arms its expiry
// timer.
func (s *Service) Emit(ctx context.Context, title, message string, typ model.NotificationType) (model.Notification, error) {
	n := &model.Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now(),
	}

	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	s.mu.Lock()
	s.timers[id] = time.AfterFunc(s.ttl, func() {
		s.expire(id)
	})
	s.mu.Unlock()

	zlog.Logger.Info().Str("id", id.String()).Str("title", title).Msg("notification emitted")

	return *n, nil
}

// expire removes a notification whose window elapsed. The entry may already
// be gone if the user dismissed it in the meantime; that is not an error.
func (s *Service) expire(id uuid.UUID) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	err := s.repo.Delete(context.Background(), id)
	if err != nil && !errors.Is(err, notifrepo.ErrNotificationNotFound) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to expire notification")
	}
}

// Dismiss removes a notification immediately and cancels its pending expiry
// timer. Dismissing an already-removed id is a no-op.
func (s *Service) Dismiss(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			return nil
		}
		return fmt.Errorf("dismiss notification: %w", err)
	}

	return nil
}

// List returns all visible notifications, most recent first.
func (s *Service) List(ctx context.Context) ([]model.Notification, error) {
	notifications, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// Stop cancels every pending expiry timer. Called once on shutdown.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
