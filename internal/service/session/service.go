package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/config"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/session/mock.go -package=mocks

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrUnknownRole means the login request named a role outside the
	// client/professional pair.
	ErrUnknownRole = errors.New("unknown role")
)

// demoProID is the directory profile a professional demo login binds to when
// it did not come through onboarding.
const demoProID = "p1"

type scheduler interface {
	Schedule(ownerID uuid.UUID, delay time.Duration, fn func()) uuid.UUID
	CancelAll(ownerID uuid.UUID)
}

type notifier interface {
	Emit(ctx context.Context, title, message string, typ model.NotificationType) (model.Notification, error)
}

type proDirectory interface {
	GetByID(ctx context.Context, id string) (model.ProProfile, error)
}

// LoginRequest carries the identity attributes of a login.
type LoginRequest struct {
	Role     model.Role
	Name     string
	Email    string
	Location string
	ProID    string // optional; binds a professional login to a directory profile
}

// Service owns the volatile session table and the per-session simulated push
// timers. Sessions exist only for the lifetime of the process; a logout
// cancels every timer the session armed.
type Service struct {
	scheduler scheduler
	notifier  notifier
	pros      proDirectory
	cfg       config.Notifications

	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.Session
}

// NewService constructs a session service.
func NewService(sched scheduler, notifier notifier, pros proDirectory, cfg config.Notifications) *Service {
	return &Service{
		scheduler: sched,
		notifier:  notifier,
		pros:      pros,
		cfg:       cfg,
		sessions:  make(map[uuid.UUID]*model.Session),
	}
}

// Login authenticates a demo identity, creates a session and arms the
// one-shot simulated pushes for it: a delayed welcome, then a role-dependent
// "new job request" or "new message" push.
func (s *Service) Login(ctx context.Context, req LoginRequest) (model.Session, error) {
	user := model.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Role:     req.Role,
		Location: req.Location,
	}

	switch req.Role {
	case model.RoleProfessional:
		proID := req.ProID
		if proID == "" {
			proID = demoProID
		}
		pro, err := s.pros.GetByID(ctx, proID)
		if err != nil {
			return model.Session{}, fmt.Errorf("get professional profile: %w", err)
		}
		user.ProID = pro.ID
		user.AvatarURL = pro.ImageURL
		if user.Name == "" {
			user.Name = pro.Name
		}
	case model.RoleClient:
		user.AvatarURL = "https://picsum.photos/100/100"
		if user.Name == "" {
			user.Name = "Alex Johnson"
		}
	default:
		return model.Session{}, ErrUnknownRole
	}

	sess := &model.Session{
		Token:     uuid.New(),
		User:      user,
		Favorites: []string{},
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	s.armPushes(sess.Token, user)

	zlog.Logger.Info().
		Str("session", sess.Token.String()).
		Str("role", string(user.Role)).
		Msg("session created")

	return *sess, nil
}

// armPushes schedules the session's simulated pushes, keyed by the session
// token so a logout can revoke the ones that have not fired yet.
func (s *Service) armPushes(token uuid.UUID, user model.User) {
	first := user.Name
	if fields := strings.Fields(first); len(fields) > 0 {
		first = fields[0]
	}

	s.scheduler.Schedule(token, s.cfg.WelcomeDelay, func() {
		s.emit(fmt.Sprintf("Welcome back, %s", first), "You have successfully logged in.", model.NotificationTypeSystem)
	})

	switch user.Role {
	case model.RoleProfessional:
		s.scheduler.Schedule(token, s.cfg.ProPushDelay, func() {
			s.emit("New Job Request", "AC Repair request near Bandra West. Value: $50", model.NotificationTypeBooking)
		})
	case model.RoleClient:
		s.scheduler.Schedule(token, s.cfg.ClientPushDelay, func() {
			s.emit("New Message", "Robert Fox: I have arrived at the location.", model.NotificationTypeMessage)
		})
	}
}

// Logout drops the session and cancels its pending scheduled pushes.
func (s *Service) Logout(ctx context.Context, token uuid.UUID) error {
	s.mu.Lock()
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	s.scheduler.CancelAll(token)

	zlog.Logger.Info().Str("session", token.String()).Msg("session ended")

	return nil
}

// Resolve returns the session for a token.
func (s *Service) Resolve(ctx context.Context, token uuid.UUID) (model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return model.Session{}, ErrSessionNotFound
	}

	return *sess, nil
}

// ToggleFavorite adds or removes a professional from the session's favorites
// and returns the updated list.
func (s *Service) ToggleFavorite(ctx context.Context, token uuid.UUID, proID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}

	for i, id := range sess.Favorites {
		if id == proID {
			sess.Favorites = append(sess.Favorites[:i], sess.Favorites[i+1:]...)
			return append([]string{}, sess.Favorites...), nil
		}
	}

	sess.Favorites = append(sess.Favorites, proID)
	return append([]string{}, sess.Favorites...), nil
}

// emit sends a simulated push; failures are logged and swallowed.
func (s *Service) emit(title, message string, typ model.NotificationType) {
	if _, err := s.notifier.Emit(context.Background(), title, message, typ); err != nil {
		zlog.Logger.Error().Err(err).Str("title", title).Msg("failed to emit push notification")
	}
}
