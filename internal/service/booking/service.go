package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/booking/mock.go -package=mocks

var (
	// ErrValidation means the request was rejected before any mutation.
	ErrValidation = errors.New("invalid booking request")
	// ErrForbidden means the actor may not transition this booking.
	ErrForbidden = errors.New("actor may not modify this booking")
)

type bookingRepo interface {
	Create(ctx context.Context, b *model.Booking) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (model.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	ListByPro(ctx context.Context, proID string) ([]model.Booking, error)
}

type proDirectory interface {
	GetByID(ctx context.Context, id string) (model.ProProfile, error)
}

type notifier interface {
	Emit(ctx context.Context, title, message string, typ model.NotificationType) (model.Notification, error)
}

// CreateRequest carries everything needed to open a booking.
type CreateRequest struct {
	ProID   string
	Date    time.Time
	Time    string
	Notes   string
	Address string
}

// Service owns the booking lifecycle: validated creation, the status
// transition table, and the notification fan-out that accompanies every
// state change.
type Service struct {
	repo     bookingRepo
	pros     proDirectory
	notifier notifier
}

// NewService constructs a booking service with its dependencies.
func NewService(repo bookingRepo, pros proDirectory, notifier notifier) *Service {
	return &Service{repo: repo, pros: pros, notifier: notifier}
}

// Create validates the request and opens a PENDING booking for the actor.
// A missing date or time slot rejects the request before any mutation. The
// amount is the professional's flat hourly rate.
func (s *Service) Create(ctx context.Context, actor model.User, req CreateRequest) (model.Booking, error) {
	if req.Date.IsZero() {
		return model.Booking{}, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if req.Time == "" {
		return model.Booking{}, fmt.Errorf("%w: time is required", ErrValidation)
	}

	pro, err := s.pros.GetByID(ctx, req.ProID)
	if err != nil {
		return model.Booking{}, fmt.Errorf("get professional: %w", err)
	}

	b := &model.Booking{
		ProID:       pro.ID,
		UserID:      actor.ID,
		ProName:     pro.Name,
		ProCategory: pro.Category,
		ProImage:    pro.ImageURL,
		Date:        req.Date,
		Time:        req.Time,
		Status:      model.BookingStatusPending,
		Notes:       req.Notes,
		TotalAmount: pro.HourlyRate,
		Address:     req.Address,
	}

	id, err := s.repo.Create(ctx, b)
	if err != nil {
		return model.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	s.emit(ctx, "Booking Sent",
		fmt.Sprintf("Request sent to %s. Waiting for approval.", pro.Name),
		model.NotificationTypeSystem)

	zlog.Logger.Info().
		Str("booking_id", id.String()).
		Str("pro_id", pro.ID).
		Str("user_id", actor.ID.String()).
		Msg("booking created")

	return *b, nil
}

// UpdateStatus transitions a booking. The transition table is enforced by the
// repository; this layer enforces who may trigger which transition: the
// assigned professional accepts, declines or completes, and the owning client
// may cancel. Every successful transition fans out a notification.
func (s *Service) UpdateStatus(ctx context.Context, actor model.User, id uuid.UUID, status model.BookingStatus) (model.Booking, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Booking{}, fmt.Errorf("get booking: %w", err)
	}

	if !s.allowed(actor, current, status) {
		return model.Booking{}, ErrForbidden
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return model.Booking{}, fmt.Errorf("update booking status: %w", err)
	}

	switch status {
	case model.BookingStatusUpcoming:
		s.emit(ctx, "Booking Accepted", "You have accepted the job.", model.NotificationTypeBooking)
	case model.BookingStatusCancelled:
		s.emit(ctx, "Booking Cancelled", "The booking has been cancelled.", model.NotificationTypeSystem)
	}

	zlog.Logger.Info().
		Str("booking_id", id.String()).
		Str("status", string(status)).
		Msg("booking status updated")

	return updated, nil
}

// allowed checks whether the actor may move the booking to the target status.
func (s *Service) allowed(actor model.User, b model.Booking, status model.BookingStatus) bool {
	switch actor.Role {
	case model.RoleProfessional:
		return actor.ProID == b.ProID
	case model.RoleClient:
		// Clients only cancel their own bookings; accepting and completing
		// belong to the assigned professional.
		return status == model.BookingStatusCancelled && actor.ID == b.UserID
	default:
		return false
	}
}

// ListForActor returns the actor's bookings, most recent first: by assigned
// professional for pros, by owning client otherwise.
func (s *Service) ListForActor(ctx context.Context, actor model.User) ([]model.Booking, error) {
	if actor.Role == model.RoleProfessional {
		bookings, err := s.repo.ListByPro(ctx, actor.ProID)
		if err != nil {
			return nil, fmt.Errorf("list bookings by pro: %w", err)
		}
		return bookings, nil
	}

	bookings, err := s.repo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	return bookings, nil
}

// emit fans out a notification; emission failures are logged, never allowed
// to fail the booking operation itself.
func (s *Service) emit(ctx context.Context, title, message string, typ model.NotificationType) {
	if _, err := s.notifier.Emit(ctx, title, message, typ); err != nil {
		zlog.Logger.Error().Err(err).Str("title", title).Msg("failed to emit notification")
	}
}
