package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// Repository holds the ordered in-memory collection of bookings. New records
// are inserted at the head so iteration order is most-recent-first; cancelled
// and completed records are never deleted, they remain for history.
type Repository struct {
	mu       sync.RWMutex
	bookings []*model.Booking
}

// NewRepository creates an empty booking repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Create inserts a new booking at the head of the collection.
func (r *Repository) Create(ctx context.Context, b *model.Booking) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	r.bookings = append([]*model.Booking{b}, r.bookings...)

	return b.ID, nil
}

// GetByID returns a copy of the booking with the given id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return *b, nil
		}
	}

	return model.Booking{}, ErrBookingNotFound
}

// UpdateStatus moves a booking to the given status. The transition table is
// enforced here, independent of any caller: a terminal booking or a skipped
// step is rejected with ErrInvalidTransition and the record is left unchanged.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID != id {
			continue
		}

		if !b.Status.CanTransition(status) {
			return model.Booking{}, ErrInvalidTransition
		}

		b.Status = status
		b.UpdatedAt = time.Now()
		return *b, nil
	}

	return model.Booking{}, ErrBookingNotFound
}

// ListByUser returns the client's bookings, most recent first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}

	return out, nil
}

// ListByPro returns the professional's bookings, most recent first.
func (r *Repository) ListByPro(ctx context.Context, proID string) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Booking
	for _, b := range r.bookings {
		if b.ProID == proID {
			out = append(out, *b)
		}
	}

	return out, nil
}

// Len returns the number of stored bookings.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
