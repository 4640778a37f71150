package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"   // waiting for the professional's decision
	BookingStatusUpcoming  BookingStatus = "UPCOMING"  // accepted, scheduled
	BookingStatusCompleted BookingStatus = "COMPLETED" // terminal
	BookingStatusCancelled BookingStatus = "CANCELLED" // terminal
)

// bookingTransitions is the explicit transition table. COMPLETED and CANCELLED
// are terminal: once reached, no further transition is permitted.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusUpcoming, BookingStatusCancelled},
	BookingStatusUpcoming:  {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// CanTransition reports whether a booking in status s may move to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further status transition is permitted.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// Booking represents one service request between a client and a professional.
// The pro display fields are denormalized at creation time so the record stays
// renderable after the directory changes.
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	ProID       string        `json:"pro_id"`
	UserID      uuid.UUID     `json:"user_id"`
	ProName     string        `json:"pro_name"`
	ProCategory Category      `json:"pro_category"`
	ProImage    string        `json:"pro_image"`
	Date        time.Time     `json:"date"`
	Time        string        `json:"time"` // display slot, e.g. "10:00 AM"
	Status      BookingStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	TotalAmount float64       `json:"total_amount"`
	Address     string        `json:"address"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
