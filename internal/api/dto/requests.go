// Package dto defines the request payloads accepted by the HTTP API.
package dto

// LoginRequest starts a session for a demo identity.
type LoginRequest struct {
	Role     string `json:"role" validate:"required,oneof=client professional"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Location string `json:"location"`
	ProID    string `json:"pro_id"`
}

// CreateBookingRequest opens a booking with a professional. Date uses the
// 2006-01-02 layout; the time slot is free-form display text ("10:00 AM").
type CreateBookingRequest struct {
	ProID   string `json:"pro_id" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Notes   string `json:"notes"`
	Address string `json:"address"`
}

// UpdateBookingStatusRequest transitions a booking.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=UPCOMING CANCELLED COMPLETED"`
}

// SearchRequest runs a smart search over the directory.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// OnboardProRequest registers a new professional.
type OnboardProRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	HourlyRate  float64 `json:"hourly_rate" validate:"required,gt=0"`
	Experience  int     `json:"experience"`
	Mobile      string  `json:"mobile"`
	Address     string  `json:"address"`
	Location    string  `json:"location"`
	PhotoCount  int     `json:"photo_count"`
}

// DraftBioRequest asks for an AI-drafted bio.
type DraftBioRequest struct {
	Profession string   `json:"profession" validate:"required"`
	Traits     []string `json:"traits"`
}

// SendMessageRequest appends a chat message.
type SendMessageRequest struct {
	Type     string  `json:"type" validate:"omitempty,oneof=text image location"`
	Text     string  `json:"text"`
	ImageURL string  `json:"image_url"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// StartCallRequest begins a simulated call.
type StartCallRequest struct {
	ProID string `json:"pro_id" validate:"required"`
	Kind  string `json:"kind" validate:"required,oneof=audio video"`
}
