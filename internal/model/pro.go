package model

import "github.com/google/uuid"

// ProProfile represents a service provider listed in the directory.
type ProProfile struct {
	ID          string    `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	HourlyRate  float64   `json:"hourly_rate"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	WorkPhotos  []string  `json:"work_photos,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	Mobile      string    `json:"mobile,omitempty"`
	Address     string    `json:"address,omitempty"`
	Experience  int       `json:"experience,omitempty"` // years
}
