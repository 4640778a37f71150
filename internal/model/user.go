package model

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which operations a session may perform.
type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
)

// User represents an authenticated marketplace user. ProID is set only for
// professionals and links the account to its directory profile.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ProID     string    `json:"pro_id,omitempty"`
	Location  string    `json:"location,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// Session holds the volatile per-login state. Everything here is lost on logout
// or restart; nothing is persisted.
type Session struct {
	Token     uuid.UUID `json:"token"`
	User      User      `json:"user"`
	Favorites []string  `json:"favorites"` // pro ids marked as favorite
	CreatedAt time.Time `json:"created_at"`
}
