package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageType is the kind of content a chat message carries.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeLocation MessageType = "location"
	MessageTypeCall     MessageType = "call"
)

// CallKind distinguishes audio from video calls.
type CallKind string

const (
	CallKindAudio CallKind = "audio"
	CallKindVideo CallKind = "video"
)

// CallState is the lifecycle of a simulated call.
type CallState string

const (
	CallStateCalling   CallState = "calling"
	CallStateConnected CallState = "connected"
	CallStateEnded     CallState = "ended"
)

// Location is a shared service address, optionally with coordinates.
type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

// CallDetails is attached to chat messages of type call.
type CallDetails struct {
	Status   string   `json:"status"` // missed, ended, declined
	Duration string   `json:"duration,omitempty"`
	CallType CallKind `json:"call_type"`
}

// ChatMessage is one entry in a client/professional conversation.
type ChatMessage struct {
	ID          uuid.UUID    `json:"id"`
	SenderID    string       `json:"sender_id"`
	Text        string       `json:"text,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Type        MessageType  `json:"type"`
	CallDetails *CallDetails `json:"call_details,omitempty"`
	SentAt      time.Time    `json:"sent_at"`
}

// Call is an in-progress simulated call owned by a session.
type Call struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	ProID     string    `json:"pro_id"`
	ProName   string    `json:"pro_name"`
	ProImage  string    `json:"pro_image"`
	Kind      CallKind  `json:"kind"`
	State     CallState `json:"state"`
	StartedAt time.Time `json:"started_at"`
}

// CallLog is a finished call kept for history.
type CallLog struct {
	ID        uuid.UUID `json:"id"`
	ProID     string    `json:"pro_id"`
	ProName   string    `json:"pro_name"`
	ProImage  string    `json:"pro_image"`
	Kind      CallKind  `json:"kind"`
	Direction string    `json:"direction"` // incoming, outgoing
	Status    string    `json:"status"`    // missed, completed
	Timestamp time.Time `json:"timestamp"`
	Duration  string    `json:"duration,omitempty"`
}
