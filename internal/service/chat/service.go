package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/chat/mock.go -package=mocks

var (
	ErrCallNotFound = errors.New("call not found")
	// ErrEmptyMessage means a text message had no content.
	ErrEmptyMessage = errors.New("message text is required")
)

type chatRepo interface {
	AppendMessage(ctx context.Context, proID string, m *model.ChatMessage) (uuid.UUID, error)
	GetMessages(ctx context.Context, proID string) ([]model.ChatMessage, error)
	AppendCallLog(ctx context.Context, c *model.CallLog) (uuid.UUID, error)
	GetCallLogs(ctx context.Context) ([]model.CallLog, error)
}

type scheduler interface {
	Schedule(ownerID uuid.UUID, delay time.Duration, fn func()) uuid.UUID
}

type proDirectory interface {
	GetByID(ctx context.Context, id string) (model.ProProfile, error)
}

// SendRequest carries one outgoing chat message.
type SendRequest struct {
	Type     model.MessageType
	Text     string
	ImageURL string
	Location *model.Location
}

// Service owns conversations and the call simulation. A started call sits in
// the "calling" state until a scheduled task connects it; the task is keyed
// by the session so it dies with the session.
type Service struct {
	repo         chatRepo
	scheduler    scheduler
	pros         proDirectory
	connectDelay time.Duration

	mu    sync.Mutex
	calls map[uuid.UUID]*model.Call
}

// NewService constructs a chat service.
func NewService(repo chatRepo, sched scheduler, pros proDirectory, connectDelay time.Duration) *Service {
	return &Service{
		repo:         repo,
		scheduler:    sched,
		pros:         pros,
		connectDelay: connectDelay,
		calls:        make(map[uuid.UUID]*model.Call),
	}
}

// Send appends a message to the conversation with the given professional.
func (s *Service) Send(ctx context.Context, sender model.User, proID string, req SendRequest) (model.ChatMessage, error) {
	if req.Type == "" {
		req.Type = model.MessageTypeText
	}
	if req.Type == model.MessageTypeText && req.Text == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}

	if _, err := s.pros.GetByID(ctx, proID); err != nil {
		return model.ChatMessage{}, fmt.Errorf("get professional: %w", err)
	}

	m := &model.ChatMessage{
		SenderID: sender.ID.String(),
		Text:     req.Text,
		ImageURL: req.ImageURL,
		Location: req.Location,
		Type:     req.Type,
		SentAt:   time.Now(),
	}

	if _, err := s.repo.AppendMessage(ctx, proID, m); err != nil {
		return model.ChatMessage{}, fmt.Errorf("append message: %w", err)
	}

	return *m, nil
}

// Messages returns the conversation with the given professional in
// chronological order.
func (s *Service) Messages(ctx context.Context, proID string) ([]model.ChatMessage, error) {
	msgs, err := s.repo.GetMessages(ctx, proID)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	return msgs, nil
}

// StartCall opens a simulated call to the professional. The call starts in
// the "calling" state and is connected by a scheduled task after the
// configured delay; ending the call before then leaves it unconnected.
func (s *Service) StartCall(ctx context.Context, sess model.Session, proID string, kind model.CallKind) (model.Call, error) {
	pro, err := s.pros.GetByID(ctx, proID)
	if err != nil {
		return model.Call{}, fmt.Errorf("get professional: %w", err)
	}

	call := &model.Call{
		ID:        uuid.New(),
		SessionID: sess.Token,
		ProID:     pro.ID,
		ProName:   pro.Name,
		ProImage:  pro.ImageURL,
		Kind:      kind,
		State:     model.CallStateCalling,
		StartedAt: time.Now(),
	}

	s.mu.Lock()
	s.calls[call.ID] = call
	s.mu.Unlock()

	callID := call.ID
	s.scheduler.Schedule(sess.Token, s.connectDelay, func() {
		s.connect(callID)
	})

	zlog.Logger.Info().Str("call_id", call.ID.String()).Str("pro_id", pro.ID).Msg("call started")

	return *call, nil
}

// connect moves a still-active call to the connected state. The call may
// already have ended; that is not an error.
func (s *Service) connect(callID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if call, ok := s.calls[callID]; ok {
		call.State = model.CallStateConnected
	}
}

// Call returns the current state of an active call.
func (s *Service) Call(ctx context.Context, callID uuid.UUID) (model.Call, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	call, ok := s.calls[callID]
	if !ok {
		return model.Call{}, ErrCallNotFound
	}

	return *call, nil
}

// EndCall closes an active call, records it in the call history and appends
// a call entry to the conversation.
func (s *Service) EndCall(ctx context.Context, callID uuid.UUID) (model.CallLog, error) {
	s.mu.Lock()
	call, ok := s.calls[callID]
	if ok {
		delete(s.calls, callID)
	}
	s.mu.Unlock()

	if !ok {
		return model.CallLog{}, ErrCallNotFound
	}

	duration := time.Since(call.StartedAt).Round(time.Second).String()

	log := &model.CallLog{
		ID:        uuid.New(),
		ProID:     call.ProID,
		ProName:   call.ProName,
		ProImage:  call.ProImage,
		Kind:      call.Kind,
		Direction: "outgoing",
		Status:    "completed",
		Timestamp: time.Now(),
		Duration:  duration,
	}

	if _, err := s.repo.AppendCallLog(ctx, log); err != nil {
		return model.CallLog{}, fmt.Errorf("append call log: %w", err)
	}

	m := &model.ChatMessage{
		SenderID: call.SessionID.String(),
		Type:     model.MessageTypeCall,
		CallDetails: &model.CallDetails{
			Status:   "ended",
			Duration: duration,
			CallType: call.Kind,
		},
		SentAt: time.Now(),
	}

	if _, err := s.repo.AppendMessage(ctx, call.ProID, m); err != nil {
		zlog.Logger.Error().Err(err).Str("call_id", callID.String()).Msg("failed to append call message")
	}

	zlog.Logger.Info().Str("call_id", callID.String()).Str("duration", duration).Msg("call ended")

	return *log, nil
}

// CallHistory returns the call log, most recent first.
func (s *Service) CallHistory(ctx context.Context) ([]model.CallLog, error) {
	logs, err := s.repo.GetCallLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get call logs: %w", err)
	}
	return logs, nil
}
