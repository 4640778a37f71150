package chat

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/gwalharshu287-lang/Service-get/internal/mocks/service/chat"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
	prorepo "github.com/gwalharshu287-lang/Service-get/internal/repository/pro"
)

func setupService(t *testing.T) (*Service, *mocks.MockchatRepo, *mocks.Mockscheduler, *mocks.MockproDirectory) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockchatRepo(ctrl)
	sched := mocks.NewMockscheduler(ctrl)
	pros := mocks.NewMockproDirectory(ctrl)
	return NewService(repo, sched, pros, 2*time.Second), repo, sched, pros
}

func robertFox() model.ProProfile {
	return model.ProProfile{
		ID:       "p1",
		Name:     "Robert Fox",
		ImageURL: "https://picsum.photos/200/200?random=1",
	}
}

func TestService_Send_Text(t *testing.T) {
	svc, repo, _, pros := setupService(t)
	sender := model.User{ID: uuid.New(), Role: model.RoleClient}

	pros.EXPECT().GetByID(gomock.Any(), "p1").Return(robertFox(), nil)
	repo.EXPECT().AppendMessage(gomock.Any(), "p1", gomock.Any()).Return(uuid.New(), nil)

	m, err := svc.Send(context.Background(), sender, "p1", SendRequest{Text: "Are you available tomorrow?"})
	require.NoError(t, err)

	assert.Equal(t, model.MessageTypeText, m.Type)
	assert.Equal(t, sender.ID.String(), m.SenderID)
	assert.Equal(t, "Are you available tomorrow?", m.Text)
}

func TestService_Send_EmptyText(t *testing.T) {
	svc, _, _, _ := setupService(t)
	sender := model.User{ID: uuid.New(), Role: model.RoleClient}

	_, err := svc.Send(context.Background(), sender, "p1", SendRequest{})

	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestService_Send_UnknownPro(t *testing.T) {
	svc, _, _, pros := setupService(t)
	sender := model.User{ID: uuid.New(), Role: model.RoleClient}

	pros.EXPECT().GetByID(gomock.Any(), "ghost").Return(model.ProProfile{}, prorepo.ErrProNotFound)

	_, err := svc.Send(context.Background(), sender, "ghost", SendRequest{Text: "hello"})

	assert.ErrorIs(t, err, prorepo.ErrProNotFound)
}

func TestService_StartCall_ConnectsAfterDelay(t *testing.T) {
	svc, _, sched, pros := setupService(t)
	sess := model.Session{Token: uuid.New()}

	var connect func()
	pros.EXPECT().GetByID(gomock.Any(), "p1").Return(robertFox(), nil)
	sched.EXPECT().Schedule(sess.Token, 2*time.Second, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ time.Duration, fn func()) uuid.UUID {
			connect = fn
			return uuid.New()
		})

	call, err := svc.StartCall(context.Background(), sess, "p1", model.CallKindVideo)
	require.NoError(t, err)

	assert.Equal(t, model.CallStateCalling, call.State)
	assert.Equal(t, "Robert Fox", call.ProName)

	require.NotNil(t, connect)
	connect()

	got, err := svc.Call(context.Background(), call.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CallStateConnected, got.State)
}

func TestService_EndCall(t *testing.T) {
	svc, repo, sched, pros := setupService(t)
	sess := model.Session{Token: uuid.New()}

	pros.EXPECT().GetByID(gomock.Any(), "p1").Return(robertFox(), nil)
	sched.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New())

	call, err := svc.StartCall(context.Background(), sess, "p1", model.CallKindAudio)
	require.NoError(t, err)

	repo.EXPECT().AppendCallLog(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	repo.EXPECT().AppendMessage(gomock.Any(), "p1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, m *model.ChatMessage) (uuid.UUID, error) {
			assert.Equal(t, model.MessageTypeCall, m.Type)
			require.NotNil(t, m.CallDetails)
			assert.Equal(t, "ended", m.CallDetails.Status)
			return uuid.New(), nil
		})

	log, err := svc.EndCall(context.Background(), call.ID)
	require.NoError(t, err)

	assert.Equal(t, "outgoing", log.Direction)
	assert.Equal(t, "completed", log.Status)
	assert.Equal(t, model.CallKindAudio, log.Kind)

	// The call is gone once ended.
	_, err = svc.Call(context.Background(), call.ID)
	assert.ErrorIs(t, err, ErrCallNotFound)

	_, err = svc.EndCall(context.Background(), call.ID)
	assert.ErrorIs(t, err, ErrCallNotFound)
}

func TestService_Call_Unknown(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.Call(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrCallNotFound)
}
