package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwalharshu287-lang/Service-get/internal/config"
	mocks "github.com/gwalharshu287-lang/Service-get/internal/mocks/service/session"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
	prorepo "github.com/gwalharshu287-lang/Service-get/internal/repository/pro"
)

func setupService(t *testing.T) (*Service, *mocks.Mockscheduler, *mocks.Mocknotifier, *mocks.MockproDirectory) {
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockscheduler(ctrl)
	notifier := mocks.NewMocknotifier(ctrl)
	pros := mocks.NewMockproDirectory(ctrl)
	cfg := config.Notifications{
		TTL:             5 * time.Second,
		WelcomeDelay:    time.Second,
		ProPushDelay:    6 * time.Second,
		ClientPushDelay: 9 * time.Second,
	}
	return NewService(sched, notifier, pros, cfg), sched, notifier, pros
}

func TestService_Login_Client(t *testing.T) {
	svc, sched, _, _ := setupService(t)

	// A client login arms exactly two pushes: welcome and a simulated message.
	sched.EXPECT().Schedule(gomock.Any(), time.Second, gomock.Any()).Return(uuid.New())
	sched.EXPECT().Schedule(gomock.Any(), 9*time.Second, gomock.Any()).Return(uuid.New())

	sess, err := svc.Login(context.Background(), LoginRequest{Role: model.RoleClient})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sess.Token)
	assert.Equal(t, "Alex Johnson", sess.User.Name)
	assert.Equal(t, model.RoleClient, sess.User.Role)
	assert.Empty(t, sess.Favorites)
}

func TestService_Login_ProfessionalBindsToProfile(t *testing.T) {
	svc, sched, _, pros := setupService(t)

	pros.EXPECT().GetByID(gomock.Any(), "p1").Return(model.ProProfile{
		ID:       "p1",
		Name:     "Robert Fox",
		ImageURL: "https://picsum.photos/200/200?random=1",
	}, nil)
	sched.EXPECT().Schedule(gomock.Any(), time.Second, gomock.Any()).Return(uuid.New())
	sched.EXPECT().Schedule(gomock.Any(), 6*time.Second, gomock.Any()).Return(uuid.New())

	sess, err := svc.Login(context.Background(), LoginRequest{Role: model.RoleProfessional})
	require.NoError(t, err)

	assert.Equal(t, "p1", sess.User.ProID)
	assert.Equal(t, "Robert Fox", sess.User.Name)
}

func TestService_Login_UnknownProProfile(t *testing.T) {
	svc, _, _, pros := setupService(t)

	pros.EXPECT().GetByID(gomock.Any(), "ghost").Return(model.ProProfile{}, prorepo.ErrProNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Role: model.RoleProfessional, ProID: "ghost"})

	assert.ErrorIs(t, err, prorepo.ErrProNotFound)
}

func TestService_Login_UnknownRole(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Role: model.Role("admin")})

	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestService_Logout_CancelsPushes(t *testing.T) {
	svc, sched, _, _ := setupService(t)

	sched.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New()).Times(2)

	sess, err := svc.Login(context.Background(), LoginRequest{Role: model.RoleClient})
	require.NoError(t, err)

	sched.EXPECT().CancelAll(sess.Token)

	require.NoError(t, svc.Logout(context.Background(), sess.Token))

	_, err = svc.Resolve(context.Background(), sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Logout_UnknownToken(t *testing.T) {
	svc, _, _, _ := setupService(t)

	err := svc.Logout(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Resolve(t *testing.T) {
	svc, sched, _, _ := setupService(t)

	sched.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New()).Times(2)

	sess, err := svc.Login(context.Background(), LoginRequest{Role: model.RoleClient, Name: "Priya Sharma"})
	require.NoError(t, err)

	got, err := svc.Resolve(context.Background(), sess.Token)
	require.NoError(t, err)

	assert.Equal(t, "Priya Sharma", got.User.Name)
}

func TestService_ToggleFavorite(t *testing.T) {
	svc, sched, _, _ := setupService(t)
	ctx := context.Background()

	sched.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New()).Times(2)

	sess, err := svc.Login(ctx, LoginRequest{Role: model.RoleClient})
	require.NoError(t, err)

	favorites, err := svc.ToggleFavorite(ctx, sess.Token, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, favorites)

	favorites, err = svc.ToggleFavorite(ctx, sess.Token, "p2")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, favorites)

	// Toggling an existing favorite removes it.
	favorites, err = svc.ToggleFavorite(ctx, sess.Token, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, favorites)
}

func TestService_WelcomePushUsesFirstName(t *testing.T) {
	svc, sched, notifier, _ := setupService(t)

	var welcome func()
	sched.EXPECT().Schedule(gomock.Any(), time.Second, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ time.Duration, fn func()) uuid.UUID {
			welcome = fn
			return uuid.New()
		})
	sched.EXPECT().Schedule(gomock.Any(), 9*time.Second, gomock.Any()).Return(uuid.New())

	_, err := svc.Login(context.Background(), LoginRequest{Role: model.RoleClient, Name: "Priya Sharma"})
	require.NoError(t, err)
	require.NotNil(t, welcome)

	notifier.EXPECT().
		Emit(gomock.Any(), "Welcome back, Priya", "You have successfully logged in.", model.NotificationTypeSystem).
		Return(model.Notification{}, nil)

	welcome()
}
