package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
	notifrepo "github.com/gwalharshu287-lang/Service-get/internal/repository/notification"
)

func TestService_Emit_ThenList(t *testing.T) {
	svc := NewService(notifrepo.NewRepository(), time.Minute)
	defer svc.Stop()
	ctx := context.Background()

	_, err := svc.Emit(ctx, "Booking Sent", "Request sent.", model.NotificationTypeSystem)
	require.NoError(t, err)
	n, err := svc.Emit(ctx, "New Message", "Hi there.", model.NotificationTypeMessage)
	require.NoError(t, err)

	notifications, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	// Most recent first.
	assert.Equal(t, n.ID, notifications[0].ID)
	assert.Equal(t, "New Message", notifications[0].Title)
}

func TestService_AutoExpire(t *testing.T) {
	svc := NewService(notifrepo.NewRepository(), 20*time.Millisecond)
	defer svc.Stop()
	ctx := context.Background()

	_, err := svc.Emit(ctx, "Welcome back, Alex", "You have successfully logged in.", model.NotificationTypeSystem)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		notifications, err := svc.List(ctx)
		return err == nil && len(notifications) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestService_ExpiryIsIndependent(t *testing.T) {
	svc := NewService(notifrepo.NewRepository(), 30*time.Millisecond)
	defer svc.Stop()
	ctx := context.Background()

	_, err := svc.Emit(ctx, "first", "m", model.NotificationTypeSystem)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	second, err := svc.Emit(ctx, "second", "m", model.NotificationTypeSystem)
	require.NoError(t, err)

	// The first expires on its own clock; the second keeps its full window.
	require.Eventually(t, func() bool {
		notifications, err := svc.List(ctx)
		return err == nil && len(notifications) == 1
	}, time.Second, 2*time.Millisecond)

	notifications, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, second.ID, notifications[0].ID)
}

func TestService_Dismiss(t *testing.T) {
	svc := NewService(notifrepo.NewRepository(), time.Minute)
	defer svc.Stop()
	ctx := context.Background()

	n, err := svc.Emit(ctx, "doomed", "m", model.NotificationTypeSystem)
	require.NoError(t, err)

	require.NoError(t, svc.Dismiss(ctx, n.ID))

	notifications, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	// Dismissing an already-removed notification is a no-op.
	assert.NoError(t, svc.Dismiss(ctx, n.ID))
}

func TestService_DismissBeatsExpiry(t *testing.T) {
	svc := NewService(notifrepo.NewRepository(), 30*time.Millisecond)
	defer svc.Stop()
	ctx := context.Background()

	n, err := svc.Emit(ctx, "raced", "m", model.NotificationTypeSystem)
	require.NoError(t, err)

	require.NoError(t, svc.Dismiss(ctx, n.ID))

	// The cancelled expiry timer must not fire later.
	time.Sleep(50 * time.Millisecond)

	notifications, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
