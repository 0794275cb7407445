package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/neo-dine/live"
	"github.com/yeremiapane/neo-dine/models"
)

func TestNotificationService_ToastExpires(t *testing.T) {
	svc := NewNotificationService(live.NewHub(), 20*time.Millisecond)

	svc.Toast("v1", "Added Neon Ramen to cart", models.ToastSuccess)
	list := svc.List("v1")
	require.Len(t, list, 1)
	assert.Equal(t, models.ToastSuccess, list[0].Type)

	assert.Eventually(t, func() bool { return len(svc.List("v1")) == 0 }, time.Second, 5*time.Millisecond)
}

func TestNotificationService_StopCancelsExpiry(t *testing.T) {
	svc := NewNotificationService(nil, 30*time.Millisecond)

	svc.Toast("v1", "Your order is on the way!", models.ToastInfo)
	require.Equal(t, 1, svc.pendingExpiries())

	svc.Stop()
	assert.Zero(t, svc.pendingExpiries())

	time.Sleep(80 * time.Millisecond)
	assert.Len(t, svc.List("v1"), 1, "no expiry runs after shutdown")

	svc.Toast("v1", "late toast", models.ToastInfo)
	assert.Zero(t, svc.pendingExpiries())
}

func TestNotificationService_Dismiss(t *testing.T) {
	svc := NewNotificationService(nil, time.Minute)

	svc.Toast("v1", "one", models.ToastInfo)
	svc.Toast("v1", "two", models.ToastError)
	svc.Toast("v2", "other visitor", models.ToastInfo)

	list := svc.List("v1")
	require.Len(t, list, 2)
	assert.True(t, svc.Dismiss("v1", list[0].ID))
	assert.False(t, svc.Dismiss("v1", list[0].ID))
	assert.False(t, svc.Dismiss("v1", 9999))

	left := svc.List("v1")
	require.Len(t, left, 1)
	assert.Equal(t, 2, svc.pendingExpiries(), "dismissed toast drops its timer")
	assert.Equal(t, "two", left[0].Message)
	assert.Len(t, svc.List("v2"), 1)
}

type fakeConn struct {
	messages [][]byte
	closed   bool
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestNotificationService_PushesToHub(t *testing.T) {
	hub := live.NewHub()
	conn := &fakeConn{}
	hub.Register("v1", conn)

	svc := NewNotificationService(hub, 0)
	svc.Toast("v1", "Order placed successfully!", models.ToastSuccess)
	svc.Toast("v2", "not for v1", models.ToastSuccess)

	require.Len(t, conn.messages, 1)
	assert.Contains(t, string(conn.messages[0]), `"event":"toast"`)
	assert.Contains(t, string(conn.messages[0]), "Order placed successfully!")
}
