package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hydrateWiseAPI/internal/notification"
)

func newReminderFixture() (*ReminderService, *fakeNotifier, *fakeClock) {
	clock := newFakeClock()
	notifier := &fakeNotifier{}
	svc := NewReminderService(notifier, clock, time.Hour, 2*time.Minute)
	return svc, notifier, clock
}

func TestTickWithoutHeartbeatIsSilent(t *testing.T) {
	svc, notifier, _ := newReminderFixture()

	svc.tick()

	assert.Empty(t, notifier.toasts)
}

func TestTickSurfacesReminderWhenVisible(t *testing.T) {
	svc, notifier, _ := newReminderFixture()

	svc.Heartbeat()
	svc.tick()

	assert.Len(t, notifier.toasts, 1)
	assert.Equal(t, notification.TypeReminder, notifier.toasts[0].Type)
	assert.Equal(t, "Hydration Reminder!", notifier.toasts[0].Title)
}

func TestStaleHeartbeatCountsAsHidden(t *testing.T) {
	svc, notifier, clock := newReminderFixture()

	svc.Heartbeat()
	clock.Advance(3 * time.Minute)

	assert.False(t, svc.Visible())
	svc.tick()
	assert.Empty(t, notifier.toasts)

	// Ticks keep happening regardless; a fresh heartbeat re-enables the
	// visible effect.
	svc.Heartbeat()
	svc.tick()
	assert.Len(t, notifier.toasts, 1)
}

func TestStartAndStopAreIdempotent(t *testing.T) {
	svc, _, _ := newReminderFixture()

	svc.Start()
	svc.Start()

	svc.Stop()
	svc.Stop()
}
