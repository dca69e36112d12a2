package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"hydrateWiseAPI/internal/notification"
)

func TestFeedIsNewestFirst(t *testing.T) {
	svc := NewNotificationService()

	svc.Notify(notification.TypeReminder, "first", "a")
	svc.Notify(notification.TypeAchievement, "second", "b")

	feed := svc.List()
	assert.Len(t, feed, 2)
	assert.Equal(t, "second", feed[0].Title)
	assert.Equal(t, "first", feed[1].Title)
	assert.NotEqual(t, feed[0].ID, feed[1].ID)
}

func TestFeedIsBounded(t *testing.T) {
	svc := NewNotificationService()

	for i := 0; i < feedCap+10; i++ {
		svc.Notify(notification.TypeReminder, fmt.Sprintf("toast %d", i), "")
	}

	feed := svc.List()
	assert.Len(t, feed, feedCap)
	// Oldest entries were trimmed.
	assert.Equal(t, fmt.Sprintf("toast %d", feedCap+9), feed[0].Title)
}

func TestClearEmptiesFeed(t *testing.T) {
	svc := NewNotificationService()

	svc.Notify(notification.TypeIntakeReset, "toast", "")
	svc.Clear()

	assert.Empty(t, svc.List())
}
