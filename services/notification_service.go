package services

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"hydrateWiseAPI/internal/notification"
)

// feedCap bounds the in-memory toast history.
const feedCap = 50

// NotificationService keeps the in-app toast feed the UI polls. The feed is
// session-local: toasts are not persisted and do not survive a restart.
type NotificationService struct {
	mu   sync.Mutex
	feed []notification.Notification
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// Notify appends a toast to the front of the feed, trimming the oldest
// entries past the cap.
func (s *NotificationService) Notify(t notification.Type, title, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := notification.Notification{
		ID:        uuid.New(),
		Type:      t,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	s.feed = append([]notification.Notification{n}, s.feed...)
	if len(s.feed) > feedCap {
		s.feed = s.feed[:feedCap]
	}

	log.Printf("Notification [%s]: %s: %s", t, title, message)
}

// List returns the feed, newest first.
func (s *NotificationService) List() []notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]notification.Notification, len(s.feed))
	copy(out, s.feed)
	return out
}

// Clear empties the feed (the UI dismissed everything).
func (s *NotificationService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = nil
}
