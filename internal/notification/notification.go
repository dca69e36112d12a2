package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeAchievement Type = "achievement"
	TypeReminder    Type = "reminder"
	TypeIntakeReset Type = "intake_reset"
)

// Notification is an in-app toast. The feed is session-local: nothing here
// is persisted and nothing leaves the process as device push.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
