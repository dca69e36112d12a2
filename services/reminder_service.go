package services

import (
	"log"
	"sync"
	"time"

	"hydrateWiseAPI/internal/dates"
	"hydrateWiseAPI/internal/notification"
	"hydrateWiseAPI/middleware"
)

// ReminderService runs the periodic hydration reminder. Every tick fires on
// schedule; the toast is only surfaced when the app is foregrounded, judged
// by how recently the UI sent a presence heartbeat. Skipping the effect
// never skips the tick.
type ReminderService struct {
	notifier Notifier
	clock    dates.Clock

	interval         time.Duration
	visibilityWindow time.Duration

	mu            sync.Mutex
	lastHeartbeat time.Time
	stop          chan struct{}
}

func NewReminderService(notifier Notifier, clock dates.Clock, interval, visibilityWindow time.Duration) *ReminderService {
	if interval <= 0 {
		interval = time.Hour
	}
	if visibilityWindow <= 0 {
		visibilityWindow = 2 * time.Minute
	}
	return &ReminderService{
		notifier:         notifier,
		clock:            clock,
		interval:         interval,
		visibilityWindow: visibilityWindow,
	}
}

// Heartbeat marks the app as foregrounded right now.
func (s *ReminderService) Heartbeat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastHeartbeat = s.clock.Now()
}

// Visible reports whether a heartbeat was seen within the visibility window.
func (s *ReminderService) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastHeartbeat.IsZero() {
		return false
	}
	return s.clock.Now().Sub(s.lastHeartbeat) <= s.visibilityWindow
}

// Start launches the reminder loop. Calling Start on a running service is a
// no-op.
func (s *ReminderService) Start() {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	go s.run(stop)
	log.Printf("ReminderService: started (every %s)", s.interval)
}

// Stop cancels the loop. Safe to call multiple times.
func (s *ReminderService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return
	}
	close(s.stop)
	s.stop = nil
}

func (s *ReminderService) run(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-stop:
			log.Println("ReminderService: stopped")
			return
		}
	}
}

// tick surfaces the reminder toast when the app is visible.
func (s *ReminderService) tick() {
	if !s.Visible() {
		return
	}
	middleware.IncReminderSent()
	s.notifier.Notify(notification.TypeReminder,
		"Hydration Reminder!", "Don't forget to drink some water. Stay refreshed!")
}
