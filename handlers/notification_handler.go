package handlers

import (
	"net/http"

	"hydrateWiseAPI/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetNotifications returns the toast feed, newest first.
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.notificationService.List())
}

// ClearNotifications empties the feed after the UI dismissed everything.
func (h *NotificationHandler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	h.notificationService.Clear()
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
