package handlers

import (
	"net/http"

	"hydrateWiseAPI/services"
)

type PresenceHandler struct {
	reminderService *services.ReminderService
}

func NewPresenceHandler(reminderService *services.ReminderService) *PresenceHandler {
	return &PresenceHandler{
		reminderService: reminderService,
	}
}

// Heartbeat marks the app as foregrounded. The UI posts this periodically
// while visible so reminder toasts only surface when someone can see them.
func (h *PresenceHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	h.reminderService.Heartbeat()
	respondWithJSON(w, http.StatusOK, map[string]bool{"visible": true})
}
