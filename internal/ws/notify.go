package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobPostedEvent struct {
	Type      string    `json:"type"`
	JobID     uuid.UUID `json:"job_id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Timestamp string    `json:"timestamp"`
}

// NotifyJobPosted pushes a job-posted event to all connected clients.
// Safe on a nil hub (notifications simply don't go out).
func (h *Hub) NotifyJobPosted(jobID uuid.UUID, title, company string) {
	if h == nil {
		return
	}

	evt := JobPostedEvent{
		Type:      "job_posted",
		JobID:     jobID,
		Title:     title,
		Company:   company,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
