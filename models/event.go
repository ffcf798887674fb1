package models

import "time"

type EventType string

const (
	EventComplaintCreated     EventType = "complaint.created"
	EventComplaintAssigned    EventType = "complaint.assigned"
	EventComplaintDeadlineSet EventType = "complaint.deadline_set"
	EventComplaintResolved    EventType = "complaint.resolved"
	EventComplaintOverdue     EventType = "complaint.overdue"
)

// ComplaintEvent is emitted after every successful lifecycle change
type ComplaintEvent struct {
	Type        EventType `json:"type"`
	ComplaintID string    `json:"complaint_id"`
	Complaint   Complaint `json:"complaint"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewComplaintEvent(t EventType, c *Complaint, at time.Time) ComplaintEvent {
	return ComplaintEvent{
		Type:        t,
		ComplaintID: c.ID,
		Complaint:   *c,
		Timestamp:   at,
	}
}
