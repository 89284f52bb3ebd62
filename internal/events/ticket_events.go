package events

import "time"

const TicketTopic = "hr.ticket.lifecycle.v1"

const (
	TypeTicketCreated       = "ticket.created"
	TypeTicketStatusChanged = "ticket.status_changed"
)

type TicketCreatedEvent struct {
	EventType    string    `json:"event_type"`
	TicketID     string    `json:"ticket_id"`
	CreatedByID  string    `json:"created_by_id"`
	AssignedToID string    `json:"assigned_to_id"`
	Priority     string    `json:"priority"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type TicketStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	TicketID   string    `json:"ticket_id"`
	ChangedBy  string    `json:"changed_by"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}
