package model

import "time"

const (
	NotificationTypeError   = "error"
	NotificationTypeWarning = "warning"
	NotificationTypeInfo    = "info"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// PriorityWeight maps a priority to a sortable weight. Unknown priorities
// sort last.
func PriorityWeight(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Notification is a derived value object describing a deadline or risk
// condition. It is recomputed in full on every aggregation pass and never
// persisted; the ID is deterministic per source entity so consumers can
// de-duplicate across refreshes.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // error / warning / info
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ProjectID *int      `json:"project_id,omitempty"`
	TaskID    *int      `json:"task_id,omitempty"`
	// AssignedTo is a display string of resolved user names; empty when no
	// assignee resolves.
	AssignedTo string    `json:"assigned_to,omitempty"`
	Date       time.Time `json:"date"`
	Priority   string    `json:"priority"` // high / medium / low
}
