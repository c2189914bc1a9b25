package model

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

type Task struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// ProjectID links the task to a project; nil when freestanding.
	ProjectID  *int  `json:"project_id,omitempty"`
	AssignedTo []int `json:"assigned_to"`
	// EndDate is a YYYY-MM-DD date string, empty when the task has no deadline.
	EndDate   string    `json:"end_date"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Active reports whether the task still counts for deadline tracking.
func (t Task) Active() bool {
	return t.Status != TaskStatusCompleted && t.Status != TaskStatusCancelled
}
