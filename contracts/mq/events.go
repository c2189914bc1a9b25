// Package mq holds the payload shapes of events exchanged over the "events"
// topic exchange, shared with external producers such as the desktop bridge.
package mq

// StageAdvancedPayload is the body of a project.stage_advanced event.
type StageAdvancedPayload struct {
	ProjectID int    `json:"project_id"`
	StageID   string `json:"stage_id"`
	Note      string `json:"note"`
}

// TaskCreatedPayload is the body of a task.created event.
type TaskCreatedPayload struct {
	Name       string `json:"name"`
	ProjectID  *int   `json:"project_id,omitempty"`
	AssignedTo []int  `json:"assigned_to"`
	EndDate    string `json:"end_date"`
	Priority   string `json:"priority"`
}
