package model

import "time"

type Project struct {
	ID          int    `json:"id"`
	ProjectName string `json:"project_name"`
	OrderNumber string `json:"order_number"`
	// CurrentStageID is one of the pipeline stage ids, or empty when the
	// project has not entered the pipeline yet.
	CurrentStageID string `json:"current_stage_id"`
	// EstimatedCompletion is a YYYY-MM-DD date string, empty when unset.
	EstimatedCompletion string    `json:"estimated_completion"`
	Priority            string    `json:"priority"` // low / medium / high
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TimelineEntry records one stage transition of a project.
type TimelineEntry struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	StageID   string    `json:"stage_id"`
	Note      string    `json:"note"`
	EnteredAt time.Time `json:"entered_at"`
}
