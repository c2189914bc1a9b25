package insight

import (
	"time"

	"rdtrack/internal/model"
)

// ProjectInsight is the per-project derived view served by the API.
type ProjectInsight struct {
	ProjectID int          `json:"project_id"`
	Progress  float64      `json:"progress"`
	AtRisk    bool         `json:"at_risk"`
	Band      DeadlineBand `json:"deadline_band"`
	// DaysUntil is nil when the project has no estimated completion.
	DaysUntil *int `json:"days_until,omitempty"`
}

// ProjectInsightFor derives the insight view of a single project.
func ProjectInsightFor(p model.Project, now time.Time) ProjectInsight {
	pi := ProjectInsight{
		ProjectID: p.ID,
		Progress:  Progress(p),
		AtRisk:    AtRisk(p, now),
		Band:      Band(p.EstimatedCompletion, now),
	}
	if days, ok := DaysUntil(p.EstimatedCompletion, now); ok {
		pi.DaysUntil = &days
	}
	return pi
}

// Summary is the dashboard roll-up over all projects and tasks.
type Summary struct {
	TotalProjects   int       `json:"total_projects"`
	AtRiskProjects  int       `json:"at_risk_projects"`
	OverdueProjects int       `json:"overdue_projects"`
	ActiveTasks     int       `json:"active_tasks"`
	OverdueTasks    int       `json:"overdue_tasks"`
	DueTodayTasks   int       `json:"due_today_tasks"`
	DueSoonTasks    int       `json:"due_soon_tasks"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// Summarize computes the dashboard counts for one snapshot.
func Summarize(projects []model.Project, tasks []model.Task, now time.Time) Summary {
	s := Summary{TotalProjects: len(projects), GeneratedAt: now}

	for _, p := range projects {
		if AtRisk(p, now) {
			s.AtRiskProjects++
		}
		if IsOverdue(p.EstimatedCompletion, now) {
			s.OverdueProjects++
		}
	}

	for _, t := range tasks {
		if !t.Active() {
			continue
		}
		s.ActiveTasks++
		if t.EndDate == "" {
			continue
		}
		switch Band(t.EndDate, now) {
		case BandOverdue:
			s.OverdueTasks++
		case BandDueToday:
			s.DueTodayTasks++
		case BandDueSoon:
			s.DueSoonTasks++
		}
	}

	return s
}
