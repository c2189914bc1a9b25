package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdtrack/internal/model"
)

func TestProjectInsightFor(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	pi := ProjectInsightFor(model.Project{
		ID:                  1,
		CurrentStageID:      "assembly", // 75%
		EstimatedCompletion: dateFrom(now, 2),
	}, now)

	assert.Equal(t, 1, pi.ProjectID)
	assert.InDelta(t, 75.0, pi.Progress, 0.0001)
	assert.True(t, pi.AtRisk)
	assert.Equal(t, BandDueSoon, pi.Band)
	require.NotNil(t, pi.DaysUntil)
	assert.Equal(t, 2, *pi.DaysUntil)
}

func TestProjectInsightFor_NoDeadline(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	pi := ProjectInsightFor(model.Project{ID: 2, CurrentStageID: "requirements"}, now)

	assert.False(t, pi.AtRisk)
	assert.Equal(t, BandSafe, pi.Band)
	assert.Nil(t, pi.DaysUntil)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	projects := []model.Project{
		{ID: 1, CurrentStageID: "requirements", EstimatedCompletion: dateFrom(now, 3)},  // at risk
		{ID: 2, CurrentStageID: "machining", EstimatedCompletion: dateFrom(now, -1)},    // at risk + overdue
		{ID: 3, CurrentStageID: "shipping", EstimatedCompletion: dateFrom(now, 30)},     // safe
		{ID: 4, CurrentStageID: "requirements"},                                         // no deadline
	}
	tasks := []model.Task{
		{ID: 1, EndDate: dateFrom(now, -2)},
		{ID: 2, EndDate: dateFrom(now, 0)},
		{ID: 3, EndDate: dateFrom(now, 2)},
		{ID: 4, EndDate: dateFrom(now, 10)},
		{ID: 5},
		{ID: 6, EndDate: dateFrom(now, -2), Status: model.TaskStatusCompleted},
	}

	s := Summarize(projects, tasks, now)

	assert.Equal(t, 4, s.TotalProjects)
	assert.Equal(t, 2, s.AtRiskProjects)
	assert.Equal(t, 1, s.OverdueProjects)
	assert.Equal(t, 5, s.ActiveTasks)
	assert.Equal(t, 1, s.OverdueTasks)
	assert.Equal(t, 1, s.DueTodayTasks)
	assert.Equal(t, 1, s.DueSoonTasks)
	assert.Equal(t, now, s.GeneratedAt)
}
