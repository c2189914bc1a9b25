package insight

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"rdtrack/internal/model"
)

// Input is one consistent snapshot of the collections an aggregation pass
// reads. Users is a prebuilt id -> display name lookup; build it once with
// UserIndex instead of scanning the user list per task.
type Input struct {
	Projects []model.Project
	Tasks    []model.Task
	Users    map[int]string
}

// UserIndex builds the id -> display name lookup for Input.
func UserIndex(users []model.User) map[int]string {
	idx := make(map[int]string, len(users))
	for _, u := range users {
		idx[u.ID] = u.Name
	}
	return idx
}

// Aggregate scans all tasks and projects and emits one notification per
// triggered deadline/risk rule, sorted by priority (high first) and then by
// the triggering date (earliest first). The result is complete and
// untruncated; capping what is shown is a display concern.
//
// Notification ids are deterministic per rule and source entity, so a
// consumer diffing consecutive passes sees stable identities. Dangling
// references never drop a notification; unresolved display fields are left
// empty instead.
func Aggregate(in Input, now time.Time) []model.Notification {
	out := []model.Notification{}

	for _, t := range in.Tasks {
		if t.EndDate == "" || !t.Active() {
			continue
		}
		days, ok := DaysUntil(t.EndDate, now)
		if !ok {
			continue
		}
		date, _ := ParseDeadline(t.EndDate)
		taskID := t.ID
		assigned := joinNames(t.AssignedTo, in.Users)

		switch {
		case IsOverdue(t.EndDate, now):
			out = append(out, model.Notification{
				ID:         fmt.Sprintf("task-overdue-%d", t.ID),
				Type:       model.NotificationTypeError,
				Title:      "Task overdue",
				Message:    fmt.Sprintf("Task %q is %d days overdue", t.Name, absInt(days)),
				ProjectID:  t.ProjectID,
				TaskID:     &taskID,
				AssignedTo: assigned,
				Date:       date,
				Priority:   model.PriorityHigh,
			})
		case days == 0:
			out = append(out, model.Notification{
				ID:         fmt.Sprintf("task-due-%d", t.ID),
				Type:       model.NotificationTypeWarning,
				Title:      "Task due today",
				Message:    fmt.Sprintf("Task %q is due today", t.Name),
				ProjectID:  t.ProjectID,
				TaskID:     &taskID,
				AssignedTo: assigned,
				Date:       date,
				Priority:   model.PriorityHigh,
			})
		case days > 0 && days <= 3:
			out = append(out, model.Notification{
				ID:         fmt.Sprintf("task-due-%d", t.ID),
				Type:       model.NotificationTypeWarning,
				Title:      "Task due soon",
				Message:    fmt.Sprintf("Task %q is due in %d days", t.Name, days),
				ProjectID:  t.ProjectID,
				TaskID:     &taskID,
				AssignedTo: assigned,
				Date:       date,
				Priority:   model.PriorityMedium,
			})
		}
	}

	for _, p := range in.Projects {
		days, ok := DaysUntil(p.EstimatedCompletion, now)
		if !ok {
			continue
		}
		date, _ := ParseDeadline(p.EstimatedCompletion)
		progress := Progress(p)
		projectID := p.ID

		// The two rules below test different predicates and may both fire
		// for the same project in the same pass.
		if days <= 7 && progress < 80 {
			out = append(out, model.Notification{
				ID:        fmt.Sprintf("project-risk-%d", p.ID),
				Type:      model.NotificationTypeWarning,
				Title:     "Project delay risk",
				Message:   fmt.Sprintf("Project %q is %.0f%% complete with %d days to the estimated completion", p.ProjectName, math.Round(progress), days),
				ProjectID: &projectID,
				Date:      date,
				Priority:  model.PriorityHigh,
			})
		}
		if IsOverdue(p.EstimatedCompletion, now) && progress < 100 {
			out = append(out, model.Notification{
				ID:        fmt.Sprintf("project-overdue-%d", p.ID),
				Type:      model.NotificationTypeError,
				Title:     "Project overdue",
				Message:   fmt.Sprintf("Project %q is past its estimated completion at %.0f%% complete", p.ProjectName, math.Round(progress)),
				ProjectID: &projectID,
				Date:      date,
				Priority:  model.PriorityHigh,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		wi := model.PriorityWeight(out[i].Priority)
		wj := model.PriorityWeight(out[j].Priority)
		if wi != wj {
			return wi > wj
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out
}

// joinNames resolves assignee ids to a comma-joined display string.
// Unresolved ids are dropped rather than shown raw.
func joinNames(ids []int, users map[int]string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := users[id]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
