package insight

import (
	"time"

	"rdtrack/internal/model"
)

// AtRisk reports whether a project is in danger of missing its estimated
// completion: the deadline is at most 7 days away with progress below 80%,
// or already past with progress below 100%. A project without an estimated
// completion date is never at risk.
func AtRisk(p model.Project, now time.Time) bool {
	days, ok := DaysUntil(p.EstimatedCompletion, now)
	if !ok {
		return false
	}
	progress := Progress(p)
	if days <= 7 && progress < 80 {
		return true
	}
	if IsOverdue(p.EstimatedCompletion, now) && progress < 100 {
		return true
	}
	return false
}

// RiskLevel is the display severity bucket for an externally computed risk
// score.
type RiskLevel string

const (
	RiskLevelHigh      RiskLevel = "high"
	RiskLevelMedium    RiskLevel = "medium"
	RiskLevelLowMedium RiskLevel = "low_medium"
	RiskLevelLow       RiskLevel = "low"
)

// RiskLevelFor buckets a risk score into a display severity.
func RiskLevelFor(riskValue float64) RiskLevel {
	switch {
	case riskValue >= 70:
		return RiskLevelHigh
	case riskValue >= 40:
		return RiskLevelMedium
	case riskValue >= 20:
		return RiskLevelLowMedium
	default:
		return RiskLevelLow
	}
}
