package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rdtrack/internal/model"
)

var riskNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

func dateFrom(now time.Time, days int) string {
	return now.AddDate(0, 0, days).Format("2006-01-02")
}

func TestAtRisk_RequiresDeadline(t *testing.T) {
	// No estimated completion: never at risk, regardless of progress.
	assert.False(t, AtRisk(model.Project{}, riskNow))
	assert.False(t, AtRisk(model.Project{CurrentStageID: "requirements"}, riskNow))
	assert.False(t, AtRisk(model.Project{EstimatedCompletion: "garbage", CurrentStageID: "requirements"}, riskNow))
}

func TestAtRisk_NearDeadlineLowProgress(t *testing.T) {
	p := model.Project{
		CurrentStageID:      "requirements", // 12.5%
		EstimatedCompletion: dateFrom(riskNow, 5),
	}
	assert.True(t, AtRisk(p, riskNow))
}

func TestAtRisk_NearDeadlineHighProgress(t *testing.T) {
	p := model.Project{
		CurrentStageID:      "shipping", // 100%
		EstimatedCompletion: dateFrom(riskNow, 5),
	}
	assert.False(t, AtRisk(p, riskNow))
}

func TestAtRisk_FarDeadlineLowProgress(t *testing.T) {
	p := model.Project{
		CurrentStageID:      "requirements",
		EstimatedCompletion: dateFrom(riskNow, 30),
	}
	assert.False(t, AtRisk(p, riskNow))
}

func TestAtRisk_OverdueIncompleteProject(t *testing.T) {
	p := model.Project{
		CurrentStageID:      "testing", // 87.5%, above the 80% delay-risk cutoff
		EstimatedCompletion: dateFrom(riskNow, -2),
	}
	assert.True(t, AtRisk(p, riskNow))
}

func TestAtRisk_OverdueCompletedProject(t *testing.T) {
	p := model.Project{
		CurrentStageID:      "shipping",
		EstimatedCompletion: dateFrom(riskNow, -2),
	}
	assert.False(t, AtRisk(p, riskNow))
}

func TestRiskLevelFor_Buckets(t *testing.T) {
	assert.Equal(t, RiskLevelHigh, RiskLevelFor(70))
	assert.Equal(t, RiskLevelHigh, RiskLevelFor(95))
	assert.Equal(t, RiskLevelMedium, RiskLevelFor(40))
	assert.Equal(t, RiskLevelMedium, RiskLevelFor(69.9))
	assert.Equal(t, RiskLevelLowMedium, RiskLevelFor(20))
	assert.Equal(t, RiskLevelLowMedium, RiskLevelFor(39.9))
	assert.Equal(t, RiskLevelLow, RiskLevelFor(19.9))
	assert.Equal(t, RiskLevelLow, RiskLevelFor(0))
}
