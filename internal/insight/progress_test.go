package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rdtrack/internal/model"
)

func TestProgress_UnknownOrMissingStageIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Progress(model.Project{}))
	assert.Equal(t, 0.0, Progress(model.Project{CurrentStageID: "painting"}))
}

func TestProgress_FirstStageCountsAsEntered(t *testing.T) {
	p := model.Project{CurrentStageID: "requirements"}
	assert.InDelta(t, 12.5, Progress(p), 0.0001)
}

func TestProgress_LastStageIsExactlyHundred(t *testing.T) {
	p := model.Project{CurrentStageID: Stages[len(Stages)-1]}
	assert.Equal(t, 100.0, Progress(p))
}

func TestProgress_MonotonicOverStageOrder(t *testing.T) {
	prev := 0.0
	for _, stage := range Stages {
		cur := Progress(model.Project{CurrentStageID: stage})
		assert.Greater(t, cur, prev, "stage %s", stage)
		assert.LessOrEqual(t, cur, 100.0)
		prev = cur
	}
}

func TestStageIndex(t *testing.T) {
	assert.Equal(t, 0, StageIndex("requirements"))
	assert.Equal(t, len(Stages)-1, StageIndex("shipping"))
	assert.Equal(t, -1, StageIndex("unknown"))
	assert.True(t, ValidStage("assembly"))
	assert.False(t, ValidStage(""))
}
