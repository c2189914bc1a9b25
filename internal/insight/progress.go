package insight

import "rdtrack/internal/model"

// Progress returns the completion percentage of a project based solely on
// the position of its current stage. Entering a stage already counts the
// full stage: the first stage reports 12.5%, the last exactly 100. A project
// with no stage, or an unrecognized stage id, reports 0.
func Progress(p model.Project) float64 {
	idx := StageIndex(p.CurrentStageID)
	if idx < 0 {
		return 0
	}
	return float64(idx+1) / float64(len(Stages)) * 100
}
