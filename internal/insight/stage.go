// Package insight derives progress, risk, and notification facts from
// project/task records. Everything in this package is pure and synchronous:
// callers pass in a consistent snapshot of the data plus the current time and
// own whatever they do with the result.
package insight

// Stages is the fixed R&D order pipeline, in lifecycle order. Position is
// zero-based; the last stage represents completion.
var Stages = []string{
	"requirements",
	"structural_design",
	"electrical_design",
	"procurement",
	"machining",
	"assembly",
	"testing",
	"shipping",
}

// StageIndex returns the zero-based position of a stage id, or -1 when the
// id is not part of the pipeline.
func StageIndex(stageID string) int {
	for i, s := range Stages {
		if s == stageID {
			return i
		}
	}
	return -1
}

// ValidStage reports whether the id names a pipeline stage.
func ValidStage(stageID string) bool {
	return StageIndex(stageID) >= 0
}
