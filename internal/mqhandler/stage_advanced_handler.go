package mqhandler

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	mqcontracts "rdtrack/contracts/mq"
	"rdtrack/internal/insight"
	"rdtrack/internal/repository"
)

type StageAdvancedHandler struct {
	projectRepo *repository.ProjectRepository
	logger      *zap.Logger
}

func NewStageAdvancedHandler(projectRepo *repository.ProjectRepository, logger *zap.Logger) *StageAdvancedHandler {
	return &StageAdvancedHandler{projectRepo: projectRepo, logger: logger}
}

func (h *StageAdvancedHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	var p mqcontracts.StageAdvancedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal StageAdvancedPayload", zap.Error(err))
		return err
	}

	// Unknown stage ids are dropped rather than requeued; retrying cannot
	// make them valid.
	if !insight.ValidStage(p.StageID) {
		h.logger.Warn("Ignoring stage_advanced event with unknown stage",
			zap.Int("project_id", p.ProjectID),
			zap.String("stage_id", p.StageID),
		)
		return nil
	}

	h.logger.Info("Handling project.stage_advanced event",
		zap.Int("project_id", p.ProjectID),
		zap.String("stage_id", p.StageID),
	)

	if err := h.projectRepo.AdvanceStage(ctx, p.ProjectID, p.StageID, p.Note); err != nil {
		h.logger.Error("Failed to apply stage advance",
			zap.Int("project_id", p.ProjectID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
