package mqhandler

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	mqcontracts "rdtrack/contracts/mq"
	"rdtrack/internal/model"
	"rdtrack/internal/repository"
)

type TaskCreatedHandler struct {
	taskRepo *repository.TaskRepository
	logger   *zap.Logger
}

func NewTaskCreatedHandler(taskRepo *repository.TaskRepository, logger *zap.Logger) *TaskCreatedHandler {
	return &TaskCreatedHandler{taskRepo: taskRepo, logger: logger}
}

func (h *TaskCreatedHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	var p mqcontracts.TaskCreatedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal TaskCreatedPayload", zap.Error(err))
		return err
	}

	if p.Name == "" {
		h.logger.Warn("Ignoring task.created event without a name")
		return nil
	}
	if p.Priority == "" {
		p.Priority = model.PriorityMedium
	}

	h.logger.Info("Handling task.created event", zap.String("name", p.Name))

	t := &model.Task{
		Name:       p.Name,
		ProjectID:  p.ProjectID,
		AssignedTo: p.AssignedTo,
		EndDate:    p.EndDate,
		Priority:   p.Priority,
		Status:     model.TaskStatusPending,
	}

	id, err := h.taskRepo.Insert(ctx, t)
	if err != nil {
		h.logger.Error("Failed to insert task from event", zap.Error(err))
		return err
	}

	h.logger.Info("Task created from event", zap.Int("task_id", id))
	return nil
}
