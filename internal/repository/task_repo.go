package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rdtrack/internal/model"
	"rdtrack/pkg/metrics"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

func (r *TaskRepository) Insert(ctx context.Context, t *model.Task) (int, error) {
	r.logger.Debug("Inserting task",
		zap.String("name", t.Name),
		zap.String("status", t.Status),
	)

	start := time.Now()
	query := `
        INSERT INTO tasks (name, project_id, assigned_to, end_date, priority, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query,
		t.Name,
		t.ProjectID,
		assigneesToDB(t.AssignedTo),
		t.EndDate,
		t.Priority,
		t.Status,
	).Scan(&id)
	metrics.RecordDBQueryDuration("insert", "tasks", time.Since(start))

	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Error(err),
			zap.String("name", t.Name),
		)
		return 0, err
	}

	r.logger.Info("Task inserted successfully", zap.Int("task_id", id))
	return id, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	r.logger.Debug("Listing tasks")

	start := time.Now()
	query := `
        SELECT id, name, project_id, assigned_to, end_date, priority, status, created_at
        FROM tasks
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	metrics.RecordDBQueryDuration("list", "tasks", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		var assigned []int32
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.ProjectID,
			&assigned,
			&t.EndDate,
			&t.Priority,
			&t.Status,
			&t.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan task row", zap.Error(err))
			return nil, err
		}
		t.AssignedTo = assigneesFromDB(assigned)
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *TaskRepository) MarkCompleted(ctx context.Context, taskID int) error {
	r.logger.Debug("Marking task as completed", zap.Int("task_id", taskID))

	start := time.Now()
	query := `
        UPDATE tasks
        SET status = 'completed'
        WHERE id = $1
    `
	result, err := r.db.Exec(ctx, query, taskID)
	metrics.RecordDBQueryDuration("update", "tasks", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to mark task as completed",
			zap.Error(err),
			zap.Int("task_id", taskID),
		)
		return err
	}

	r.logger.Info("Task marked as completed",
		zap.Int("task_id", taskID),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// assigned_to is stored as int4[]; pgx scans that into []int32.
func assigneesToDB(ids []int) []int32 {
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return out
}

func assigneesFromDB(ids []int32) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
