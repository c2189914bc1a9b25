package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"rdtrack/internal/model"
	"rdtrack/pkg/metrics"
)

type ProjectRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectRepository(db *pgxpool.Pool, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProjectRepository) Insert(ctx context.Context, p *model.Project) (int, error) {
	r.logger.Debug("Inserting project",
		zap.String("project_name", p.ProjectName),
		zap.String("order_number", p.OrderNumber),
	)

	start := time.Now()
	query := `
        INSERT INTO projects (project_name, order_number, current_stage_id, estimated_completion, priority)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query,
		p.ProjectName,
		p.OrderNumber,
		p.CurrentStageID,
		p.EstimatedCompletion,
		p.Priority,
	).Scan(&id)
	metrics.RecordDBQueryDuration("insert", "projects", time.Since(start))

	if err != nil {
		r.logger.Error("Failed to insert project", zap.Error(err))
		return 0, err
	}

	r.logger.Info("Project inserted successfully",
		zap.Int("id", id),
		zap.String("order_number", p.OrderNumber),
	)
	return id, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	r.logger.Debug("Listing projects")

	start := time.Now()
	query := `
        SELECT id, project_name, order_number, current_stage_id, estimated_completion, priority, created_at, updated_at
        FROM projects
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	metrics.RecordDBQueryDuration("list", "projects", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID,
			&p.ProjectName,
			&p.OrderNumber,
			&p.CurrentStageID,
			&p.EstimatedCompletion,
			&p.Priority,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			r.logger.Error("Failed to scan project row", zap.Error(err))
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*model.Project, error) {
	start := time.Now()
	query := `
        SELECT id, project_name, order_number, current_stage_id, estimated_completion, priority, created_at, updated_at
        FROM projects
        WHERE id = $1
    `
	var p model.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.ProjectName,
		&p.OrderNumber,
		&p.CurrentStageID,
		&p.EstimatedCompletion,
		&p.Priority,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	metrics.RecordDBQueryDuration("get", "projects", time.Since(start))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AdvanceStage moves a project to a new stage and appends the matching
// timeline entry in one transaction.
func (r *ProjectRepository) AdvanceStage(ctx context.Context, projectID int, stageID, note string) error {
	r.logger.Debug("Advancing project stage",
		zap.Int("project_id", projectID),
		zap.String("stage_id", stageID),
	)

	start := time.Now()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.Error("Failed to begin stage advance tx", zap.Error(err))
		return err
	}
	defer tx.Rollback(ctx)

	updateQuery := `
        UPDATE projects
        SET current_stage_id = $1, updated_at = NOW()
        WHERE id = $2
    `
	if _, err := tx.Exec(ctx, updateQuery, stageID, projectID); err != nil {
		r.logger.Error("Failed to update project stage",
			zap.Int("project_id", projectID),
			zap.Error(err),
		)
		return err
	}

	timelineQuery := `
        INSERT INTO project_timeline (project_id, stage_id, note)
        VALUES ($1, $2, $3)
    `
	if _, err := tx.Exec(ctx, timelineQuery, projectID, stageID, note); err != nil {
		r.logger.Error("Failed to insert timeline entry",
			zap.Int("project_id", projectID),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit stage advance", zap.Error(err))
		return err
	}
	metrics.RecordDBQueryDuration("advance_stage", "projects", time.Since(start))

	r.logger.Info("Project stage advanced",
		zap.Int("project_id", projectID),
		zap.String("stage_id", stageID),
	)
	return nil
}

func (r *ProjectRepository) ListTimeline(ctx context.Context, projectID int) ([]model.TimelineEntry, error) {
	start := time.Now()
	query := `
        SELECT id, project_id, stage_id, note, entered_at
        FROM project_timeline
        WHERE project_id = $1
        ORDER BY entered_at ASC
    `
	rows, err := r.db.Query(ctx, query, projectID)
	metrics.RecordDBQueryDuration("list", "project_timeline", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query project timeline",
			zap.Int("project_id", projectID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	entries := []model.TimelineEntry{}
	for rows.Next() {
		var e model.TimelineEntry
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.StageID, &e.Note, &e.EnteredAt); err != nil {
			r.logger.Error("Failed to scan timeline row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
