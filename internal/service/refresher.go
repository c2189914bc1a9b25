package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"rdtrack/internal/insight"
	"rdtrack/internal/model"
	"rdtrack/pkg/metrics"
	"rdtrack/pkg/mq"
)

// Snapshot is one completed aggregation result. The refresher owns the
// "current" snapshot; each pass replaces it wholesale (last writer wins).
type Snapshot struct {
	Notifications []model.Notification `json:"notifications"`
	GeneratedAt   time.Time            `json:"generated_at"`
}

type ProjectLister interface {
	List(ctx context.Context) ([]model.Project, error)
}

type TaskLister interface {
	List(ctx context.Context) ([]model.Task, error)
}

type UserLister interface {
	List(ctx context.Context) ([]model.User, error)
}

type Publisher interface {
	Publish(routingKey string, payload any) error
}

type Deduper interface {
	AcquireOnce(ctx context.Context, scope, key string) bool
}

// Refresher periodically recomputes the notification snapshot from the
// stored collections and publishes an event for every notification seen for
// the first time.
type Refresher struct {
	projects  ProjectLister
	tasks     TaskLister
	users     UserLister
	publisher Publisher
	deduper   Deduper
	logger    *zap.Logger

	mu      sync.RWMutex
	current Snapshot
}

func NewRefresher(
	projects ProjectLister,
	tasks TaskLister,
	users UserLister,
	publisher Publisher,
	deduper Deduper,
	logger *zap.Logger,
) *Refresher {
	return &Refresher{
		projects:  projects,
		tasks:     tasks,
		users:     users,
		publisher: publisher,
		deduper:   deduper,
		logger:    logger,
	}
}

// Current returns the latest completed snapshot.
func (r *Refresher) Current() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Refresh runs one full aggregation pass. A failed fetch for one collection
// degrades to an empty list for that collection instead of aborting the
// whole pass.
func (r *Refresher) Refresh(ctx context.Context, now time.Time) Snapshot {
	projects, err := r.projects.List(ctx)
	if err != nil {
		r.logger.Warn("Project fetch failed, degrading to empty list", zap.Error(err))
		projects = nil
	}
	tasks, err := r.tasks.List(ctx)
	if err != nil {
		r.logger.Warn("Task fetch failed, degrading to empty list", zap.Error(err))
		tasks = nil
	}
	users, err := r.users.List(ctx)
	if err != nil {
		r.logger.Warn("User fetch failed, degrading to empty list", zap.Error(err))
		users = nil
	}

	start := time.Now()
	notifications := insight.Aggregate(insight.Input{
		Projects: projects,
		Tasks:    tasks,
		Users:    insight.UserIndex(users),
	}, now)
	metrics.RecordAggregation(time.Since(start))

	for _, n := range notifications {
		metrics.IncrementNotificationsGenerated(n.Type)
	}

	snap := Snapshot{Notifications: notifications, GeneratedAt: now}

	r.mu.Lock()
	r.current = snap
	r.mu.Unlock()

	r.logger.Info("Notification snapshot refreshed",
		zap.Int("notification_count", len(notifications)),
		zap.Int("project_count", len(projects)),
		zap.Int("task_count", len(tasks)),
	)

	r.publishNew(ctx, notifications)
	return snap
}

// publishNew emits notification.generated events for notifications not seen
// within the dedup TTL. Publish failures are logged and skipped; the snapshot
// is already in place.
func (r *Refresher) publishNew(ctx context.Context, notifications []model.Notification) {
	if r.publisher == nil {
		return
	}
	for _, n := range notifications {
		if r.deduper != nil && !r.deduper.AcquireOnce(ctx, "notify", n.ID) {
			continue
		}
		if err := r.publisher.Publish(mq.RoutingKeyNotificationGenerated, n); err != nil {
			r.logger.Error("Failed to publish notification.generated event",
				zap.String("notification_id", n.ID),
				zap.Error(err),
			)
			continue
		}
		r.logger.Info("Published notification.generated event",
			zap.String("notification_id", n.ID),
			zap.String("type", n.Type),
		)
	}
}

// Run refreshes immediately and then on every tick until the context is
// cancelled.
func (r *Refresher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.Refresh(ctx, time.Now())

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Notification refresher stopped")
			return
		case <-ticker.C:
			r.Refresh(ctx, time.Now())
		}
	}
}
