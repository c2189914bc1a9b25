package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rdtrack/internal/model"
)

type fakeProjects struct {
	projects []model.Project
	err      error
}

func (f *fakeProjects) List(ctx context.Context) ([]model.Project, error) {
	return f.projects, f.err
}

type fakeTasks struct {
	tasks []model.Task
	err   error
}

func (f *fakeTasks) List(ctx context.Context) ([]model.Task, error) {
	return f.tasks, f.err
}

type fakeUsers struct {
	users []model.User
	err   error
}

func (f *fakeUsers) List(ctx context.Context) ([]model.User, error) {
	return f.users, f.err
}

type fakePublisher struct {
	published []string
	err       error
}

func (f *fakePublisher) Publish(routingKey string, payload any) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, routingKey)
	return nil
}

type fakeDeduper struct {
	seen map[string]bool
}

func (f *fakeDeduper) AcquireOnce(ctx context.Context, scope, key string) bool {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	full := scope + ":" + key
	if f.seen[full] {
		return false
	}
	f.seen[full] = true
	return true
}

func yesterday(now time.Time) string {
	return now.AddDate(0, 0, -1).Format("2006-01-02")
}

func TestRefresher_SwapsSnapshot(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	r := NewRefresher(
		&fakeProjects{},
		&fakeTasks{tasks: []model.Task{{ID: 1, Name: "X", EndDate: yesterday(now)}}},
		&fakeUsers{},
		nil,
		nil,
		zap.NewNop(),
	)

	assert.Empty(t, r.Current().Notifications)

	snap := r.Refresh(context.Background(), now)
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, now, snap.GeneratedAt)
	assert.Equal(t, snap, r.Current())
}

func TestRefresher_FailedFetchDegradesToEmpty(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	r := NewRefresher(
		&fakeProjects{err: errors.New("db down")},
		&fakeTasks{tasks: []model.Task{{ID: 1, Name: "X", EndDate: yesterday(now)}}},
		&fakeUsers{err: errors.New("db down")},
		nil,
		nil,
		zap.NewNop(),
	)

	// The task collection still aggregates even though the other two failed.
	snap := r.Refresh(context.Background(), now)
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, "task-overdue-1", snap.Notifications[0].ID)
}

func TestRefresher_PublishesFirstSeenOnly(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	pub := &fakePublisher{}
	r := NewRefresher(
		&fakeProjects{},
		&fakeTasks{tasks: []model.Task{{ID: 1, Name: "X", EndDate: yesterday(now)}}},
		&fakeUsers{},
		pub,
		&fakeDeduper{},
		zap.NewNop(),
	)

	r.Refresh(context.Background(), now)
	assert.Len(t, pub.published, 1)

	// Same notification id on the next pass: deduped, no second event.
	r.Refresh(context.Background(), now.Add(time.Minute))
	assert.Len(t, pub.published, 1)
}

func TestRefresher_PublishFailureKeepsSnapshot(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	r := NewRefresher(
		&fakeProjects{},
		&fakeTasks{tasks: []model.Task{{ID: 1, Name: "X", EndDate: yesterday(now)}}},
		&fakeUsers{},
		&fakePublisher{err: errors.New("mq down")},
		&fakeDeduper{},
		zap.NewNop(),
	)

	snap := r.Refresh(context.Background(), now)
	assert.Len(t, snap.Notifications, 1)
	assert.Equal(t, snap, r.Current())
}
