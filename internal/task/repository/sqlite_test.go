package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/task/dto"
	"github.com/averine/opshub-service/internal/testutil"
)

func seedTask(t *testing.T, repo *SQLiteRepository, title string, status model.TaskStatus, priority model.TaskPriority, createdAt time.Time, due *time.Time) *model.Task {
	t.Helper()
	task := &model.Task{
		BaseModel: model.BaseModel{CreatedAt: createdAt, UpdatedAt: createdAt},
		Title:     title,
		Status:    status,
		Priority:  priority,
		DueDate:   due,
	}
	require.NoError(t, repo.Create(context.Background(), task))
	return task
}

func TestFindAllOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(testutil.NewDB(t))

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	seedTask(t, repo, "oldest", model.TaskStatusPending, model.TaskPriorityLow, base, nil)
	seedTask(t, repo, "tie-a", model.TaskStatusPending, model.TaskPriorityLow, base.Add(time.Hour), nil)
	seedTask(t, repo, "tie-b", model.TaskStatusPending, model.TaskPriorityLow, base.Add(time.Hour), nil)

	tasks, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// Newest first; within a timestamp the higher id wins.
	assert.Equal(t, "tie-b", tasks[0].Title)
	assert.Equal(t, "tie-a", tasks[1].Title)
	assert.Equal(t, "oldest", tasks[2].Title)
}

func TestFindAllFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(testutil.NewDB(t))

	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	due1 := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	due2 := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	seedTask(t, repo, "a", model.TaskStatusPending, model.TaskPriorityHigh, now, &due1)
	seedTask(t, repo, "b", model.TaskStatusCompleted, model.TaskPriorityHigh, now, &due2)
	seedTask(t, repo, "c", model.TaskStatusPending, model.TaskPriorityLow, now, nil)

	status := model.TaskStatusPending
	tasks, err := repo.FindAll(ctx, &dto.TaskFilters{Status: &status})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	priority := model.TaskPriorityHigh
	tasks, err = repo.FindAll(ctx, &dto.TaskFilters{Status: &status, Priority: &priority})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].Title)

	// Due range bounds are inclusive; tasks without a due date never match.
	from := due1
	to := due1
	tasks, err = repo.FindAll(ctx, &dto.TaskFilters{DueFrom: &from, DueTo: &to})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].Title)
}

func TestUpdatePersistsNullableFields(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(testutil.NewDB(t))

	now := time.Now().UTC().Truncate(time.Second)
	due := now.AddDate(0, 1, 0)
	task := seedTask(t, repo, "a", model.TaskStatusPending, model.TaskPriorityLow, now, &due)

	task.DueDate = nil
	desc := "details"
	task.Description = &desc
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.DueDate)
	require.NotNil(t, got.Description)
	assert.Equal(t, "details", *got.Description)
}
