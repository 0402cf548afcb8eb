package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/model"
)

func sortFixture() []*model.Task {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return []*model.Task{
		{ID: "a", Title: "a", DueDate: "2026-03-20", Priority: model.PriorityIV, CreatedAt: base.Add(1 * time.Minute)},
		{ID: "b", Title: "b", DueDate: "2026-03-18", Priority: model.PriorityI, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "c", Title: "c", CreatedAt: base.Add(3 * time.Minute)},
	}
}

func idsOf(tasks []*model.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestSortTaskObjectsDeterministic(t *testing.T) {
	ranks := map[string]int{"a": 0, "b": 1, "c": 2}

	tasks := sortFixture()
	SortTaskObjects(tasks, SortDueDate, ranks)
	assert.Equal(t, []string{"b", "a", "c"}, idsOf(tasks))

	tasks = sortFixture()
	SortTaskObjects(tasks, SortPriority, ranks)
	assert.Equal(t, []string{"b", "a", "c"}, idsOf(tasks))

	tasks = sortFixture()
	SortTaskObjects(tasks, SortCreatedAt, ranks)
	assert.Equal(t, []string{"c", "b", "a"}, idsOf(tasks))

	tasks = sortFixture()
	SortTaskObjects(tasks, SortManual, ranks)
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(tasks))
}

func TestSortTieBreaksAreTotal(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks := []*model.Task{
		{ID: "z", CreatedAt: created},
		{ID: "y", CreatedAt: created},
		{ID: "x", CreatedAt: created.Add(time.Minute)},
	}
	// No ranks at all: creation time descending, then id lexicographic.
	SortTaskObjects(tasks, SortPriority, map[string]int{})
	assert.Equal(t, []string{"x", "y", "z"}, idsOf(tasks))
}

func TestUnparseableDueDateSortsLast(t *testing.T) {
	tasks := []*model.Task{
		{ID: "odd", DueDate: "someday"},
		{ID: "dated", DueDate: "2026-01-05"},
	}
	SortTaskObjects(tasks, SortDueDate, map[string]int{})
	assert.Equal(t, []string{"dated", "odd"}, idsOf(tasks))
}

func TestManualRanksWalkColumnsInOrder(t *testing.T) {
	st := &model.State{
		Workspaces: []*model.Workspace{
			{ID: "w", Columns: []string{"c1", "c2"}},
		},
		ColumnTaskOrder: map[string][]string{
			"c1": {"t1", "t2"},
			"c2": {"t3", "t1"}, // duplicate, first seen wins
		},
	}
	ranks := ManualRanks(st, "w")
	assert.Equal(t, map[string]int{"t1": 0, "t2": 1, "t3": 2}, ranks)
	assert.Empty(t, ManualRanks(st, "missing"))
}

func TestTaskMatchesFiltersIdentity(t *testing.T) {
	// Empty filters and an empty query match every task.
	for _, task := range sortFixture() {
		assert.True(t, TaskMatchesFilters(task, model.ActiveFilters{}, ""))
	}
}

func TestTaskMatchesFilters(t *testing.T) {
	task := &model.Task{
		Title:       "Ship the Release",
		Description: "cut a tag and push",
		Tags:        []string{"urgent", "release"},
		Priority:    model.PriorityII,
		Subtasks:    []model.Subtask{{Text: "hidden needle"}},
	}

	tagged := model.ActiveFilters{Tags: []string{"urgent"}}
	assert.True(t, TaskMatchesFilters(task, tagged, ""))
	assert.False(t, TaskMatchesFilters(task, model.ActiveFilters{Tags: []string{"home"}}, ""))

	both := model.ActiveFilters{Tags: []string{"urgent"}, Priorities: []string{model.PriorityI}}
	assert.False(t, TaskMatchesFilters(task, both, ""))
	both.Priorities = []string{model.PriorityII}
	assert.True(t, TaskMatchesFilters(task, both, ""))

	// Query is case-insensitive, matches title, description, and tags.
	assert.True(t, TaskMatchesFilters(task, model.ActiveFilters{}, "RELEASE"))
	assert.True(t, TaskMatchesFilters(task, model.ActiveFilters{}, "push"))
	assert.True(t, TaskMatchesFilters(task, model.ActiveFilters{}, "urg"))
	assert.False(t, TaskMatchesFilters(task, model.ActiveFilters{}, "nowhere"))
	// Subtask text is out of search scope.
	assert.False(t, TaskMatchesFilters(task, model.ActiveFilters{}, "needle"))
}

func TestQueryColumnTasksHidesCompleted(t *testing.T) {
	s, _ := newTestStore(t)
	colID := firstColumn(s)

	open, serr := s.CreateTaskFromText(colID, "open item")
	require.Nil(t, serr)
	closed, serr := s.CreateTaskFromText(colID, "closed item")
	require.Nil(t, serr)
	done := true
	require.Nil(t, s.UpdateTask(closed.ID, TaskPatch{IsCompleted: &done}))

	tasks, serr := s.QueryColumnTasks(colID, SortManual, "")
	require.Nil(t, serr)
	assert.Equal(t, []string{open.ID}, idsOf(tasks))

	require.Nil(t, s.SetColumnShowCompleted(colID, true))
	tasks, serr = s.QueryColumnTasks(colID, SortManual, "")
	require.Nil(t, serr)
	assert.Equal(t, []string{open.ID, closed.ID}, idsOf(tasks))

	_, serr = s.QueryColumnTasks("missing", SortManual, "")
	require.NotNil(t, serr)
	assert.Equal(t, CodeInvalidTarget, serr.Code)
}
