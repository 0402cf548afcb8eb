package store

import (
	"sort"
	"strings"
	"time"

	"taskdeck/internal/model"
)

// SortMode selects the primary sort key for task lists.
type SortMode string

const (
	SortManual    SortMode = "manual"
	SortDueDate   SortMode = "dueDate"
	SortPriority  SortMode = "priority"
	SortCreatedAt SortMode = "createdAt"
)

// TaskMatchesFilters reports whether a task passes the active filter sets
// and the free-text search query. An empty filter set or query matches
// everything. The query is matched case-insensitively against the title,
// description, and tags; subtask text is deliberately out of scope.
func TaskMatchesFilters(t *model.Task, filters model.ActiveFilters, query string) bool {
	if len(filters.Tags) > 0 {
		matched := false
		for _, tag := range filters.Tags {
			if t.HasTag(tag) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if len(filters.Priorities) > 0 && !filters.HasPriority(t.Priority) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// ManualRanks derives the manual rank of every task in a workspace by
// walking its columns in order and each column's order list in order,
// assigning increasing integers to first-seen task ids only.
func ManualRanks(st *model.State, workspaceID string) map[string]int {
	ranks := make(map[string]int)
	w := st.Workspace(workspaceID)
	if w == nil {
		return ranks
	}
	next := 0
	for _, colID := range w.Columns {
		for _, taskID := range st.ColumnTaskOrder[colID] {
			if _, ok := ranks[taskID]; ok {
				continue
			}
			ranks[taskID] = next
			next++
		}
	}
	return ranks
}

func dueDateKey(t *model.Task) (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(layout, t.DueDate); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func rankOf(ranks map[string]int, id string) int {
	if r, ok := ranks[id]; ok {
		return r
	}
	// Tasks outside the workspace walk sort after ranked ones.
	return int(^uint(0) >> 1)
}

// compareTasks returns a negative value when a sorts before b. Whatever the
// mode, ties break by manual rank, then creation time descending, then id,
// so the ordering is total and reproducible.
func compareTasks(a, b *model.Task, mode SortMode, ranks map[string]int) int {
	switch mode {
	case SortDueDate:
		ad, aok := dueDateKey(a)
		bd, bok := dueDateKey(b)
		switch {
		case aok && !bok:
			return -1
		case !aok && bok:
			return 1
		case aok && bok && !ad.Equal(bd):
			if ad.Before(bd) {
				return -1
			}
			return 1
		}
	case SortPriority:
		if pa, pb := model.PriorityRank(a.Priority), model.PriorityRank(b.Priority); pa != pb {
			return pa - pb
		}
	case SortCreatedAt:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if a.CreatedAt.After(b.CreatedAt) {
				return -1
			}
			return 1
		}
	}
	if ra, rb := rankOf(ranks, a.ID), rankOf(ranks, b.ID); ra != rb {
		return ra - rb
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

// SortTaskObjects sorts tasks in place by the given mode, using ranks for
// manual ordering and tie-breaking.
func SortTaskObjects(tasks []*model.Task, mode SortMode, ranks map[string]int) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return compareTasks(tasks[i], tasks[j], mode, ranks) < 0
	})
}

// SortTaskIDs resolves ids against the state and returns them sorted by the
// given mode. Ids that don't resolve are dropped.
func SortTaskIDs(st *model.State, ids []string, mode SortMode, ranks map[string]int) []string {
	tasks := make([]*model.Task, 0, len(ids))
	for _, id := range ids {
		if t := st.Tasks[id]; t != nil {
			tasks = append(tasks, t)
		}
	}
	SortTaskObjects(tasks, mode, ranks)
	sorted := make([]string, len(tasks))
	for i, t := range tasks {
		sorted[i] = t.ID
	}
	return sorted
}
