package store

import (
	"encoding/json"
	"sort"

	"taskdeck/internal/model"
)

// Hydrate loads a snapshot into live state. A nil snapshot reads from
// durable storage; empty or unparsable storage yields default state. Any
// panic while repairing is caught and resolved by falling back to defaults,
// so hydration is all-or-nothing from the caller's perspective.
func (s *Store) Hydrate(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap == nil {
		data, ok := s.sink.Load()
		if !ok || len(data) == 0 {
			s.state = s.initializeDefaultData()
			// First-run seed persists immediately.
			s.persistNowLocked()
			return
		}
		var loaded Snapshot
		if err := json.Unmarshal(data, &loaded); err != nil {
			s.log.Error().Err(err).Msg("persisted snapshot unreadable, starting fresh")
			s.state = s.initializeDefaultData()
			s.persistNowLocked()
			return
		}
		snap = &loaded
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("hydration failed, falling back to defaults")
			s.state = s.initializeDefaultData()
			s.persistNowLocked()
		}
	}()

	s.state = s.repair(snap)
	s.persistLocked()
}

// repair turns an untrusted snapshot into valid state. The steps run in a
// fixed order; after the last one the column-task-order invariant holds
// unconditionally: every task id appears in exactly one column's list, and
// that column equals the task's own ColumnID.
func (s *Store) repair(snap *Snapshot) *model.State {
	st := &model.State{
		AppVersion:         appVersion,
		Theme:              snap.Theme,
		CurrentWorkspaceID: snap.CurrentWorkspaceID,
		Columns:            make(map[string]*model.Column),
		Tasks:              make(map[string]*model.Task),
		ColumnTaskOrder:    make(map[string][]string),
		Templates:          make(map[string]*model.Template),
		Toasts:             []*model.Toast{},
	}
	if st.Theme == "" {
		st.Theme = defaultTheme
	}

	// Filters: current shape, or migrated from the legacy tag array.
	st.ActiveFilters = decodeFilters(snap.ActiveFilters)

	seenWorkspaces := make(map[string]bool)
	for _, w := range snap.Workspaces {
		if w == nil || w.ID == "" || seenWorkspaces[w.ID] {
			continue
		}
		seenWorkspaces[w.ID] = true
		st.Workspaces = append(st.Workspaces, w)
	}
	if len(st.Workspaces) == 0 {
		return s.initializeDefaultData()
	}

	for id, col := range snap.Columns {
		if col == nil || id == "" {
			continue
		}
		col.ID = id
		// Missing showCompleted decodes to false, which is the default.
		st.Columns[id] = col
	}
	s.repairWorkspaceColumns(st)

	for id, t := range snap.Tasks {
		if t == nil || id == "" {
			continue
		}
		t.ID = id
		s.repairTask(st, t)
		st.Tasks[id] = t
	}

	s.rebuildColumnTaskOrder(st, snap.ColumnTaskOrder)

	if st.Workspace(st.CurrentWorkspaceID) == nil {
		st.CurrentWorkspaceID = st.Workspaces[0].ID
	}
	pruneTagFilters(st)
	return st
}

// repairWorkspaceColumns restores the workspace/column ownership tree:
// dangling column ids are dropped from workspace lists, columns pointing at
// a missing workspace are re-homed to the first workspace, and owned
// columns missing from their workspace's list are appended.
func (s *Store) repairWorkspaceColumns(st *model.State) {
	for _, w := range st.Workspaces {
		kept := w.Columns[:0]
		seen := make(map[string]bool)
		for _, colID := range w.Columns {
			col := st.Columns[colID]
			if col == nil || col.WorkspaceID != w.ID || seen[colID] {
				continue
			}
			seen[colID] = true
			kept = append(kept, colID)
		}
		w.Columns = kept
	}

	var strays []string
	for id, col := range st.Columns {
		if st.Workspace(col.WorkspaceID) == nil {
			col.WorkspaceID = st.Workspaces[0].ID
		}
		w := st.Workspace(col.WorkspaceID)
		if !w.HasColumn(id) {
			strays = append(strays, id)
		}
	}
	sort.Strings(strays)
	for _, id := range strays {
		w := st.Workspace(st.Columns[id].WorkspaceID)
		w.Columns = append(w.Columns, id)
	}
}

// repairTask backfills per-task defaults and re-runs the same normalization
// rules live mutations apply.
func (s *Store) repairTask(st *model.State, t *model.Task) {
	if t.IsCompleted && t.CompletedAt == nil {
		done := t.CreatedAt
		t.CompletedAt = &done
	}
	if !t.IsCompleted {
		t.CompletedAt = nil
	}
	t.Subtasks = normalizeSubtasks(t.Subtasks)
	title, verr := validateName(st, KindTask, t.Title, NameContext{})
	if verr != nil {
		title = placeholderTitle
	}
	t.Title = title
	t.Tags = NormalizeTags(t.Tags)
	t.Priority = model.NormalizePriority(t.Priority)

	if _, ok := st.Columns[t.ColumnID]; !ok {
		t.ColumnID = fallbackColumn(st)
	}
}

// fallbackColumn picks the first column of the active workspace, or the
// first column overall when the active workspace has none.
func fallbackColumn(st *model.State) string {
	if w := st.ActiveWorkspace(); w != nil && len(w.Columns) > 0 {
		return w.Columns[0]
	}
	for _, w := range st.Workspaces {
		if len(w.Columns) > 0 {
			return w.Columns[0]
		}
	}
	return ""
}

// rebuildColumnTaskOrder reconstructs the order index from scratch. An
// entry from the snapshot survives only if the task exists, its ColumnID
// matches the column being rebuilt, and it has not been placed yet (first
// occurrence wins). Tasks the pass missed are appended to their own
// column's list in creation order.
func (s *Store) rebuildColumnTaskOrder(st *model.State, snapOrder map[string][]string) {
	placed := make(map[string]bool)
	for _, w := range st.Workspaces {
		for _, colID := range w.Columns {
			order := []string{}
			for _, taskID := range snapOrder[colID] {
				t := st.Tasks[taskID]
				if t == nil || t.ColumnID != colID || placed[taskID] {
					continue
				}
				placed[taskID] = true
				order = append(order, taskID)
			}
			st.ColumnTaskOrder[colID] = order
		}
	}

	var strays []*model.Task
	for _, t := range st.Tasks {
		if !placed[t.ID] {
			strays = append(strays, t)
		}
	}
	sort.Slice(strays, func(i, j int) bool {
		if !strays[i].CreatedAt.Equal(strays[j].CreatedAt) {
			return strays[i].CreatedAt.Before(strays[j].CreatedAt)
		}
		return strays[i].ID < strays[j].ID
	})
	for _, t := range strays {
		if t.ColumnID == "" {
			// No column exists anywhere; the task is unreachable and
			// dropping it is the only repair left.
			delete(st.Tasks, t.ID)
			continue
		}
		st.ColumnTaskOrder[t.ColumnID] = append(st.ColumnTaskOrder[t.ColumnID], t.ID)
	}
}

// pruneTagFilters drops active tag filters that no task in the current
// workspace carries. Priority filters are never pruned.
func pruneTagFilters(st *model.State) {
	vocab := st.WorkspaceTags(st.CurrentWorkspaceID)
	kept := []string{}
	for _, tag := range st.ActiveFilters.Tags {
		if vocab[tag] {
			kept = append(kept, tag)
		}
	}
	st.ActiveFilters.Tags = kept
}

// CheckOrderInvariant re-runs the order rebuild against a copy of the
// current order index and reports whether anything would change. Used by
// tests as the §3 invariant checker.
func (s *Store) CheckOrderInvariant() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state

	seen := make(map[string]bool)
	for colID, order := range st.ColumnTaskOrder {
		for _, taskID := range order {
			t := st.Tasks[taskID]
			if t == nil || t.ColumnID != colID || seen[taskID] {
				return false
			}
			seen[taskID] = true
		}
	}
	return len(seen) == len(st.Tasks)
}
