package model

type Workspace struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// HasColumn reports whether the workspace's column list contains id.
func (w *Workspace) HasColumn(id string) bool {
	for _, c := range w.Columns {
		if c == id {
			return true
		}
	}
	return false
}
