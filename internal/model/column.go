package model

type Column struct {
	ID            string `json:"id"`
	WorkspaceID   string `json:"workspaceId"`
	Title         string `json:"title"`
	ShowCompleted bool   `json:"showCompleted"`
}
