package models

// Category is an admin-managed label grouping artworks by type.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c Category) RecordID() int64 { return c.ID }
