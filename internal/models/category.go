package models

// Category represents a category model.
type Category struct {
	ID     int    `db:"id" json:"id"`
	Title  string `db:"title" json:"title"`
	Active bool   `db:"active" json:"active"`
}

// GetName returns the category title.
func (c Category) GetName() string {
	return c.Title
}
