package entity

import "time"

// News is an announcement shown to marketplace users.
type News struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Active    bool       `json:"active"`
	CreatedBy string     `json:"createdBy"`
	Timestamp time.Time  `json:"timestamp"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NewsUpdate carries partial news changes. Nil fields are left unchanged.
type NewsUpdate struct {
	Title   *string
	Content *string
	Active  *bool
}
