package entity

import (
	"time"
)

// Task belongs to a project by reference. State is a free-form tag;
// no transition graph is enforced. Creator is immutable once set.
type Task struct {
	ID        string
	Name      string
	State     string
	Project   string
	Creator   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
