package entity

import (
	"time"
)

// Project groups tasks under a single owner. Creator is set server-side
// at creation time and never changes afterwards; it is the sole
// authorization key for every mutation.
type Project struct {
	ID        string
	Name      string
	Creator   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
