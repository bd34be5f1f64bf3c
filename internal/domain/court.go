package domain

import "time"

// Court represents a bookable court
type Court struct {
	ID          int64
	Name        string
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
