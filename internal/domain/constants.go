package domain

// Business validation constants
const (
	MaxCourtNameLength        = 100
	MaxCourtDescriptionLength = 500
	MaxNotesLength            = 500
	MinPasswordLength         = 6
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
