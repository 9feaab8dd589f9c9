package model

import (
	"time"
)

// Genre represents a film genre
type Genre struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for Genre
func (Genre) TableName() string {
	return "genre"
}

// Apply writes the given columns onto the genre
func (g *Genre) Apply(fields Fields) error {
	return applyName(&g.Name, "genre", fields)
}
