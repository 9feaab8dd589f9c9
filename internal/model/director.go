package model

import (
	"time"
)

// ColName is the only mutable column of directors and genres
const ColName = "name"

// NamedColumns lists the mutable columns of a director or genre
var NamedColumns = []string{ColName}

// Director represents a film director
type Director struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for Director
func (Director) TableName() string {
	return "director"
}

// Apply writes the given columns onto the director
func (d *Director) Apply(fields Fields) error {
	return applyName(&d.Name, "director", fields)
}

func applyName(dst *string, entity string, fields Fields) error {
	for col, v := range fields {
		if col != ColName {
			return unknownField(entity, col)
		}
		s, ok := asString(v)
		if !ok {
			return invalidValue(entity, col, v)
		}
		*dst = s
	}
	return nil
}
