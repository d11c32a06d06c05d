package models

// Event is a standalone named happening (a contest night, a workshop). It has
// no relationship to the problem-bank entities.
type Event struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}
