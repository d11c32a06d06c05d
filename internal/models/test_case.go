package models

// TestCase holds one input/expected-output pair for a problem. The types
// descriptor is free-form and interpreted by the judge, not validated here.
type TestCase struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProblemID uint    `gorm:"not null" json:"problem_id"`
	Input     string  `gorm:"type:text;not null" json:"input"`
	Output    string  `gorm:"type:text;not null" json:"output"`
	Types     string  `gorm:"type:text;not null" json:"types"`
	Problem   Problem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
