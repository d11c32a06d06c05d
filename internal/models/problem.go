package models

// Problem is a single exercise belonging to a category.
type Problem struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	CategoryID  uint     `gorm:"not null" json:"category_id"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Category    Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
