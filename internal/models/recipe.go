package models

import (
	"time"
)

// Recipe is the persisted aggregate for a dish. TimeToCook is stored as
// total minutes. IsDeleted marks a soft delete; the row stays in the store.
type Recipe struct {
	ID           uint         `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Name         string       `gorm:"size:255;not null" json:"name"`
	TimeToCook   int          `gorm:"not null" json:"time_to_cook"`
	Method       string       `gorm:"type:text" json:"method"`
	IsVegetarian bool         `gorm:"not null;default:false" json:"is_vegetarian"`
	IsVegan      bool         `gorm:"not null;default:false" json:"is_vegan"`
	IsDeleted    bool         `gorm:"not null;default:false;index" json:"-"`
	ImageURL     string       `gorm:"size:255" json:"image_url,omitempty"`
	Ingredients  []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

// Ingredient is owned by exactly one Recipe; it is never shared.
type Ingredient struct {
	ID       uint    `gorm:"primarykey" json:"id"`
	RecipeID uint    `gorm:"not null;index" json:"recipe_id"`
	Name     string  `gorm:"size:255;not null" json:"name"`
	Quantity float64 `gorm:"not null" json:"quantity"`
	Unit     string  `gorm:"size:50" json:"unit"`
}
