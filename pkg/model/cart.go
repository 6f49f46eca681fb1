package model

import "time"

type ShoppingCart struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint `gorm:"uniqueIndex"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

type ShoppingCartRecipe struct {
	ShoppingCartID uint `gorm:"primaryKey"`
	RecipeID       uint `gorm:"primaryKey"`
	CreatedAt      time.Time

	ShoppingCart ShoppingCart `gorm:"foreignKey:ShoppingCartID;constraint:OnDelete:CASCADE;"`
	Recipe       Recipe       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

// ShoppingListItem is one aggregated line of an exported shopping list.
type ShoppingListItem struct {
	Name            string
	MeasurementUnit string
	Total           int64
}
