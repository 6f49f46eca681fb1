package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	MinCookingTime = 1
	MinAmount      = 1
)

type Tag struct {
	gorm.Model
	Name  string `gorm:"size:200"`
	Color string `gorm:"size:7"`
	Slug  string `gorm:"uniqueIndex;size:200"`
}

type Ingredient struct {
	gorm.Model
	Name            string `gorm:"uniqueIndex:idx_ingredient_name_unit;size:200"`
	MeasurementUnit string `gorm:"uniqueIndex:idx_ingredient_name_unit;size:200"`
}

// QuantifiedIngredient is shared by every recipe using the same ingredient
// in the same amount. Rows are never updated once created.
type QuantifiedIngredient struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	IngredientID uint `gorm:"uniqueIndex:idx_ingredient_amount"`
	Amount       int  `gorm:"uniqueIndex:idx_ingredient_amount;check:amount >= 1"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE;"`
}

type Recipe struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AuthorID    uint `gorm:"index"`
	Name        string `gorm:"size:200"`
	Image       string
	Text        string
	CookingTime int                    `gorm:"check:cooking_time >= 1"`
	Tags        []Tag                  `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE;"`
	Ingredients []QuantifiedIngredient `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE;"`

	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

type Favorite struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint `gorm:"uniqueIndex:idx_favorite_user_recipe"`
	RecipeID  uint `gorm:"uniqueIndex:idx_favorite_user_recipe"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

// RecipeFilter narrows recipe listings. Zero values mean "no filter".
type RecipeFilter struct {
	Tags             []string
	AuthorID         *uint
	FavoritedBy      *uint
	InShoppingCartOf *uint
	Limit            int
	Offset           int
}

// IngredientAmount is a requested (ingredient, amount) pair before it is
// resolved to a QuantifiedIngredient row.
type IngredientAmount struct {
	IngredientID uint
	Amount       int
}

// ImportedRecipe is a recipe draft read from an external source. Ingredients
// are kept as free-text lines because they do not map to catalog rows.
type ImportedRecipe struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
	Ingredients []string
	Source      string
}
