package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/DominusMortem/foodgram-project-react/pkg/model"
)

type CartRepository interface {
	GetCart(ctx context.Context, userID uint) (*model.ShoppingCart, error)
	GetOrCreateCart(ctx context.Context, userID uint) (*model.ShoppingCart, error)
	AddRecipeToCart(ctx context.Context, cartID uint, recipeID uint) error
	RemoveRecipeFromCart(ctx context.Context, cartID uint, recipeID uint) error
	GetShoppingList(ctx context.Context, cartID uint) ([]*model.ShoppingListItem, error)
}

func (r *Repository) GetCart(ctx context.Context, userID uint) (*model.ShoppingCart, error) {
	var cart model.ShoppingCart

	if result := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&cart); result.Error != nil {
		return nil, translateError(result.Error, "shopping cart")
	}

	return &cart, nil
}

// GetOrCreateCart returns the user's cart, creating it on first use.
func (r *Repository) GetOrCreateCart(ctx context.Context, userID uint) (*model.ShoppingCart, error) {
	cart := model.ShoppingCart{UserID: userID}

	result := r.DB.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&cart)
	if result.Error != nil {
		return nil, result.Error
	}

	if cart.ID == 0 {
		return r.GetCart(ctx, userID)
	}

	return &cart, nil
}

func (r *Repository) AddRecipeToCart(ctx context.Context, cartID uint, recipeID uint) error {
	entry := model.ShoppingCartRecipe{ShoppingCartID: cartID, RecipeID: recipeID}

	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&entry); result.Error != nil {
		return translateError(result.Error, "recipe in shopping cart")
	}

	return nil
}

func (r *Repository) RemoveRecipeFromCart(ctx context.Context, cartID uint, recipeID uint) error {
	result := r.DB.WithContext(ctx).
		Where("shopping_cart_id = ? AND recipe_id = ?", cartID, recipeID).
		Delete(&model.ShoppingCartRecipe{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: recipe %d in shopping cart", ErrNotFound, recipeID)
	}

	return nil
}

// CartRecipeIDs reports which of recipeIDs are in userID's shopping cart.
func (r *Repository) CartRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	inCart := make(map[uint]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return inCart, nil
	}

	var ids []uint

	result := r.DB.WithContext(ctx).Table("shopping_cart_recipes scr").
		Joins("INNER JOIN shopping_carts sc on sc.id = scr.shopping_cart_id").
		Where("sc.user_id = ? AND scr.recipe_id IN ?", userID, recipeIDs).
		Pluck("scr.recipe_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, id := range ids {
		inCart[id] = true
	}

	return inCart, nil
}

// GetShoppingList sums the amounts of every ingredient used by the recipes in
// the cart, one row per (name, unit), ordered by name.
func (r *Repository) GetShoppingList(ctx context.Context, cartID uint) ([]*model.ShoppingListItem, error) {
	var items []*model.ShoppingListItem

	result := r.DB.WithContext(ctx).Table("shopping_cart_recipes scr").
		Select("i.name as name, i.measurement_unit as measurement_unit, sum(qi.amount) as total").
		Joins("INNER JOIN recipe_ingredients ri on ri.recipe_id = scr.recipe_id").
		Joins("INNER JOIN quantified_ingredients qi on qi.id = ri.quantified_ingredient_id").
		Joins("INNER JOIN ingredients i on i.id = qi.ingredient_id").
		Where("scr.shopping_cart_id = ?", cartID).
		Group("i.name, i.measurement_unit").
		Order("i.name asc, i.measurement_unit asc").
		Scan(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}
