package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DominusMortem/foodgram-project-react/pkg/model"
)

var (
	ErrTagNotFound        = errors.New("tag not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

type RecipeRepository interface { //nolint:interfacebloat // this is an acceptable interface
	AddRecipe(ctx context.Context, recipe model.Recipe, tagIDs []uint, ingredients []model.IngredientAmount) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe model.Recipe, tagIDs []uint, ingredients []model.IngredientAmount) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID uint) error
	FindRecipe(ctx context.Context, recipeID uint) (*model.Recipe, error)
	GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error)
	GetRecipes(ctx context.Context, filter model.RecipeFilter) ([]*model.Recipe, int64, error)
	GetAuthorRecipes(ctx context.Context, authorID uint, limit int) ([]*model.Recipe, int64, error)
	AddFavorite(ctx context.Context, userID uint, recipeID uint) error
	DeleteFavorite(ctx context.Context, userID uint, recipeID uint) error
	FavoritedRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error)
	CartRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error)
}

type recipeTag struct {
	RecipeID uint
	TagID    uint
}

func (recipeTag) TableName() string { return "recipe_tags" }

type recipeIngredient struct {
	RecipeID               uint
	QuantifiedIngredientID uint
}

func (recipeIngredient) TableName() string { return "recipe_ingredients" }

func (r *Repository) AddRecipe(ctx context.Context, recipe model.Recipe, tagIDs []uint, ingredients []model.IngredientAmount) (*model.Recipe, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit(clause.Associations).Create(&recipe); result.Error != nil {
			return result.Error
		}

		return attachTagsAndIngredients(tx, recipe.ID, tagIDs, ingredients)
	})
	if err != nil {
		return nil, err
	}

	return r.GetRecipeByID(ctx, recipe.ID)
}

// UpdateRecipe rewrites the scalar fields and replaces both the tag and the
// ingredient sets of an existing recipe.
func (r *Repository) UpdateRecipe(ctx context.Context, recipe model.Recipe, tagIDs []uint, ingredients []model.IngredientAmount) (*model.Recipe, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Recipe{ID: recipe.ID}).
			Select("name", "image", "text", "cooking_time", "updated_at").
			Updates(map[string]any{
				"name":         recipe.Name,
				"image":        recipe.Image,
				"text":         recipe.Text,
				"cooking_time": recipe.CookingTime,
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: recipe %d", ErrNotFound, recipe.ID)
		}

		if result := tx.Where("recipe_id = ?", recipe.ID).Delete(&recipeTag{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("recipe_id = ?", recipe.ID).Delete(&recipeIngredient{}); result.Error != nil {
			return result.Error
		}

		return attachTagsAndIngredients(tx, recipe.ID, tagIDs, ingredients)
	})
	if err != nil {
		return nil, err
	}

	return r.GetRecipeByID(ctx, recipe.ID)
}

func attachTagsAndIngredients(tx *gorm.DB, recipeID uint, tagIDs []uint, ingredients []model.IngredientAmount) error {
	var tagCount int64

	if result := tx.Model(&model.Tag{}).Where("id IN ?", tagIDs).Count(&tagCount); result.Error != nil {
		return result.Error
	}

	if tagCount != int64(len(tagIDs)) {
		return fmt.Errorf("%w: one of %v", ErrTagNotFound, tagIDs)
	}

	ingredientIDs := make([]uint, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ingredientIDs = append(ingredientIDs, ingredient.IngredientID)
	}

	var ingredientCount int64

	if result := tx.Model(&model.Ingredient{}).Where("id IN ?", ingredientIDs).Count(&ingredientCount); result.Error != nil {
		return result.Error
	}

	if ingredientCount != int64(len(ingredientIDs)) {
		return fmt.Errorf("%w: one of %v", ErrIngredientNotFound, ingredientIDs)
	}

	tags := make([]recipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tags = append(tags, recipeTag{RecipeID: recipeID, TagID: tagID})
	}

	if result := tx.Create(&tags); result.Error != nil {
		return result.Error
	}

	links := make([]recipeIngredient, 0, len(ingredients))

	for _, ingredient := range ingredients {
		quantity, err := findOrCreateQuantity(tx, ingredient)
		if err != nil {
			return err
		}

		links = append(links, recipeIngredient{RecipeID: recipeID, QuantifiedIngredientID: quantity.ID})
	}

	if result := tx.Create(&links); result.Error != nil {
		return result.Error
	}

	return nil
}

// findOrCreateQuantity returns the row for the exact (ingredient, amount)
// pair, inserting it when no recipe has used that pair before.
func findOrCreateQuantity(tx *gorm.DB, ingredient model.IngredientAmount) (*model.QuantifiedIngredient, error) {
	quantity := model.QuantifiedIngredient{IngredientID: ingredient.IngredientID, Amount: ingredient.Amount}

	result := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&quantity)
	if result.Error != nil {
		return nil, result.Error
	}

	if quantity.ID == 0 {
		result = tx.Where("ingredient_id = ? AND amount = ?", ingredient.IngredientID, ingredient.Amount).First(&quantity)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	return &quantity, nil
}

func (r *Repository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Recipe{}, recipeID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: recipe %d", ErrNotFound, recipeID)
	}

	return nil
}

// FindRecipe loads a recipe without any of its associations.
func (r *Repository) FindRecipe(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	var recipe model.Recipe

	if result := r.DB.WithContext(ctx).First(&recipe, recipeID); result.Error != nil {
		return nil, translateError(result.Error, "recipe")
	}

	return &recipe, nil
}

// ingredientsByName loads each quantity together with its catalog ingredient,
// ordered by ingredient name.
func ingredientsByName(db *gorm.DB) *gorm.DB {
	return db.Joins("Ingredient").Order(`"Ingredient"."name" asc`)
}

func (r *Repository) GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.DB.WithContext(ctx).
		Joins("Author").
		Preload("Tags").
		Preload("Ingredients", ingredientsByName).
		First(&recipe, recipeID)
	if result.Error != nil {
		return nil, translateError(result.Error, "recipe")
	}

	return &recipe, nil
}

func (r *Repository) GetRecipes(ctx context.Context, filter model.RecipeFilter) ([]*model.Recipe, int64, error) {
	var (
		recipes []*model.Recipe
		count   int64
	)

	countQuery := r.DB.WithContext(ctx).Model(&model.Recipe{})
	updateQueryWithFilter(filter, countQuery)

	if result := countQuery.Count(&count); result.Error != nil {
		return nil, 0, result.Error
	}

	query := r.DB.WithContext(ctx).
		Joins("Author").
		Preload("Tags").
		Preload("Ingredients", ingredientsByName).
		Order("recipes.id desc")
	updateQueryWithFilter(filter, query)

	if filter.Limit > 0 {
		query.Limit(filter.Limit).Offset(filter.Offset)
	}

	if result := query.Find(&recipes); result.Error != nil {
		return nil, 0, result.Error
	}

	return recipes, count, nil
}

func updateQueryWithFilter(filter model.RecipeFilter, query *gorm.DB) {
	if len(filter.Tags) > 0 {
		query.Where("recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt INNER JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)", filter.Tags)
	}

	if filter.AuthorID != nil {
		query.Where("recipes.author_id = ?", *filter.AuthorID)
	}

	if filter.FavoritedBy != nil {
		query.Where("recipes.id IN (SELECT f.recipe_id FROM favorites f WHERE f.user_id = ?)", *filter.FavoritedBy)
	}

	if filter.InShoppingCartOf != nil {
		query.Where("recipes.id IN (SELECT scr.recipe_id FROM shopping_cart_recipes scr INNER JOIN shopping_carts sc ON sc.id = scr.shopping_cart_id WHERE sc.user_id = ?)", *filter.InShoppingCartOf)
	}
}

// GetAuthorRecipes returns up to limit of the author's newest recipes (all of
// them when limit is not positive) together with the author's recipe count.
func (r *Repository) GetAuthorRecipes(ctx context.Context, authorID uint, limit int) ([]*model.Recipe, int64, error) {
	var (
		recipes []*model.Recipe
		count   int64
	)

	result := r.DB.WithContext(ctx).Model(&model.Recipe{}).Where("author_id = ?", authorID).Count(&count)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	query := r.DB.WithContext(ctx).Where("author_id = ?", authorID).Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Find(&recipes); result.Error != nil {
		return nil, 0, result.Error
	}

	return recipes, count, nil
}

func (r *Repository) AddFavorite(ctx context.Context, userID uint, recipeID uint) error {
	favorite := model.Favorite{UserID: userID, RecipeID: recipeID}

	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&favorite); result.Error != nil {
		return translateError(result.Error, "favorite")
	}

	return nil
}

func (r *Repository) DeleteFavorite(ctx context.Context, userID uint, recipeID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: favorite", ErrNotFound)
	}

	return nil
}

// FavoritedRecipeIDs reports which of recipeIDs userID has favorited.
func (r *Repository) FavoritedRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	favorited := make(map[uint]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return favorited, nil
	}

	var ids []uint

	result := r.DB.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, id := range ids {
		favorited[id] = true
	}

	return favorited, nil
}
