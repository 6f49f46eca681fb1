package repository

import (
	"context"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/DominusMortem/foodgram-project-react/pkg/model"
)

const loadBatchSize = 500

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *Repository) GetTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag

	if result := r.DB.WithContext(ctx).Order("id").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetTagByID(ctx context.Context, tagID uint) (*model.Tag, error) {
	var tag model.Tag

	if result := r.DB.WithContext(ctx).First(&tag, tagID); result.Error != nil {
		return nil, translateError(result.Error, "tag")
	}

	return &tag, nil
}

// SearchIngredients lists ingredients whose name starts with prefix, ignoring case.
func (r *Repository) SearchIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	query := r.DB.WithContext(ctx).Order("name")
	if len(prefix) > 0 {
		query = query.Where("name ILIKE ?", likeEscaper.Replace(prefix)+"%")
	}

	if result := query.Find(&ingredients); result.Error != nil {
		return nil, result.Error
	}

	return ingredients, nil
}

func (r *Repository) GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient

	if result := r.DB.WithContext(ctx).First(&ingredient, ingredientID); result.Error != nil {
		return nil, translateError(result.Error, "ingredient")
	}

	return &ingredient, nil
}

// AddIngredients inserts ingredients, skipping any (name, unit) already present.
// It returns the number of rows actually inserted.
func (r *Repository) AddIngredients(ctx context.Context, ingredients []model.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "measurement_unit"}},
		DoNothing: true,
	}).CreateInBatches(&ingredients, loadBatchSize)

	return result.RowsAffected, result.Error
}

// AddTags inserts tags, skipping slugs already present.
func (r *Repository) AddTags(ctx context.Context, tags []model.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).CreateInBatches(&tags, loadBatchSize)

	return result.RowsAffected, result.Error
}
