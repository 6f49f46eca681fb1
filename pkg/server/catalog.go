package server

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

type CatalogRepository interface {
	GetTags(ctx context.Context) ([]*model.Tag, error)
	GetTagByID(ctx context.Context, tagID uint) (*model.Tag, error)
	SearchIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error)
	GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error)
}

// CatalogServer serves the read-only tag and ingredient reference data.
type CatalogServer struct {
	logger     *zap.Logger
	repository CatalogRepository
}

func NewCatalogServer(repo CatalogRepository, logger *zap.Logger) *CatalogServer {
	return &CatalogServer{repository: repo, logger: logger}
}

func (c *CatalogServer) ListTags(ctx context.Context) ([]rest.Tag, error) {
	tags, err := c.repository.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	return rest.TagsFromModel(tags), nil
}

func (c *CatalogServer) GetTag(ctx context.Context, tagID uint) (*rest.Tag, error) {
	tag, err := c.repository.GetTagByID(ctx, tagID)
	if err != nil {
		return nil, notFound(err, "tag %d", tagID)
	}

	restTag := rest.TagFromModel(*tag)

	return &restTag, nil
}

// SearchIngredients matches ingredient names by case-insensitive prefix. An
// empty search returns the whole catalog.
func (c *CatalogServer) SearchIngredients(ctx context.Context, search string) ([]rest.Ingredient, error) {
	ingredients, err := c.repository.SearchIngredients(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	return rest.IngredientsFromModel(ingredients), nil
}

func (c *CatalogServer) GetIngredient(ctx context.Context, ingredientID uint) (*rest.Ingredient, error) {
	ingredient, err := c.repository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		return nil, notFound(err, "ingredient %d", ingredientID)
	}

	restIngredient := rest.IngredientFromModel(*ingredient)

	return &restIngredient, nil
}
