package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

const shoppingListCaption = "Shopping list:"

type recipeFinder interface {
	FindRecipe(ctx context.Context, recipeID uint) (*model.Recipe, error)
}

type CartServer struct {
	logger           *zap.Logger
	config           *configs.Config
	cartRepository   repository.CartRepository
	recipeRepository recipeFinder
}

func NewCartServer(cartRepo repository.CartRepository, recipeRepo recipeFinder, logger *zap.Logger, config *configs.Config) *CartServer {
	return &CartServer{cartRepository: cartRepo, recipeRepository: recipeRepo, logger: logger, config: config}
}

// AddToCart puts a recipe into the requester's shopping cart, creating the cart on first use.
func (c *CartServer) AddToCart(ctx context.Context, recipeID uint) (*rest.RecipeShort, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	recipe, err := c.recipeRepository.FindRecipe(ctx, recipeID)
	if err != nil {
		return nil, notFound(err, "recipe %d", recipeID)
	}

	cart, err := c.cartRepository.GetOrCreateCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := c.cartRepository.AddRecipeToCart(ctx, cart.ID, recipeID); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: recipe %d is already in the shopping cart", ErrConflict, recipeID)
		}

		return nil, err
	}

	short := rest.RecipeShortFromModel(*recipe)

	return &short, nil
}

func (c *CartServer) RemoveFromCart(ctx context.Context, recipeID uint) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	if _, err := c.recipeRepository.FindRecipe(ctx, recipeID); err != nil {
		return notFound(err, "recipe %d", recipeID)
	}

	cart, err := c.cartRepository.GetCart(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: shopping cart is empty", ErrInvalidOperation)
		}

		return err
	}

	err = c.cartRepository.RemoveRecipeFromCart(ctx, cart.ID, recipeID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: recipe %d is not in the shopping cart", ErrInvalidOperation, recipeID)
	}

	return err
}

// ExportShoppingList aggregates the ingredients of every recipe in the cart
// and renders them as a plain text list.
func (c *CartServer) ExportShoppingList(ctx context.Context) (string, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return "", err
	}

	cart, err := c.cartRepository.GetCart(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("%w: shopping cart is empty", ErrInvalidOperation)
		}

		return "", err
	}

	items, err := c.cartRepository.GetShoppingList(ctx, cart.ID)
	if err != nil {
		return "", err
	}

	if len(items) == 0 {
		return "", fmt.Errorf("%w: shopping cart is empty", ErrInvalidOperation)
	}

	c.logger.Debug("shopping list exported", zap.Uint("user_id", user.ID), zap.Int("items", len(items)))

	return RenderShoppingList(items), nil
}

func RenderShoppingList(items []*model.ShoppingListItem) string {
	var builder strings.Builder

	builder.WriteString(shoppingListCaption + "\r\n")

	for i, item := range items {
		fmt.Fprintf(&builder, "%d) %s — %d %s\r\n", i+1, item.Name, item.Total, item.MeasurementUnit)
	}

	return builder.String()
}
