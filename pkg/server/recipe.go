package server

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/pkg/integrations"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

const maxRecipeNameLength = 200

type subscriptionLookup interface {
	SubscribedAuthorIDs(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error)
}

type RecipeServer struct {
	logger                 *zap.Logger
	config                 *configs.Config
	recipeRepository       repository.RecipeRepository
	subscriptionRepository subscriptionLookup
}

// RecipeQuery holds the listing filters accepted by ListRecipes.
type RecipeQuery struct {
	Tags             []string
	AuthorID         *uint
	IsFavorited      bool
	IsInShoppingCart bool
	Pagination       rest.Pagination
}

func NewRecipeServer(recipeRepo repository.RecipeRepository, subscriptionRepo subscriptionLookup, logger *zap.Logger, config *configs.Config) *RecipeServer {
	return &RecipeServer{recipeRepository: recipeRepo, subscriptionRepository: subscriptionRepo, logger: logger, config: config}
}

// ValidateRecipe applies the recipe write rules. Nothing is persisted when it fails.
func ValidateRecipe(request rest.RecipeWrite) error {
	if len(request.Name) == 0 || utf8.RuneCountInString(request.Name) > maxRecipeNameLength {
		return fmt.Errorf("%w: recipe name must be between 1 and %d characters", ErrInvalidInput, maxRecipeNameLength)
	}

	if len(request.Text) == 0 {
		return fmt.Errorf("%w: recipe text must not be empty", ErrInvalidInput)
	}

	if request.CookingTime < model.MinCookingTime {
		return fmt.Errorf("%w: cooking time must be at least %d minute", ErrInvalidInput, model.MinCookingTime)
	}

	if len(request.Tags) == 0 {
		return fmt.Errorf("%w: recipe must have at least one tag", ErrInvalidInput)
	}

	seenTags := make(map[uint]struct{}, len(request.Tags))
	for _, tagID := range request.Tags {
		if _, seen := seenTags[tagID]; seen {
			return fmt.Errorf("%w: tags must not repeat", ErrInvalidInput)
		}

		seenTags[tagID] = struct{}{}
	}

	if len(request.Ingredients) == 0 {
		return fmt.Errorf("%w: recipe must have at least one ingredient", ErrInvalidInput)
	}

	for _, ingredient := range request.Ingredients {
		if ingredient.Amount < model.MinAmount {
			return fmt.Errorf("%w: ingredient amount must be at least %d", ErrInvalidInput, model.MinAmount)
		}
	}

	seenIngredients := make(map[uint]struct{}, len(request.Ingredients))
	for _, ingredient := range request.Ingredients {
		if _, seen := seenIngredients[ingredient.ID]; seen {
			return fmt.Errorf("%w: ingredients must not repeat", ErrInvalidInput)
		}

		seenIngredients[ingredient.ID] = struct{}{}
	}

	return nil
}

func (r *RecipeServer) AddRecipe(ctx context.Context, request rest.RecipeWrite) (*rest.Recipe, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := ValidateRecipe(request); err != nil {
		return nil, err
	}

	recipe, tagIDs, ingredients := rest.RecipeToModel(request)
	recipe.AuthorID = user.ID

	saved, err := r.recipeRepository.AddRecipe(ctx, recipe, tagIDs, ingredients)
	if err != nil {
		return nil, translateRecipeError(err)
	}

	r.logger.Info("recipe created", zap.Uint("recipe_id", saved.ID), zap.Uint("author_id", user.ID))

	return r.readShape(ctx, user, saved)
}

// UpdateRecipe replaces the recipe's fields, tags and ingredients. Only the
// author or a superuser may do so.
func (r *RecipeServer) UpdateRecipe(ctx context.Context, recipeID uint, request rest.RecipeWrite) (*rest.Recipe, error) {
	user, err := r.authorizeChange(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := ValidateRecipe(request); err != nil {
		return nil, err
	}

	recipe, tagIDs, ingredients := rest.RecipeToModel(request)
	recipe.ID = recipeID

	saved, err := r.recipeRepository.UpdateRecipe(ctx, recipe, tagIDs, ingredients)
	if err != nil {
		return nil, translateRecipeError(err)
	}

	return r.readShape(ctx, user, saved)
}

func (r *RecipeServer) DeleteRecipe(ctx context.Context, recipeID uint) error {
	if _, err := r.authorizeChange(ctx, recipeID); err != nil {
		return err
	}

	return notFound(r.recipeRepository.DeleteRecipe(ctx, recipeID), "recipe %d", recipeID)
}

func (r *RecipeServer) authorizeChange(ctx context.Context, recipeID uint) (*model.User, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	recipe, err := r.recipeRepository.FindRecipe(ctx, recipeID)
	if err != nil {
		return nil, notFound(err, "recipe %d", recipeID)
	}

	if recipe.AuthorID != user.ID && !user.IsSuperuser {
		return nil, fmt.Errorf("%w: only the author can change recipe %d", ErrForbidden, recipeID)
	}

	return user, nil
}

func (r *RecipeServer) GetRecipe(ctx context.Context, recipeID uint) (*rest.Recipe, error) {
	recipe, err := r.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, notFound(err, "recipe %d", recipeID)
	}

	user, _ := currentUser(ctx)

	return r.readShape(ctx, user, recipe)
}

func (r *RecipeServer) ListRecipes(ctx context.Context, query RecipeQuery) ([]rest.Recipe, int64, error) {
	user, _ := currentUser(ctx)

	filter := model.RecipeFilter{
		Tags:     query.Tags,
		AuthorID: query.AuthorID,
		Limit:    query.Pagination.Limit,
		Offset:   query.Pagination.Offset(),
	}

	if query.IsFavorited || query.IsInShoppingCart {
		if user == nil {
			return []rest.Recipe{}, 0, nil
		}

		if query.IsFavorited {
			filter.FavoritedBy = &user.ID
		}

		if query.IsInShoppingCart {
			filter.InShoppingCartOf = &user.ID
		}
	}

	recipes, count, err := r.recipeRepository.GetRecipes(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	results, err := r.decorate(ctx, user, recipes)
	if err != nil {
		return nil, 0, err
	}

	return results, count, nil
}

func (r *RecipeServer) AddFavorite(ctx context.Context, recipeID uint) (*rest.RecipeShort, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	recipe, err := r.recipeRepository.FindRecipe(ctx, recipeID)
	if err != nil {
		return nil, notFound(err, "recipe %d", recipeID)
	}

	if err := r.recipeRepository.AddFavorite(ctx, user.ID, recipeID); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: recipe %d is already in favorites", ErrConflict, recipeID)
		}

		return nil, err
	}

	short := rest.RecipeShortFromModel(*recipe)

	return &short, nil
}

func (r *RecipeServer) DeleteFavorite(ctx context.Context, recipeID uint) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	if _, err := r.recipeRepository.FindRecipe(ctx, recipeID); err != nil {
		return notFound(err, "recipe %d", recipeID)
	}

	err = r.recipeRepository.DeleteFavorite(ctx, user.ID, recipeID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: recipe %d is not in favorites: %w", ErrInvalidOperation, recipeID, err)
	}

	return err
}

// ImportRecipe asks each configured integration for a draft of the recipe at
// pageURL and returns the first one found.
func (r *RecipeServer) ImportRecipe(_ context.Context, pageURL string) (*rest.RecipeDraft, error) {
	if len(pageURL) == 0 {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	var errs error

	for _, name := range r.config.Integrations.Recipe {
		integration := integrations.GetIntegration(name, r.logger)
		if integration == nil {
			r.logger.Warn("unknown recipe integration", zap.String("integration", name))

			continue
		}

		imported, err := integration.FindRecipe(pageURL)
		if err != nil {
			r.logger.Error("failed recipe import", zap.String("integration", name), zap.Error(err))
			errs = multierr.Append(errs, err)

			continue
		}

		return &rest.RecipeDraft{
			Name:        imported.Name,
			Text:        imported.Text,
			Image:       imported.Image,
			CookingTime: imported.CookingTime,
			Ingredients: imported.Ingredients,
			Source:      imported.Source,
		}, nil
	}

	if errs == nil {
		return nil, fmt.Errorf("%w: no recipe integration configured", ErrInvalidInput)
	}

	return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
}

func (r *RecipeServer) readShape(ctx context.Context, user *model.User, recipe *model.Recipe) (*rest.Recipe, error) {
	results, err := r.decorate(ctx, user, []*model.Recipe{recipe})
	if err != nil {
		return nil, err
	}

	return &results[0], nil
}

// decorate converts recipes to the read shape, filling in the flags relative
// to user. All flags are false for anonymous requests.
func (r *RecipeServer) decorate(ctx context.Context, user *model.User, recipes []*model.Recipe) ([]rest.Recipe, error) {
	results := make([]rest.Recipe, 0, len(recipes))

	var (
		favorited  = map[uint]bool{}
		inCart     = map[uint]bool{}
		subscribed = map[uint]bool{}
	)

	if user != nil && len(recipes) > 0 {
		recipeIDs := make([]uint, 0, len(recipes))
		authorIDs := make([]uint, 0, len(recipes))

		for _, recipe := range recipes {
			recipeIDs = append(recipeIDs, recipe.ID)
			authorIDs = append(authorIDs, recipe.AuthorID)
		}

		var err error

		if favorited, err = r.recipeRepository.FavoritedRecipeIDs(ctx, user.ID, recipeIDs); err != nil {
			return nil, err
		}

		if inCart, err = r.recipeRepository.CartRecipeIDs(ctx, user.ID, recipeIDs); err != nil {
			return nil, err
		}

		if subscribed, err = r.subscriptionRepository.SubscribedAuthorIDs(ctx, user.ID, authorIDs); err != nil {
			return nil, err
		}
	}

	for _, recipe := range recipes {
		results = append(results, rest.RecipeFromModel(*recipe, rest.RecipeFlags{
			Favorited:        favorited[recipe.ID],
			InShoppingCart:   inCart[recipe.ID],
			AuthorSubscribed: subscribed[recipe.AuthorID],
		}))
	}

	return results, nil
}

func translateRecipeError(err error) error {
	switch {
	case errors.Is(err, repository.ErrTagNotFound):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, repository.ErrIngredientNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return notFound(err, "recipe")
	}
}
