package server_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/mocks"
	"github.com/DominusMortem/foodgram-project-react/pkg/auth"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
	"github.com/DominusMortem/foodgram-project-react/pkg/server"
	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

type RecipeTestSuite struct {
	suite.Suite
	recipeRepo   *mocks.RecipeRepository
	userRepo     *mocks.UserRepository
	service      *server.RecipeServer
	observedLogs *observer.ObservedLogs
	user         *model.User
	ctx          context.Context
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}

func (suite *RecipeTestSuite) SetupTest() {
	suite.recipeRepo = mocks.NewRecipeRepository(suite.T())
	suite.userRepo = mocks.NewUserRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	observedLogger := zap.New(observedZapCore)
	config := &configs.Config{Integrations: configs.Integrations{Recipe: []string{"unknown"}}}
	suite.service = server.NewRecipeServer(suite.recipeRepo, suite.userRepo, observedLogger, config)
	suite.user = &model.User{Model: gorm.Model{ID: 1}, Email: "cook@example.com"}
	suite.ctx = auth.WithUser(context.Background(), suite.user)
}

func validRecipe() rest.RecipeWrite {
	return rest.RecipeWrite{
		Ingredients: []rest.IngredientAmount{{ID: 1, Amount: 2}, {ID: 2, Amount: 300}},
		Tags:        []uint{1, 2},
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		CookingTime: 20,
	}
}

func (suite *RecipeTestSuite) TestValidateRecipe() {
	tests := []struct {
		name    string
		modify  func(r *rest.RecipeWrite)
		message string
	}{
		{"empty ingredients", func(r *rest.RecipeWrite) { r.Ingredients = nil }, "at least one ingredient"},
		{"empty tags", func(r *rest.RecipeWrite) { r.Tags = []uint{} }, "at least one tag"},
		{"repeated tag", func(r *rest.RecipeWrite) { r.Tags = []uint{3, 3} }, "tags must not repeat"},
		{"zero amount", func(r *rest.RecipeWrite) { r.Ingredients[1].Amount = 0 }, "amount must be at least 1"},
		{"repeated ingredient", func(r *rest.RecipeWrite) { r.Ingredients[1].ID = 1 }, "ingredients must not repeat"},
		{"zero cooking time", func(r *rest.RecipeWrite) { r.CookingTime = 0 }, "cooking time"},
		{"long name", func(r *rest.RecipeWrite) { r.Name = strings.Repeat("щ", 201) }, "recipe name"},
		{"empty text", func(r *rest.RecipeWrite) { r.Text = "" }, "recipe text"},
	}

	for _, test := range tests {
		suite.Run(test.name, func() {
			request := validRecipe()
			test.modify(&request)
			err := server.ValidateRecipe(request)
			suite.Require().ErrorIs(err, server.ErrInvalidInput)
			suite.Require().ErrorContains(err, test.message)
		})
	}

	request := validRecipe()
	request.Name = strings.Repeat("щ", 200)
	suite.Require().NoError(server.ValidateRecipe(request))
}

func (suite *RecipeTestSuite) TestAddRecipe_Unauthenticated() {
	recipe, err := suite.service.AddRecipe(context.Background(), validRecipe())
	suite.Require().ErrorIs(err, server.ErrUnauthenticated)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestAddRecipe_InvalidIsNotPersisted() {
	request := validRecipe()
	request.Ingredients = nil

	recipe, err := suite.service.AddRecipe(suite.ctx, request)
	suite.Require().ErrorIs(err, server.ErrInvalidInput)
	suite.Nil(recipe)
	suite.recipeRepo.AssertNotCalled(suite.T(), "AddRecipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecipeTestSuite) TestAddRecipe_Success() {
	amounts := []model.IngredientAmount{{IngredientID: 1, Amount: 2}, {IngredientID: 2, Amount: 300}}
	saved := &model.Recipe{
		ID:          10,
		AuthorID:    1,
		Author:      *suite.user,
		Name:        "Pancakes",
		CookingTime: 20,
		Tags:        []model.Tag{{Model: gorm.Model{ID: 1}, Slug: "breakfast"}},
		Ingredients: []model.QuantifiedIngredient{{ID: 5, Amount: 2, Ingredient: model.Ingredient{Model: gorm.Model{ID: 1}, Name: "Egg", MeasurementUnit: "pcs"}}},
	}

	suite.recipeRepo.EXPECT().AddRecipe(suite.ctx, mock.MatchedBy(func(r model.Recipe) bool {
		return r.AuthorID == 1 && r.Name == "Pancakes"
	}), []uint{1, 2}, amounts).Return(saved, nil)
	suite.recipeRepo.EXPECT().FavoritedRecipeIDs(suite.ctx, uint(1), []uint{10}).Return(map[uint]bool{}, nil)
	suite.recipeRepo.EXPECT().CartRecipeIDs(suite.ctx, uint(1), []uint{10}).Return(map[uint]bool{}, nil)
	suite.userRepo.EXPECT().SubscribedAuthorIDs(suite.ctx, uint(1), []uint{1}).Return(map[uint]bool{}, nil)

	recipe, err := suite.service.AddRecipe(suite.ctx, validRecipe())
	suite.Require().NoError(err)
	suite.Equal(uint(10), recipe.ID)
	suite.Equal("cook@example.com", recipe.Author.Email)
	suite.Require().Len(recipe.Ingredients, 1)
	suite.Equal(rest.RecipeIngredient{ID: 1, Name: "Egg", MeasurementUnit: "pcs", Amount: 2}, recipe.Ingredients[0])
	suite.False(recipe.IsFavorited)
	suite.Equal(1, suite.observedLogs.FilterMessage("recipe created").Len())
}

func (suite *RecipeTestSuite) TestAddRecipe_UnknownTag() {
	suite.recipeRepo.EXPECT().AddRecipe(suite.ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, repository.ErrTagNotFound)

	recipe, err := suite.service.AddRecipe(suite.ctx, validRecipe())
	suite.Require().ErrorIs(err, server.ErrInvalidInput)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestAddRecipe_UnknownIngredient() {
	suite.recipeRepo.EXPECT().AddRecipe(suite.ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, repository.ErrIngredientNotFound)

	recipe, err := suite.service.AddRecipe(suite.ctx, validRecipe())
	suite.Require().ErrorIs(err, server.ErrNotFound)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestUpdateRecipe_NotAuthor() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(7)).Return(&model.Recipe{ID: 7, AuthorID: 2}, nil)

	recipe, err := suite.service.UpdateRecipe(suite.ctx, 7, validRecipe())
	suite.Require().ErrorIs(err, server.ErrForbidden)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestUpdateRecipe_Superuser() {
	admin := &model.User{Model: gorm.Model{ID: 3}, IsSuperuser: true}
	ctx := auth.WithUser(context.Background(), admin)
	updated := &model.Recipe{ID: 7, AuthorID: 2, Name: "Pancakes"}

	suite.recipeRepo.EXPECT().FindRecipe(ctx, uint(7)).Return(&model.Recipe{ID: 7, AuthorID: 2}, nil)
	suite.recipeRepo.EXPECT().UpdateRecipe(ctx, mock.MatchedBy(func(r model.Recipe) bool { return r.ID == 7 }), []uint{1, 2}, mock.Anything).Return(updated, nil)
	suite.recipeRepo.EXPECT().FavoritedRecipeIDs(ctx, uint(3), []uint{7}).Return(map[uint]bool{7: true}, nil)
	suite.recipeRepo.EXPECT().CartRecipeIDs(ctx, uint(3), []uint{7}).Return(map[uint]bool{}, nil)
	suite.userRepo.EXPECT().SubscribedAuthorIDs(ctx, uint(3), []uint{2}).Return(map[uint]bool{2: true}, nil)

	recipe, err := suite.service.UpdateRecipe(ctx, 7, validRecipe())
	suite.Require().NoError(err)
	suite.True(recipe.IsFavorited)
	suite.True(recipe.Author.IsSubscribed)
	suite.False(recipe.IsInShoppingCart)
}

func (suite *RecipeTestSuite) TestDeleteRecipe_NotFound() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(9)).Return(nil, repository.ErrNotFound)

	err := suite.service.DeleteRecipe(suite.ctx, 9)
	suite.Require().ErrorIs(err, server.ErrNotFound)
}

func (suite *RecipeTestSuite) TestDeleteRecipe_Success() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(9)).Return(&model.Recipe{ID: 9, AuthorID: 1}, nil)
	suite.recipeRepo.EXPECT().DeleteRecipe(suite.ctx, uint(9)).Return(nil)

	suite.Require().NoError(suite.service.DeleteRecipe(suite.ctx, 9))
}

func (suite *RecipeTestSuite) TestGetRecipe_Anonymous() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(4)).Return(&model.Recipe{ID: 4, AuthorID: 2}, nil)

	recipe, err := suite.service.GetRecipe(ctx, 4)
	suite.Require().NoError(err)
	suite.False(recipe.IsFavorited)
	suite.False(recipe.IsInShoppingCart)
	suite.False(recipe.Author.IsSubscribed)
	suite.NotNil(recipe.Tags)
}

func (suite *RecipeTestSuite) TestListRecipes_AnonymousFavoritesAreEmpty() {
	results, count, err := suite.service.ListRecipes(context.Background(), server.RecipeQuery{
		IsFavorited: true,
		Pagination:  rest.Pagination{Page: 1, Limit: 6},
	})
	suite.Require().NoError(err)
	suite.Empty(results)
	suite.Zero(count)
}

func (suite *RecipeTestSuite) TestListRecipes_Filters() {
	author := uint(2)
	filter := model.RecipeFilter{
		Tags:             []string{"breakfast", "lunch"},
		AuthorID:         &author,
		InShoppingCartOf: &suite.user.ID,
		Limit:            6,
		Offset:           6,
	}
	recipes := []*model.Recipe{{ID: 8, AuthorID: 2}, {ID: 5, AuthorID: 2}}

	suite.recipeRepo.EXPECT().GetRecipes(suite.ctx, filter).Return(recipes, int64(8), nil)
	suite.recipeRepo.EXPECT().FavoritedRecipeIDs(suite.ctx, uint(1), []uint{8, 5}).Return(map[uint]bool{5: true}, nil)
	suite.recipeRepo.EXPECT().CartRecipeIDs(suite.ctx, uint(1), []uint{8, 5}).Return(map[uint]bool{8: true, 5: true}, nil)
	suite.userRepo.EXPECT().SubscribedAuthorIDs(suite.ctx, uint(1), []uint{2, 2}).Return(map[uint]bool{}, nil)

	results, count, err := suite.service.ListRecipes(suite.ctx, server.RecipeQuery{
		Tags:             []string{"breakfast", "lunch"},
		AuthorID:         &author,
		IsInShoppingCart: true,
		Pagination:       rest.Pagination{Page: 2, Limit: 6},
	})
	suite.Require().NoError(err)
	suite.Equal(int64(8), count)
	suite.Require().Len(results, 2)
	suite.False(results[0].IsFavorited)
	suite.True(results[1].IsFavorited)
	suite.True(results[0].IsInShoppingCart)
}

func (suite *RecipeTestSuite) TestAddFavorite_Duplicate() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(3)).Return(&model.Recipe{ID: 3}, nil)
	suite.recipeRepo.EXPECT().AddFavorite(suite.ctx, uint(1), uint(3)).Return(repository.ErrAlreadyExists)

	short, err := suite.service.AddFavorite(suite.ctx, 3)
	suite.Require().ErrorIs(err, server.ErrConflict)
	suite.Nil(short)
}

func (suite *RecipeTestSuite) TestAddFavorite_MissingRecipe() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(3)).Return(nil, repository.ErrNotFound)

	short, err := suite.service.AddFavorite(suite.ctx, 3)
	suite.Require().ErrorIs(err, server.ErrNotFound)
	suite.Nil(short)
}

func (suite *RecipeTestSuite) TestAddFavorite_Success() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(3)).Return(&model.Recipe{ID: 3, Name: "Soup", CookingTime: 40}, nil)
	suite.recipeRepo.EXPECT().AddFavorite(suite.ctx, uint(1), uint(3)).Return(nil)

	short, err := suite.service.AddFavorite(suite.ctx, 3)
	suite.Require().NoError(err)
	suite.Equal(rest.RecipeShort{ID: 3, Name: "Soup", CookingTime: 40}, *short)
}

func (suite *RecipeTestSuite) TestDeleteFavorite_NotFavorited() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(3)).Return(&model.Recipe{ID: 3}, nil)
	suite.recipeRepo.EXPECT().DeleteFavorite(suite.ctx, uint(1), uint(3)).Return(repository.ErrNotFound)

	err := suite.service.DeleteFavorite(suite.ctx, 3)
	suite.Require().ErrorIs(err, server.ErrInvalidOperation)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.Require().NotErrorIs(err, server.ErrNotFound)
	suite.Require().ErrorContains(err, "not in favorites")
}

func (suite *RecipeTestSuite) TestImportRecipe_NoIntegration() {
	draft, err := suite.service.ImportRecipe(suite.ctx, "https://example.com/recipe")
	suite.Require().ErrorIs(err, server.ErrInvalidInput)
	suite.Nil(draft)
	suite.Equal(1, suite.observedLogs.FilterMessage("unknown recipe integration").Len())
}
