package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/DominusMortem/foodgram-project-react/mocks"
	"github.com/DominusMortem/foodgram-project-react/pkg/auth"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
	"github.com/DominusMortem/foodgram-project-react/pkg/server"
)

type CartTestSuite struct {
	suite.Suite
	cartRepo   *mocks.CartRepository
	recipeRepo *mocks.RecipeRepository
	service    *server.CartServer
	ctx        context.Context
}

func TestCartTestSuite(t *testing.T) {
	suite.Run(t, new(CartTestSuite))
}

func (suite *CartTestSuite) SetupTest() {
	suite.cartRepo = mocks.NewCartRepository(suite.T())
	suite.recipeRepo = mocks.NewRecipeRepository(suite.T())
	suite.service = server.NewCartServer(suite.cartRepo, suite.recipeRepo, zaptest.NewLogger(suite.T()), nil)
	suite.ctx = auth.WithUser(context.Background(), &model.User{Model: gorm.Model{ID: 1}})
}

func (suite *CartTestSuite) TestAddToCart_CreatesCart() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(2)).Return(&model.Recipe{ID: 2, Name: "Bread"}, nil)
	suite.cartRepo.EXPECT().GetOrCreateCart(suite.ctx, uint(1)).Return(&model.ShoppingCart{ID: 4, UserID: 1}, nil)
	suite.cartRepo.EXPECT().AddRecipeToCart(suite.ctx, uint(4), uint(2)).Return(nil)

	short, err := suite.service.AddToCart(suite.ctx, 2)
	suite.Require().NoError(err)
	suite.Equal("Bread", short.Name)
}

func (suite *CartTestSuite) TestAddToCart_Duplicate() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(2)).Return(&model.Recipe{ID: 2}, nil)
	suite.cartRepo.EXPECT().GetOrCreateCart(suite.ctx, uint(1)).Return(&model.ShoppingCart{ID: 4, UserID: 1}, nil)
	suite.cartRepo.EXPECT().AddRecipeToCart(suite.ctx, uint(4), uint(2)).Return(repository.ErrAlreadyExists)

	short, err := suite.service.AddToCart(suite.ctx, 2)
	suite.Require().ErrorIs(err, server.ErrConflict)
	suite.Nil(short)
}

func (suite *CartTestSuite) TestAddToCart_MissingRecipe() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(2)).Return(nil, repository.ErrNotFound)

	short, err := suite.service.AddToCart(suite.ctx, 2)
	suite.Require().ErrorIs(err, server.ErrNotFound)
	suite.Nil(short)
}

func (suite *CartTestSuite) TestRemoveFromCart_NotInCart() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(2)).Return(&model.Recipe{ID: 2}, nil)
	suite.cartRepo.EXPECT().GetCart(suite.ctx, uint(1)).Return(&model.ShoppingCart{ID: 4, UserID: 1}, nil)
	suite.cartRepo.EXPECT().RemoveRecipeFromCart(suite.ctx, uint(4), uint(2)).Return(repository.ErrNotFound)

	err := suite.service.RemoveFromCart(suite.ctx, 2)
	suite.Require().ErrorIs(err, server.ErrInvalidOperation)
}

func (suite *CartTestSuite) TestRemoveFromCart_NoCart() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(2)).Return(&model.Recipe{ID: 2}, nil)
	suite.cartRepo.EXPECT().GetCart(suite.ctx, uint(1)).Return(nil, repository.ErrNotFound)

	err := suite.service.RemoveFromCart(suite.ctx, 2)
	suite.Require().ErrorIs(err, server.ErrInvalidOperation)
}

func (suite *CartTestSuite) TestRemoveFromCart_Success() {
	suite.recipeRepo.EXPECT().FindRecipe(suite.ctx, uint(2)).Return(&model.Recipe{ID: 2}, nil)
	suite.cartRepo.EXPECT().GetCart(suite.ctx, uint(1)).Return(&model.ShoppingCart{ID: 4, UserID: 1}, nil)
	suite.cartRepo.EXPECT().RemoveRecipeFromCart(suite.ctx, uint(4), uint(2)).Return(nil)

	suite.Require().NoError(suite.service.RemoveFromCart(suite.ctx, 2))
}

func (suite *CartTestSuite) TestExportShoppingList_NoCart() {
	suite.cartRepo.EXPECT().GetCart(suite.ctx, uint(1)).Return(nil, repository.ErrNotFound)

	list, err := suite.service.ExportShoppingList(suite.ctx)
	suite.Require().ErrorIs(err, server.ErrInvalidOperation)
	suite.Empty(list)
}

func (suite *CartTestSuite) TestExportShoppingList_EmptyCart() {
	suite.cartRepo.EXPECT().GetCart(suite.ctx, uint(1)).Return(&model.ShoppingCart{ID: 4, UserID: 1}, nil)
	suite.cartRepo.EXPECT().GetShoppingList(suite.ctx, uint(4)).Return([]*model.ShoppingListItem{}, nil)

	list, err := suite.service.ExportShoppingList(suite.ctx)
	suite.Require().ErrorIs(err, server.ErrInvalidOperation)
	suite.Empty(list)
}

func (suite *CartTestSuite) TestExportShoppingList_SumsAmounts() {
	suite.cartRepo.EXPECT().GetCart(suite.ctx, uint(1)).Return(&model.ShoppingCart{ID: 4, UserID: 1}, nil)
	suite.cartRepo.EXPECT().GetShoppingList(suite.ctx, uint(4)).Return([]*model.ShoppingListItem{
		{Name: "Flour", MeasurementUnit: "g", Total: 500},
		{Name: "Milk", MeasurementUnit: "ml", Total: 250},
	}, nil)

	list, err := suite.service.ExportShoppingList(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("Shopping list:\r\n1) Flour — 500 g\r\n2) Milk — 250 ml\r\n", list)
}

func (suite *CartTestSuite) TestRenderShoppingList_Empty() {
	suite.Equal("Shopping list:\r\n", server.RenderShoppingList(nil))
}
