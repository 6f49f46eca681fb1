package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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
	"github.com/DominusMortem/foodgram-project-react/pkg/router"
	"github.com/DominusMortem/foodgram-project-react/pkg/server"
	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

type RouterTestSuite struct {
	suite.Suite
	recipeRepo   *mocks.RecipeRepository
	cartRepo     *mocks.CartRepository
	userRepo     *mocks.UserRepository
	catalogRepo  *mocks.CatalogRepository
	tokenRepo    *mocks.TokenRepository
	engine       *gin.Engine
	observedLogs *observer.ObservedLogs
	user         *model.User
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (suite *RouterTestSuite) SetupTest() {
	suite.recipeRepo = mocks.NewRecipeRepository(suite.T())
	suite.cartRepo = mocks.NewCartRepository(suite.T())
	suite.userRepo = mocks.NewUserRepository(suite.T())
	suite.catalogRepo = mocks.NewCatalogRepository(suite.T())
	suite.tokenRepo = mocks.NewTokenRepository(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	conf := &configs.Config{
		Server: configs.Server{BasePath: "/api", PageSize: 6},
		Auth:   configs.Auth{SecretKey: "secret", TokenTTL: time.Hour},
	}

	hash, err := auth.HashPassword("password")
	suite.Require().NoError(err)

	suite.user = &model.User{Model: gorm.Model{ID: 1}, Email: "cook@example.com", Password: hash}

	suite.engine = router.New(conf, router.Services{
		Recipes: server.NewRecipeServer(suite.recipeRepo, suite.userRepo, logger, conf),
		Carts:   server.NewCartServer(suite.cartRepo, suite.recipeRepo, logger, conf),
		Users:   server.NewUserServer(suite.userRepo, suite.recipeRepo, logger, conf),
		Catalog: server.NewCatalogServer(suite.catalogRepo, logger),
		Auth:    auth.NewAuthManager(conf, suite.tokenRepo, logger),
	}, logger)
}

func (suite *RouterTestSuite) serve(method string, target string, body string, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if len(body) > 0 {
		request.Header.Set("Content-Type", "application/json")
	}

	if len(token) > 0 {
		request.Header.Set("Authorization", "Token "+token)
	}

	recorder := httptest.NewRecorder()
	suite.engine.ServeHTTP(recorder, request)

	return recorder
}

// login issues a real token for suite.user and makes it resolvable.
func (suite *RouterTestSuite) login() string {
	var key uuid.UUID

	suite.tokenRepo.EXPECT().GetUserFromEmail(mock.Anything, "cook@example.com").Return(suite.user, nil).Once()
	suite.tokenRepo.EXPECT().AddAuthToken(mock.Anything, mock.Anything).
		Run(func(_ context.Context, token model.AuthToken) { key = token.Key }).
		Return(nil).Once()

	response := suite.serve(http.MethodPost, "/api/auth/token/login/", `{"email":"cook@example.com","password":"password"}`, "")
	suite.Require().Equal(http.StatusOK, response.Code)

	var token rest.Token
	suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &token))
	suite.Require().NotEmpty(token.AuthToken)

	suite.tokenRepo.EXPECT().GetAuthToken(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, requested uuid.UUID) (*model.AuthToken, error) {
			if requested != key {
				return nil, repository.ErrNotFound
			}

			return &model.AuthToken{Key: key, UserID: suite.user.ID, User: *suite.user}, nil
		}).Maybe()

	return token.AuthToken
}

func (suite *RouterTestSuite) TestListTags() {
	suite.catalogRepo.EXPECT().GetTags(mock.Anything).Return([]*model.Tag{
		{Model: gorm.Model{ID: 1}, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
	}, nil)

	response := suite.serve(http.MethodGet, "/api/tags/", "", "")

	suite.Equal(http.StatusOK, response.Code)
	suite.JSONEq(`[{"id":1,"name":"Breakfast","color":"#E26C2D","slug":"breakfast"}]`, response.Body.String())
	suite.Equal(1, suite.observedLogs.FilterMessage("request").Len())
}

func (suite *RouterTestSuite) TestListRecipes_Paginated() {
	recipes := make([]*model.Recipe, 0, 6)
	for id := uint(7); id > 1; id-- {
		recipes = append(recipes, &model.Recipe{ID: id, AuthorID: 2})
	}

	suite.recipeRepo.EXPECT().GetRecipes(mock.Anything, mock.MatchedBy(func(filter model.RecipeFilter) bool {
		return filter.Limit == 6 && filter.Offset == 0 && len(filter.Tags) == 1 && filter.Tags[0] == "lunch"
	})).Return(recipes, int64(7), nil)

	response := suite.serve(http.MethodGet, "/api/recipes/?tags=lunch", "", "")
	suite.Require().Equal(http.StatusOK, response.Code)

	var page rest.Page[rest.Recipe]
	suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &page))
	suite.Equal(int64(7), page.Count)
	suite.Len(page.Results, 6)
	suite.Nil(page.Previous)
	suite.Require().NotNil(page.Next)
	suite.Equal("http://example.com/api/recipes/?page=2&tags=lunch", *page.Next)
}

func (suite *RouterTestSuite) TestCreateRecipe_Anonymous() {
	response := suite.serve(http.MethodPost, "/api/recipes/", `{"name":"Soup"}`, "")

	suite.Equal(http.StatusUnauthorized, response.Code)
}

func (suite *RouterTestSuite) TestCreateRecipe_ValidationFields() {
	token := suite.login()

	response := suite.serve(http.MethodPost, "/api/recipes/", `{"text":"Boil.","tags":[1]}`, token)

	suite.Require().Equal(http.StatusBadRequest, response.Code)

	var body rest.Error
	suite.Require().NoError(json.Unmarshal(response.Body.Bytes(), &body))
	suite.Contains(body.Fields, "name")
}

func (suite *RouterTestSuite) TestCreateRecipe_EmptyIngredients() {
	token := suite.login()

	response := suite.serve(http.MethodPost, "/api/recipes/",
		`{"name":"Soup","text":"Boil.","tags":[1],"ingredients":[],"cooking_time":10}`, token)

	suite.Require().Equal(http.StatusBadRequest, response.Code)
	suite.Contains(response.Body.String(), "at least one ingredient")
}

func (suite *RouterTestSuite) TestRecipeItem_ShapeFollowsMethod() {
	token := suite.login()
	suite.recipeRepo.EXPECT().GetRecipeByID(mock.Anything, uint(5)).
		Return(&model.Recipe{ID: 5, Name: "Soup", AuthorID: 2, Author: model.User{Model: gorm.Model{ID: 2}}}, nil)
	suite.recipeRepo.EXPECT().FavoritedRecipeIDs(mock.Anything, uint(1), []uint{5}).Return(map[uint]bool{5: true}, nil)
	suite.recipeRepo.EXPECT().CartRecipeIDs(mock.Anything, uint(1), []uint{5}).Return(map[uint]bool{}, nil)
	suite.userRepo.EXPECT().SubscribedAuthorIDs(mock.Anything, uint(1), []uint{2}).Return(map[uint]bool{}, nil)

	read := suite.serve(http.MethodGet, "/api/recipes/5/", "", token)

	suite.Require().Equal(http.StatusOK, read.Code)
	suite.Contains(read.Body.String(), `"is_favorited":true`)

	write := suite.serve(http.MethodPatch, "/api/recipes/5/", `{"name":"Soup","tags":[1]}`, token)

	suite.Require().Equal(http.StatusBadRequest, write.Code)

	var body rest.Error
	suite.Require().NoError(json.Unmarshal(write.Body.Bytes(), &body))
	suite.Contains(body.Fields, "text")
}

func (suite *RouterTestSuite) TestInvalidToken() {
	response := suite.serve(http.MethodGet, "/api/tags/", "", "not-a-jwt")

	suite.Equal(http.StatusUnauthorized, response.Code)
}

func (suite *RouterTestSuite) TestLogin_WrongPassword() {
	suite.tokenRepo.EXPECT().GetUserFromEmail(mock.Anything, "cook@example.com").Return(suite.user, nil)

	response := suite.serve(http.MethodPost, "/api/auth/token/login/", `{"email":"cook@example.com","password":"wrong"}`, "")

	suite.Equal(http.StatusBadRequest, response.Code)
}

func (suite *RouterTestSuite) TestLogout() {
	token := suite.login()
	suite.tokenRepo.EXPECT().DeleteAuthToken(mock.Anything, mock.Anything).Return(nil)

	response := suite.serve(http.MethodPost, "/api/auth/token/logout/", "", token)

	suite.Equal(http.StatusNoContent, response.Code)
}

func (suite *RouterTestSuite) TestDownloadShoppingCart() {
	token := suite.login()
	suite.cartRepo.EXPECT().GetCart(mock.Anything, uint(1)).Return(&model.ShoppingCart{ID: 3, UserID: 1}, nil)
	suite.cartRepo.EXPECT().GetShoppingList(mock.Anything, uint(3)).Return([]*model.ShoppingListItem{
		{Name: "Flour", MeasurementUnit: "g", Total: 500},
	}, nil)

	response := suite.serve(http.MethodGet, "/api/recipes/download_shopping_cart/", "", token)

	suite.Require().Equal(http.StatusOK, response.Code)
	suite.Equal("text/plain; charset=utf-8", response.Header().Get("Content-Type"))
	suite.Equal("attachment; filename=shopping_cart.txt", response.Header().Get("Content-Disposition"))
	suite.Equal("Shopping list:\r\n1) Flour — 500 g\r\n", response.Body.String())
}

func (suite *RouterTestSuite) TestDownloadShoppingCart_NoCart() {
	token := suite.login()
	suite.cartRepo.EXPECT().GetCart(mock.Anything, uint(1)).Return(nil, repository.ErrNotFound)

	response := suite.serve(http.MethodGet, "/api/recipes/download_shopping_cart/", "", token)

	suite.Equal(http.StatusBadRequest, response.Code)
}

func (suite *RouterTestSuite) TestUnsubscribe_NotSubscribed() {
	token := suite.login()
	suite.userRepo.EXPECT().GetUserByID(mock.Anything, uint(2)).Return(&model.User{Model: gorm.Model{ID: 2}}, nil)
	suite.userRepo.EXPECT().DeleteSubscription(mock.Anything, uint(1), uint(2)).Return(repository.ErrNotFound)

	response := suite.serve(http.MethodDelete, "/api/users/2/subscribe/", "", token)

	suite.Equal(http.StatusNotFound, response.Code)
}

func (suite *RouterTestSuite) TestUnfavorite_NotFavorited() {
	token := suite.login()
	suite.recipeRepo.EXPECT().FindRecipe(mock.Anything, uint(3)).Return(&model.Recipe{ID: 3}, nil)
	suite.recipeRepo.EXPECT().DeleteFavorite(mock.Anything, uint(1), uint(3)).Return(repository.ErrNotFound)

	response := suite.serve(http.MethodDelete, "/api/recipes/3/favorite/", "", token)

	suite.Equal(http.StatusBadRequest, response.Code)
	suite.Contains(response.Body.String(), "not in favorites")
}

func (suite *RouterTestSuite) TestMe() {
	token := suite.login()

	response := suite.serve(http.MethodGet, "/api/users/me/", "", token)

	suite.Require().Equal(http.StatusOK, response.Code)
	suite.Contains(response.Body.String(), `"email":"cook@example.com"`)
}

func (suite *RouterTestSuite) TestRecipeNotFound() {
	suite.recipeRepo.EXPECT().GetRecipeByID(mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	response := suite.serve(http.MethodGet, "/api/recipes/99/", "", "")

	suite.Equal(http.StatusNotFound, response.Code)
}

func (suite *RouterTestSuite) TestInternalErrorIsLogged() {
	suite.catalogRepo.EXPECT().GetTags(mock.Anything).Return(nil, gorm.ErrInvalidDB)

	response := suite.serve(http.MethodGet, "/api/tags/", "", "")

	suite.Equal(http.StatusInternalServerError, response.Code)
	suite.Equal(1, suite.observedLogs.FilterMessage("request failed").Len())
}

func (suite *RouterTestSuite) TestMetrics() {
	response := suite.serve(http.MethodGet, router.MetricsPath, "", "")

	suite.Equal(http.StatusOK, response.Code)
}
