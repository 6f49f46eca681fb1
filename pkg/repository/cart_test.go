package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
)

type CartTestSuite struct {
	RepositorySuite
}

func TestCartTestSuite(t *testing.T) {
	suite.Run(t, new(CartTestSuite))
}

func (suite *CartTestSuite) TestGetShoppingList_SumsPerIngredient() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT i.name as name, i.measurement_unit as measurement_unit, sum(qi.amount) as total FROM shopping_cart_recipes scr`) +
		`(.+)` + regexp.QuoteMeta(`WHERE scr.shopping_cart_id = $1 GROUP BY i.name, i.measurement_unit ORDER BY i.name asc, i.measurement_unit asc`)).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "measurement_unit", "total"}).
			AddRow("Flour", "g", 500).
			AddRow("Milk", "ml", 250))

	items, err := suite.repository.GetShoppingList(context.Background(), 3)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Flour", items[0].Name)
	suite.Equal("g", items[0].MeasurementUnit)
	suite.Equal(int64(500), items[0].Total)
}

func (suite *CartTestSuite) TestGetCart_NoCart() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "shopping_carts" WHERE user_id = $1`)).
		WithArgs(uint(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	cart, err := suite.repository.GetCart(context.Background(), 1)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.Nil(cart)
}

func (suite *CartTestSuite) TestGetOrCreateCart_Existing() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "shopping_carts" ("created_at","user_id") VALUES ($1,$2) ON CONFLICT DO NOTHING`)).
		WithArgs(sqlmock.AnyArg(), uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	suite.mock.ExpectCommit()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "shopping_carts" WHERE user_id = $1`)).
		WithArgs(uint(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(uint(7), uint(1)))

	cart, err := suite.repository.GetOrCreateCart(context.Background(), 1)
	suite.Require().NoError(err)
	suite.Equal(uint(7), cart.ID)
}

func (suite *CartTestSuite) TestRemoveRecipeFromCart_NotInCart() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "shopping_cart_recipes"`)).
		WithArgs(uint(3), uint(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.RemoveRecipeFromCart(context.Background(), 3, 2)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
}
