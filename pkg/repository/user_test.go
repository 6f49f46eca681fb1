package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TestGetUserFromEmail_NotFound() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users" WHERE email = \$1 (.+)`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	user, err := suite.repository.GetUserFromEmail(context.Background(), "nobody@example.com")
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.Nil(user)
}

func (suite *UserTestSuite) TestGetUserFromEmail_Found() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users" WHERE email = \$1 (.+)`).
		WithArgs("cook@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username"}).AddRow(uint(1), "cook@example.com", "cook"))

	user, err := suite.repository.GetUserFromEmail(context.Background(), "cook@example.com")
	suite.Require().NoError(err)
	suite.Equal(uint(1), user.ID)
	suite.Equal("cook", user.Username)
}

func (suite *UserTestSuite) TestAddUser_DuplicateEmail() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(uniqueViolation())
	suite.mock.ExpectRollback()

	user, err := suite.repository.AddUser(context.Background(), model.User{Email: "cook@example.com"})
	suite.Require().ErrorIs(err, repository.ErrAlreadyExists)
	suite.Nil(user)
}

func (suite *UserTestSuite) TestUpdatePassword_MissingUser() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "password"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.UpdatePassword(context.Background(), 42, "hash")
	suite.Require().ErrorIs(err, repository.ErrNotFound)
}
