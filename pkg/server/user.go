package server

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/pkg/auth"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
	"github.com/DominusMortem/foodgram-project-react/pkg/server/rest"
)

type authorRecipes interface {
	GetAuthorRecipes(ctx context.Context, authorID uint, limit int) ([]*model.Recipe, int64, error)
}

type UserServer struct {
	logger           *zap.Logger
	config           *configs.Config
	userRepository   repository.UserRepository
	recipeRepository authorRecipes
}

func NewUserServer(userRepo repository.UserRepository, recipeRepo authorRecipes, logger *zap.Logger, config *configs.Config) *UserServer {
	return &UserServer{userRepository: userRepo, recipeRepository: recipeRepo, logger: logger, config: config}
}

func (u *UserServer) Register(ctx context.Context, request rest.RegisterUser) (*rest.User, error) {
	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepository.AddUser(ctx, model.User{
		Email:     request.Email,
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Password:  hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: a user with email %s or username %s already exists", ErrInvalidInput, request.Email, request.Username)
		}

		return nil, err
	}

	u.logger.Info("user registered", zap.Uint("user_id", user.ID))

	restUser := rest.UserFromModel(*user, false)

	return &restUser, nil
}

func (u *UserServer) GetUser(ctx context.Context, userID uint) (*rest.User, error) {
	user, err := u.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "user %d", userID)
	}

	subscribed, err := u.isSubscribed(ctx, []uint{user.ID})
	if err != nil {
		return nil, err
	}

	restUser := rest.UserFromModel(*user, subscribed[user.ID])

	return &restUser, nil
}

func (u *UserServer) Me(ctx context.Context) (*rest.User, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	restUser := rest.UserFromModel(*user, false)

	return &restUser, nil
}

func (u *UserServer) ListUsers(ctx context.Context, pagination rest.Pagination) ([]rest.User, int64, error) {
	users, count, err := u.userRepository.GetUsers(ctx, pagination.Limit, pagination.Offset())
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	subscribed, err := u.isSubscribed(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	results := make([]rest.User, 0, len(users))
	for _, user := range users {
		results = append(results, rest.UserFromModel(*user, subscribed[user.ID]))
	}

	return results, count, nil
}

func (u *UserServer) SetPassword(ctx context.Context, request rest.SetPassword) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, request.CurrentPassword) {
		return fmt.Errorf("%w: current password is incorrect", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(request.NewPassword)
	if err != nil {
		return err
	}

	return notFound(u.userRepository.UpdatePassword(ctx, user.ID, hash), "user %d", user.ID)
}

// Subscribe makes the requester follow authorID and returns the author's
// profile with up to recipesLimit of their recipes. A limit below one means all.
func (u *UserServer) Subscribe(ctx context.Context, authorID uint, recipesLimit int) (*rest.Subscription, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	author, err := u.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, notFound(err, "user %d", authorID)
	}

	if author.ID == user.ID {
		return nil, fmt.Errorf("%w: cannot subscribe to yourself", ErrInvalidOperation)
	}

	if _, err := u.userRepository.AddSubscription(ctx, user.ID, author.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: already subscribed to user %d", ErrConflict, authorID)
		}

		return nil, err
	}

	return u.subscriptionProfile(ctx, author, recipesLimit)
}

func (u *UserServer) Unsubscribe(ctx context.Context, authorID uint) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}

	if _, err := u.userRepository.GetUserByID(ctx, authorID); err != nil {
		return notFound(err, "user %d", authorID)
	}

	err = u.userRepository.DeleteSubscription(ctx, user.ID, authorID)

	return notFound(err, "not subscribed to user %d", authorID)
}

func (u *UserServer) Subscriptions(ctx context.Context, pagination rest.Pagination, recipesLimit int) ([]rest.Subscription, int64, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, 0, err
	}

	authors, count, err := u.userRepository.GetSubscriptions(ctx, user.ID, pagination.Limit, pagination.Offset())
	if err != nil {
		return nil, 0, err
	}

	results := make([]rest.Subscription, 0, len(authors))

	for _, author := range authors {
		profile, err := u.subscriptionProfile(ctx, author, recipesLimit)
		if err != nil {
			return nil, 0, err
		}

		results = append(results, *profile)
	}

	return results, count, nil
}

func (u *UserServer) subscriptionProfile(ctx context.Context, author *model.User, recipesLimit int) (*rest.Subscription, error) {
	recipes, count, err := u.recipeRepository.GetAuthorRecipes(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}

	return &rest.Subscription{
		User:         rest.UserFromModel(*author, true),
		Recipes:      rest.RecipesShortFromModel(recipes),
		RecipesCount: count,
	}, nil
}

func (u *UserServer) isSubscribed(ctx context.Context, authorIDs []uint) (map[uint]bool, error) {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return map[uint]bool{}, nil
	}

	return u.userRepository.SubscribedAuthorIDs(ctx, user.ID, authorIDs)
}
