package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DominusMortem/foodgram-project-react/pkg/model"
)

type UserRepository interface { //nolint:interfacebloat // this is an acceptable interface
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	AddUser(ctx context.Context, user model.User) (*model.User, error)
	GetUsers(ctx context.Context, limit int, offset int) ([]*model.User, int64, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	AddSubscription(ctx context.Context, userID uint, authorID uint) (*model.Subscription, error)
	DeleteSubscription(ctx context.Context, userID uint, authorID uint) error
	GetSubscriptions(ctx context.Context, userID uint, limit int, offset int) ([]*model.User, int64, error)
	SubscribedAuthorIDs(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error)
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).First(&user, userID)
	if result.Error != nil {
		return nil, translateError(result.Error, "user")
	}

	return &user, nil
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, translateError(result.Error, "user")
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, user model.User) (*model.User, error) {
	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, translateError(result.Error, "user with this email")
	}

	return &user, nil
}

func (r *Repository) GetUsers(ctx context.Context, limit int, offset int) ([]*model.User, int64, error) {
	var (
		users []*model.User
		count int64
	)

	if result := r.DB.WithContext(ctx).Model(&model.User{}).Count(&count); result.Error != nil {
		return nil, 0, result.Error
	}

	result := r.DB.WithContext(ctx).Order("id desc").Limit(limit).Offset(offset).Find(&users)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return users, count, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	result := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user", ErrNotFound)
	}

	return nil
}

func (r *Repository) AddAuthToken(ctx context.Context, token model.AuthToken) error {
	return r.DB.WithContext(ctx).Create(&token).Error
}

func (r *Repository) GetAuthToken(ctx context.Context, key uuid.UUID) (*model.AuthToken, error) {
	var token model.AuthToken

	result := r.DB.WithContext(ctx).Joins("User").Where("auth_tokens.key = ?", key).First(&token)
	if result.Error != nil {
		return nil, translateError(result.Error, "token")
	}

	return &token, nil
}

func (r *Repository) DeleteAuthToken(ctx context.Context, key uuid.UUID) error {
	result := r.DB.WithContext(ctx).Where("key = ?", key).Delete(&model.AuthToken{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: token", ErrNotFound)
	}

	return nil
}
