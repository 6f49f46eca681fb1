package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/DominusMortem/foodgram-project-react/pkg/model"
)

func (r *Repository) AddSubscription(ctx context.Context, userID uint, authorID uint) (*model.Subscription, error) {
	subscription := model.Subscription{UserID: userID, AuthorID: authorID}

	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&subscription); result.Error != nil {
		return nil, translateError(result.Error, "subscription")
	}

	return &subscription, nil
}

func (r *Repository) DeleteSubscription(ctx context.Context, userID uint, authorID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: subscription", ErrNotFound)
	}

	return nil
}

// GetSubscriptions returns the authors followed by userID, most recent follow first.
func (r *Repository) GetSubscriptions(ctx context.Context, userID uint, limit int, offset int) ([]*model.User, int64, error) {
	var (
		authors []*model.User
		count   int64
	)

	result := r.DB.WithContext(ctx).Model(&model.Subscription{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	result = r.DB.WithContext(ctx).
		Joins("INNER JOIN subscriptions s on s.author_id = users.id").
		Where("s.user_id = ?", userID).
		Order("s.id desc").
		Limit(limit).
		Offset(offset).
		Find(&authors)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return authors, count, nil
}

// SubscribedAuthorIDs reports which of authorIDs userID follows.
func (r *Repository) SubscribedAuthorIDs(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error) {
	subscribed := make(map[uint]bool, len(authorIDs))
	if len(authorIDs) == 0 {
		return subscribed, nil
	}

	var ids []uint

	result := r.DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, id := range ids {
		subscribed[id] = true
	}

	return subscribed, nil
}
