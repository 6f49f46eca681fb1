package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;size:254"`
	Username    string `gorm:"uniqueIndex;size:150"`
	FirstName   string `gorm:"size:150"`
	LastName    string `gorm:"size:150"`
	Password    string
	IsSuperuser bool `gorm:"default:false"`
	IsBlocked   bool `gorm:"default:false"`
}

// Subscription is a follow edge from User to Author.
type Subscription struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint `gorm:"uniqueIndex:idx_subscription_user_author"`
	AuthorID  uint `gorm:"uniqueIndex:idx_subscription_user_author"`

	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

// AuthToken records an issued token id so that logout can revoke it.
type AuthToken struct {
	Key       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UserID    uint `gorm:"index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
