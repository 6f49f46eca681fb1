package repository

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(postgres.Open(conf.DB.DSN()), &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, err
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Migrate creates or updates the schema for every model.
func (r *Repository) Migrate() error {
	return r.DB.AutoMigrate(
		&model.User{}, &model.Subscription{}, &model.AuthToken{},
		&model.Tag{}, &model.Ingredient{}, &model.QuantifiedIngredient{},
		&model.Recipe{}, &model.Favorite{},
		&model.ShoppingCart{}, &model.ShoppingCartRecipe{})
}

// translateError maps gorm errors onto the repository sentinels.
func translateError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", ErrAlreadyExists, what)
	default:
		return err
	}
}
