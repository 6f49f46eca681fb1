package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/pkg/model"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
)

var ErrNothingToLoad = errors.New("no input file given")

type LoadCmd struct {
	ConfigFile  string `default:".Foodgram.toml" help:"Path to config file"          short:"c"`
	Ingredients string `help:"Path to an ingredients JSON file" type:"existingfile"`
	Tags        string `help:"Path to a tags JSON file"         type:"existingfile"`
}

type ingredientRecord struct {
	Name            string `json:"name"             validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

type tagRecord struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Color string `json:"color" validate:"required,hexcolor,len=7"`
	Slug  string `json:"slug"  validate:"required,max=200"`
}

func (l *LoadCmd) Run(_ *Context) error {
	if len(l.Ingredients) == 0 && len(l.Tags) == 0 {
		return ErrNothingToLoad
	}

	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(l.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	ctx := context.Background()

	var errs error

	if len(l.Ingredients) > 0 {
		multierr.AppendInto(&errs, loadFile(l.Ingredients, readIngredients, func(items []model.Ingredient) (int64, error) {
			return repo.AddIngredients(ctx, items)
		}, logger))
	}

	if len(l.Tags) > 0 {
		multierr.AppendInto(&errs, loadFile(l.Tags, readTags, func(items []model.Tag) (int64, error) {
			return repo.AddTags(ctx, items)
		}, logger))
	}

	return errs
}

// loadFile reads every valid record from path and stores them. Invalid
// records are reported but do not stop the valid ones from loading.
func loadFile[T any](path string, read func(io.Reader) ([]T, error), store func([]T) (int64, error), logger *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	items, readErr := read(file)
	for _, recordErr := range multierr.Errors(readErr) {
		logger.Warn("skipping record", zap.String("file", path), zap.Error(recordErr))
	}

	inserted, err := store(items)
	if err != nil {
		return multierr.Append(readErr, err)
	}

	logger.Info("loaded file",
		zap.String("file", path),
		zap.Int("records", len(items)),
		zap.Int64("inserted", inserted))

	return readErr
}

func readIngredients(reader io.Reader) ([]model.Ingredient, error) {
	records, err := decodeRecords[ingredientRecord](reader)
	if err != nil {
		return nil, err
	}

	validate := validator.New()

	var (
		errs        error
		ingredients = make([]model.Ingredient, 0, len(records))
	)

	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("ingredient %d: %w", i, err))

			continue
		}

		ingredients = append(ingredients, model.Ingredient{Name: record.Name, MeasurementUnit: record.MeasurementUnit})
	}

	return ingredients, errs
}

func readTags(reader io.Reader) ([]model.Tag, error) {
	records, err := decodeRecords[tagRecord](reader)
	if err != nil {
		return nil, err
	}

	validate := validator.New()

	var (
		errs error
		tags = make([]model.Tag, 0, len(records))
	)

	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("tag %d: %w", i, err))

			continue
		}

		tags = append(tags, model.Tag{Name: record.Name, Color: record.Color, Slug: record.Slug})
	}

	return tags, errs
}

func decodeRecords[T any](reader io.Reader) ([]T, error) {
	var records []T
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}

	return records, nil
}
