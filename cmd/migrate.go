package cmd

import (
	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".Foodgram.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	if err := repo.Migrate(); err != nil {
		logger.Error("migration failed", zap.Error(err))

		return err
	}

	logger.Info("migration complete")

	return nil
}
