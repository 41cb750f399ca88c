// Package cmd implements the mandarin-master CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	adapterrepo "github.com/eslsoft/mandarin-master/internal/adapter/repository"
	"github.com/eslsoft/mandarin-master/internal/infrastructure/audio"
	"github.com/eslsoft/mandarin-master/internal/infrastructure/config"
	"github.com/eslsoft/mandarin-master/internal/infrastructure/database"
	"github.com/eslsoft/mandarin-master/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "mandarin-master",
	Short: "Mandarin Master: Linguistic Duelist",
	Long:  "A gamified HSK-1 Mandarin trainer: roadmap lessons, sentence duels, XP, streaks.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the wired dependencies a command needs.
type app struct {
	cfg      *config.Config
	logger   *logrus.Logger
	db       *sqlx.DB
	progress usecase.ProgressUsecase
	duel     usecase.DuelUsecase
	player   *audio.Player
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logrus.New()
	lvl, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(lvl)
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	progressRepo, drawRepo := adapterrepo.NewStorageRepository(db, logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		progress: usecase.NewProgressUsecase(progressRepo, drawRepo, logger),
		duel:     usecase.NewDuelUsecase(nil),
		player:   audio.NewPlayer(cfg.Audio, logger),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).Warn("failed to close storage")
	}
}

func nowDate() string {
	return time.Now().Format("2006-01-02")
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
