package app

import (
	"context"
	"fmt"

	"github.com/VladPetriv/category_manager/config"
	"github.com/VladPetriv/category_manager/internal/api/rest"
	"github.com/VladPetriv/category_manager/internal/migrations"
	"github.com/VladPetriv/category_manager/internal/service"
	"github.com/VladPetriv/category_manager/internal/store"
	"github.com/VladPetriv/category_manager/pkg/database"
	"github.com/VladPetriv/category_manager/pkg/logger"
)

// Run is used to start the category store and blocks until ctx is done.
func Run(ctx context.Context, cfg *config.Config, logger *logger.Logger) {
	postgres, err := database.NewPostgreSQL(database.PostgreSQLOptions{
		User:     cfg.PostgreSQL.User,
		Password: cfg.PostgreSQL.Password,
		Database: cfg.PostgreSQL.Database,
		Host:     cfg.PostgreSQL.Host,
		Port:     cfg.PostgreSQL.Port,
		SSLMode:  cfg.PostgreSQL.SSLMode,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create postgresql connection")
	}
	defer func() {
		err := postgres.Close()
		if err != nil {
			logger.Error().Err(err).Msg("close postgresql connection")
		}
	}()

	err = postgres.Ping(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("ping postgresql")
	}

	err = migrations.MigrateDB(logger, postgres.DB, cfg.PostgreSQL.Database, migrations.Migrations)
	if err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	stores := service.Stores{
		Category: store.NewCategory(postgres),
	}

	services := service.Services{
		Category: service.NewCategory(logger, stores.Category),
	}

	server := rest.NewServer(rest.ServerOptions{
		Address:      cfg.HTTP.Address,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		Logger:       logger,
		Services:     services,
		Database:     postgres,
	})

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if err != nil {
			logger.Error().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down http server")

		err := server.Shutdown()
		if err != nil {
			logger.Error().Err(fmt.Errorf("shutdown http server: %w", err)).Send()
		}
	}
}
