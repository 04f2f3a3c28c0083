package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shortlink/internal/database"
	"shortlink/internal/jobs"
	"shortlink/internal/urlservice/repository"
)

func runMigrate(cmd *cobra.Command, _ []string) error {
	bc, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	dbc := bc.Data.Database
	db, err := database.OpenDB(dbc.Driver, dbc.Source)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(db, dbc.Driver); err != nil {
		return err
	}

	version, dirty, err := database.MigrationVersion(db, dbc.Driver)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.Info("migrations applied",
		zap.String("driver", dbc.Driver),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

func runPurge(cmd *cobra.Command, _ []string) error {
	bc, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, cleanup, err := database.NewDB(bc.Data, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	repo := repository.NewURLRepository(bc.Data, db, nil, logger)
	purger := jobs.NewRetentionPurger(bc.Shortcode, repo, logger)

	n, err := purger.PurgeOnce(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "purged %d retired codes\n", n)
	return nil
}
