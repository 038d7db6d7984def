package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/coursedeck/internal/config"
	"github.com/jask/coursedeck/internal/database"
	"github.com/jask/coursedeck/internal/logging"
	"github.com/jask/coursedeck/internal/source"
)

func newRootCmd() *cobra.Command {
	var (
		cfg       config.Config
		sourceArg string
	)
	browse := newBrowseCmd(&cfg)

	root := &cobra.Command{
		Use:          "coursedeck",
		Short:        "Browse a department, semester and subject catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if sourceArg != "" {
				loaded.Catalog.Source = sourceArg
				if err := loaded.Validate(); err != nil {
					return err
				}
			}
			cfg = loaded
			return nil
		},
		RunE: browse.RunE,
	}
	root.PersistentFlags().StringVar(&sourceArg, "source", "", "catalog source override (sqlite or http)")
	root.Flags().AddFlagSet(browse.Flags())

	root.AddCommand(
		browse,
		newServeCmd(&cfg),
		newSeedCmd(&cfg),
		newImportCmd(&cfg),
		newCheckCmd(&cfg),
	)
	return root
}

// stderrLogger is used by the non-interactive commands.
func stderrLogger(cfg config.Config) zerolog.Logger {
	return logging.New(logging.Config{Level: cfg.Log.Level, Pretty: true, Output: os.Stderr})
}

// openDB opens the migrated local catalog and makes sure it has the baseline.
func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}

// openSource builds the configured catalog source. The returned func releases it.
func openSource(ctx context.Context, cfg config.Config, lgr zerolog.Logger) (source.Source, func(), error) {
	switch cfg.Catalog.Source {
	case config.SourceHTTP:
		src := source.NewHTTPSource(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, lgr)
		src.DepartmentsPath = cfg.Catalog.DepartmentsPath
		src.SemestersPath = cfg.Catalog.SemestersPath
		src.SubjectsPath = cfg.Catalog.SubjectsPath
		return src, func() {}, nil
	default:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return source.NewSQLiteSource(db), func() { _ = db.Close() }, nil
	}
}
