package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/coursedeck/internal/catalog"
	"github.com/jask/coursedeck/internal/config"
	"github.com/jask/coursedeck/internal/database"
	"github.com/jask/coursedeck/internal/database/repository"
	"github.com/jask/coursedeck/internal/service"
	"github.com/jask/coursedeck/internal/source"
)

func newSeedCmd(cfg *config.Config) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the local catalog database with the baseline catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := database.OpenMigrated(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			if reset {
				if err := (&service.MaintenanceService{DB: db}).Reset(ctx); err != nil {
					return err
				}
			}
			if err := database.SeedDefaults(ctx, db); err != nil {
				return fmt.Errorf("seed defaults: %w", err)
			}
			n, err := repository.NewDepartmentRepo(db).Count(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d departments\n", cfg.Database.Path, n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "wipe the catalog before seeding")
	return cmd
}

func newImportCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Upsert catalog rows (kind,id,name,parent[,code]) into the local database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			db, err := database.OpenMigrated(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := &service.ImportService{
				Departments: repository.NewDepartmentRepo(db),
				Semesters:   repository.NewSemesterRepo(db),
				Subjects:    repository.NewSubjectRepo(db),
			}
			res, err := svc.ImportCSV(ctx, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d, skipped %d, errors %d\n", res.Imported, res.Skipped, len(res.Errors))
			for _, e := range res.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), e)
			}
			if len(res.Errors) > 0 {
				return fmt.Errorf("%d rows failed", len(res.Errors))
			}
			return nil
		},
	}
}

func newCheckCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report semesters and subjects whose parent does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			src, release, err := openSource(ctx, *cfg, stderrLogger(*cfg))
			if err != nil {
				return err
			}
			defer release()

			snap, err := source.LoadAll(ctx, src)
			if err != nil {
				return err
			}
			rep := catalog.Orphans(snap.Departments, snap.Semesters, snap.Subjects)
			writeOrphans(cmd.OutOrStdout(), rep)
			if n := len(rep.Semesters) + len(rep.Subjects); n > 0 {
				return fmt.Errorf("found %d orphaned records", n)
			}
			return nil
		},
	}
}

func writeOrphans(w io.Writer, rep catalog.OrphanReport) {
	if rep.Empty() {
		fmt.Fprintln(w, "no orphans")
		return
	}
	for _, s := range rep.Semesters {
		fmt.Fprintf(w, "semester %s (%s): department %q not found\n", s.ID, s.Label(), s.Department)
	}
	for _, s := range rep.Subjects {
		fmt.Fprintf(w, "subject %s (%s): semester %q not found\n", s.ID, s.Label(), s.Semester)
	}
}
