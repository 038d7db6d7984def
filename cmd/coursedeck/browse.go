package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/coursedeck/internal/catalog"
	"github.com/jask/coursedeck/internal/config"
	"github.com/jask/coursedeck/internal/logging"
	"github.com/jask/coursedeck/internal/navigate"
	"github.com/jask/coursedeck/internal/tui"
)

func newBrowseCmd(cfg *config.Config) *cobra.Command {
	var saveConfig bool
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if saveConfig {
				if err := config.Save(*cfg); err != nil {
					return err
				}
			}
			return runBrowse(cmd, *cfg)
		},
	}
	cmd.Flags().BoolVar(&saveConfig, "save-config", false, "write the effective configuration to the config file")
	return cmd
}

func runBrowse(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()

	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	lgr := logging.New(logging.Config{Level: cfg.Log.Level, Output: logFile})

	src, release, err := openSource(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer release()

	opts := tui.Options{
		Source:     src,
		Dispatcher: catalog.Dispatcher{Route: cfg.Navigation.Route, IncludeName: cfg.Navigation.IncludeName},
		Timeout:    cfg.Catalog.Timeout,
		Logger:     lgr,
	}
	if cfg.Navigation.OpenBrowser {
		opts.Navigator = navigate.New(cfg.Navigation.BaseURL, true, logFile, lgr)
	}

	lgr.Info().Str("source", cfg.Catalog.Source).Msg("browser starting")
	app := tui.New(ctx, opts)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}

	// With the browser navigator each selection was already opened in place.
	if nav, ok := app.Navigation(); ok && opts.Navigator == nil {
		out := navigate.New(cfg.Navigation.BaseURL, false, cmd.OutOrStdout(), lgr)
		return out.Navigate(ctx, nav)
	}
	return nil
}
