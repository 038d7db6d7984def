package main

import (
	"github.com/spf13/cobra"

	"github.com/jask/coursedeck/internal/config"
	"github.com/jask/coursedeck/internal/server"
	"github.com/jask/coursedeck/internal/source"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lgr := stderrLogger(*cfg)
			db, err := openDB(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if addr == "" {
				addr = cfg.Server.Addr
			}
			return server.New(addr, source.NewSQLiteSource(db), lgr).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	return cmd
}
