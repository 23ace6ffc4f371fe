package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-savings/internal/config"
	"github.com/rpgo/retirement-savings/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the projection HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		api := server.NewWebAPI(server.Config{
			Addr:            serveAddr(),
			ShutdownTimeout: settings.Server.ShutdownTimeout,
			Dependencies: server.Dependencies{
				Projector: newEngine(),
				Solver:    newSolver(),
				Parser:    config.NewInputParser(),
				Logger:    logger,
			},
		})
		return api.Start()
	},
}

// serveAddr prefers --addr over the settings value.
func serveAddr() string {
	if flagAddr != "" {
		return flagAddr
	}
	return settings.Server.Addr
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from settings, :8080)")
	rootCmd.AddCommand(serveCmd)
}
