package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FreeMasen/orbi-helpers/internal/config"
	"github.com/FreeMasen/orbi-helpers/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the attached devices over HTTP",
	Long: `Serve GET /attached-devices. The Accept header picks the body:
application/json for the raw structure, text/plain for a table. Every request
reads the config and queries the router again.

/metrics exposes Prometheus metrics and /healthz answers "ok".`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", config.DefaultListen, "address to listen on")
	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := server.New(newPipeline(), logger)
	logger.Info("serving attached devices", "listen", settings.Listen, "router", settings.Router)
	return srv.ListenAndServe(cmd.Context(), settings.Listen)
}
