package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FreeMasen/orbi-helpers/internal/apperr"
	"github.com/FreeMasen/orbi-helpers/internal/config"
	"github.com/FreeMasen/orbi-helpers/internal/pipeline"
	"github.com/FreeMasen/orbi-helpers/internal/router"
	"github.com/FreeMasen/orbi-helpers/internal/ui"
)

var (
	settings *config.Settings
	logger   = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "orbi-helper",
	Short: "List the devices attached to an Orbi mesh router",
	Long: `orbi-helper asks the router's web UI for the devices attached to the
network, swaps in the display names you configured, and prints the result as
a table, a simple list or JSON. It can also serve the list over HTTP.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the command tree. Errors are printed here; the caller only
// picks the exit code.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprint(rootCmd.ErrOrStderr(), describe(err))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default: <user config dir>/orbi-helper/config.yaml)")
	flags.String("router", config.DefaultRouter, "router host or base URL")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("router", flags.Lookup("router"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
}

func initConfig() {
	viper.SetEnvPrefix("ORBI_HELPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(viper.GetViper())
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	l, err := newLogger(s.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	settings = s
	logger = l
	return nil
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: use debug, info, warn or error", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func newStore() *config.Store {
	return config.NewStore(settings.ConfigFile)
}

func newPipeline() *pipeline.Pipeline {
	client := router.NewClient(settings.Router, nil, logger)
	return pipeline.New(newStore(), client, logger)
}

// ExitCode maps an error from Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	kind := apperr.KindOf(err)
	switch {
	case kind.IsConfig():
		return 2
	case kind == apperr.KindNetwork:
		return 3
	case kind == apperr.KindResponseParse:
		return 4
	}
	return 1
}

func describe(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindConfigPathUnresolved:
		return ui.FormatError("Could not find a config directory", err.Error(), "pass --config <file>")
	case apperr.KindConfigMissing:
		return ui.FormatError("No config file", err.Error(), "run 'orbi-helper config init' to create one")
	case apperr.KindConfigParse:
		return ui.FormatError("Could not read config", err.Error(), "fix the file or recreate it with 'orbi-helper config init'")
	case apperr.KindConfigWrite:
		return ui.FormatError("Could not write config", err.Error(), "")
	case apperr.KindNetwork:
		return ui.FormatError("Could not get devices from the router", err.Error(),
			"check --router and the stored credentials; a rejected login is reported the same way")
	case apperr.KindResponseParse:
		return ui.FormatError("Unexpected router response", err.Error(), "rerun with --log-level debug to see the body")
	}
	return ui.FormatError("Command failed", err.Error(), "")
}
