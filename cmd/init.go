package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FreeMasen/orbi-helpers/internal/apperr"
	"github.com/FreeMasen/orbi-helpers/internal/config"
	"github.com/FreeMasen/orbi-helpers/internal/ui"
	"github.com/FreeMasen/orbi-helpers/internal/wizard"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update the config file interactively",
	Long: `Prompt for the router username and password and save them. Existing
name overrides are kept.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	store := newStore()

	cfg, err := store.Load()
	switch {
	case apperr.KindOf(err) == apperr.KindConfigMissing:
		cfg = config.New()
	case err != nil:
		return err
	}

	answers, err := wizard.Run(wizard.Defaults(cfg), cfg.Password != "")
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	answers.Apply(cfg)

	if err := store.Save(cfg); err != nil {
		return err
	}

	path, _ := store.Path()
	out := cmd.OutOrStdout()
	ui.Success(out, fmt.Sprintf("Saved %s", path))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Next step: %s\n", ui.Bold("orbi-helper devices"))
	fmt.Fprintf(out, "           %s\n", ui.Hint("or 'orbi-helper config set-override <mac> <name>' to rename a device"))
	return nil
}
