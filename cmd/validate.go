package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FreeMasen/orbi-helpers/internal/config"
	"github.com/FreeMasen/orbi-helpers/internal/ui"
)

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the stored configuration",
	Long: `Check that credentials are set and that every name override has a
non-empty key and replacement.`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	store := newStore()
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	path, _ := store.Path()
	fmt.Fprintln(out, ui.Bold("Validating "+path+"..."))

	errs := config.Validate(cfg)
	if len(errs) == 0 {
		ui.ValidationOK(out, "credentials", "username and password set")
		ui.ValidationOK(out, "device_name_overrides", fmt.Sprintf("%d overrides", len(cfg.DeviceNameOverrides)))
		fmt.Fprintln(out)
		ui.Success(out, "Configuration valid")
		return nil
	}

	for _, ve := range errs {
		ui.ValidationErr(out, ve.Field, ve.Message, ve.Suggestion)
	}
	fmt.Fprintln(out)
	return fmt.Errorf("%d validation errors", len(errs))
}
