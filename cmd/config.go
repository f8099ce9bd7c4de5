package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FreeMasen/orbi-helpers/internal/apperr"
	"github.com/FreeMasen/orbi-helpers/internal/config"
	"github.com/FreeMasen/orbi-helpers/internal/ui"
)

const passwordMask = "********"

var showPassword bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change the stored credentials and name overrides",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the stored configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigDump,
}

var configGetPathCmd = &cobra.Command{
	Use:   "get-path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigGetPath,
}

var configSetUsernameCmd = &cobra.Command{
	Use:   "set-username <username>",
	Short: "Store the router username",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newStore().SetUsername(args[0]); err != nil {
			return err
		}
		ui.Success(cmd.OutOrStdout(), "Username updated")
		return nil
	},
}

var configSetPasswordCmd = &cobra.Command{
	Use:   "set-password <password>",
	Short: "Store the router password (kept in clear text)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newStore().SetPassword(args[0]); err != nil {
			return err
		}
		ui.Success(cmd.OutOrStdout(), "Password updated")
		return nil
	},
}

var configSetOverrideCmd = &cobra.Command{
	Use:   "set-override <name-or-mac> <replacement>",
	Short: "Show a device under another name",
	Long: `Show a device under another name. The key is matched exactly against
the device MAC first and then against the name the router reports.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newStore().SetOverride(args[0], args[1]); err != nil {
			return err
		}
		ui.Success(cmd.OutOrStdout(), fmt.Sprintf("%s will be shown as %s", args[0], args[1]))
		return nil
	},
}

var configClearOverrideCmd = &cobra.Command{
	Use:   "clear-override <name-or-mac>",
	Short: "Remove a name override",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newStore().ClearOverride(args[0]); err != nil {
			return err
		}
		ui.Success(cmd.OutOrStdout(), "Override for "+args[0]+" removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(
		configDumpCmd,
		configGetPathCmd,
		configSetUsernameCmd,
		configSetPasswordCmd,
		configSetOverrideCmd,
		configClearOverrideCmd,
	)

	configDumpCmd.Flags().BoolVar(&showPassword, "show-password", false, "print the password instead of a mask")
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	store := newStore()
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	path, _ := store.Path()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Bold("Config file: ")+path)
	ui.KeyValue(out, "username", cfg.Username)
	ui.KeyValue(out, "password", maskPassword(cfg.Password, showPassword))

	fmt.Fprintln(out, ui.Bold("Overrides:"))
	keys := config.SortedOverrideKeys(cfg)
	if len(keys) == 0 {
		fmt.Fprintln(out, "  "+ui.Dim("(none)"))
	}
	for _, k := range keys {
		fmt.Fprintf(out, "  %s -> %s\n", k, cfg.DeviceNameOverrides[k])
	}
	return nil
}

func runConfigGetPath(cmd *cobra.Command, args []string) error {
	store := newStore()
	path, err := store.Path()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)

	if _, err := store.Locate(); apperr.KindOf(err) == apperr.KindConfigMissing {
		ui.Warn(cmd.ErrOrStderr(), "no file exists there yet")
	}
	return nil
}

func maskPassword(password string, show bool) string {
	switch {
	case show:
		return password
	case password == "":
		return ui.Dim("(not set)")
	}
	return passwordMask
}
