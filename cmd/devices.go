package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/FreeMasen/orbi-helpers/internal/model"
	"github.com/FreeMasen/orbi-helpers/internal/render"
)

var (
	outputFormat string
	deviceFields []string
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the devices attached to the router",
	Long: `Fetch the attached devices from the router, apply the configured name
overrides and print them.`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)

	devicesCmd.Flags().StringVarP(&outputFormat, "output-format", "o", string(render.FormatTable),
		"output format: "+strings.Join(render.Formats(), ", "))
	devicesCmd.Flags().StringSliceVarP(&deviceFields, "device-fields", "f", nil,
		"table columns: "+strings.Join(model.FieldNames(), ", ")+" (default: name,ip,connection,kind)")
}

func runDevices(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	fields, err := model.ParseFields(deviceFields)
	if err != nil {
		return err
	}

	devices, err := newPipeline().AttachedDevices(cmd.Context())
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), format, devices, fields)
}
