package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aryankumar/execbench/internal/output"
	"github.com/aryankumar/execbench/internal/saxpy"
)

// newCasesCmd creates the cases command
func newCasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cases",
		Short:   "List the benchmark cases",
		Long:    "List the names accepted by 'execbench run --cases', in the order they run.",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCases(cmd)
		},
	}

	return cmd
}

func runCases(cmd *cobra.Command) error {
	format := viper.GetString("output")
	if format == "" {
		format = string(output.FormatTable)
	}

	formatter := output.NewFormatter(
		output.Format(format),
		output.WithNoColor(viper.GetBool("no-color")),
		output.WithNoHeaders(viper.GetBool("no-headers")),
	)
	return formatter.Format(cmd.OutOrStdout(), saxpy.Names())
}
