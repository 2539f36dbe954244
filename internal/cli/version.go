package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aryankumar/execbench/internal/output"
	"github.com/aryankumar/execbench/pkg/version"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Display detailed version information for execbench",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd)
		},
	}

	return cmd
}

func runVersion(cmd *cobra.Command) error {
	info := version.Get()
	outputFormat, _ := cmd.Flags().GetString("output")
	w := cmd.OutOrStdout()

	switch output.Format(outputFormat) {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(output.Format(outputFormat)).Format(w, info)
	case output.FormatTable:
		return output.NewFormatter(output.FormatTable).Format(w, info.Fields())
	default:
		// Default to human-readable format
		fmt.Fprintln(w, info.String())
		return nil
	}
}
