package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aryankumar/execbench/internal/config"
	"github.com/aryankumar/execbench/internal/output"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the execbench configuration file",
		Long: `Manage the execbench configuration file.

Values are read from $HOME/.execbench/.execbench.yaml or $HOME/.execbench.yaml
(or the file given with --config), then from EXECBENCH_* environment variables
such as EXECBENCH_RUN_TRIALS or EXECBENCH_PROBLEM_SIZE.
Flags on 'execbench run' override both.`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigViewCmd())

	return cmd
}

// newConfigInitCmd creates the config init command
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	manager := config.NewManager(viper.GetString("config"))

	path, err := manager.WritePath()
	if err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
	}

	manager.SetConfig(config.BenchConfig{})
	if err := config.Validate(manager.GetConfig()); err != nil {
		return err
	}
	if err := manager.Save(); err != nil {
		return err
	}

	slog.Debug("wrote default configuration", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}

// newConfigViewCmd creates the config view command
func newConfigViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigView(cmd)
		},
	}

	return cmd
}

func runConfigView(cmd *cobra.Command) error {
	manager := config.NewManager(viper.GetString("config"))
	cfg, err := manager.Load()
	if err != nil {
		return err
	}

	format := viper.GetString("output")
	if format == "" {
		format = string(output.FormatYAML)
	}

	if format == string(output.FormatTable) {
		return output.NewFormatter(output.FormatTable).Format(cmd.OutOrStdout(), map[string]interface{}{
			"problem.size":          cfg.Problem.Size,
			"problem.a":             cfg.Problem.A,
			"problem.xFill":         cfg.Problem.XFill,
			"problem.yFill":         cfg.Problem.YFill,
			"run.trials":            cfg.Run.Trials,
			"run.warmup":            cfg.Run.Warmup,
			"run.cases":             cfg.Run.Cases,
			"defaults.outputFormat": cfg.Defaults.OutputFormat,
			"defaults.noColor":      cfg.Defaults.NoColor,
		})
	}

	return output.NewFormatter(output.Format(format)).Format(cmd.OutOrStdout(), cfg)
}
