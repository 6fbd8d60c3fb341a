package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"object_patterns_code/config"
	"object_patterns_code/demo"
)

type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Walk through object construction patterns",
		Long: `patterns prints a walkthrough of object construction: constructor
functions with shared prototypes, class syntax with static methods,
delegation with Object.create, and two car exercises.

Run without arguments to print every demo, or the ones selected in the
config file or PATTERNS_DEMOS.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, c.cfg.Demos)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	runCmd := &cobra.Command{
		Use:   "run <demo>...",
		Short: "Run the named demos in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range demo.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", d.Name, d.Title)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd)
	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.cfg = cfg

	// Initialize logger
	zcfg := zap.NewProductionConfig()
	if c.verbose || cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	c.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (c *cli) run(cmd *cobra.Command, names []string) error {
	c.logger.Debug("selected demos", zap.Strings("names", names))
	return demo.NewRunner(cmd.OutOrStdout(), c.logger).Run(names...)
}
