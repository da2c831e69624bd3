package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	config   string
	template string
	polyOut  string
	trigOut  string
	stdout   bool
	verbose  bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Regenerate the polynomial-root and trig-table test fixtures",
		Long: `fixturegen writes C# unit-test sources for the solver and the trig table.

Polynomial cases are drawn from a seeded generator, so rerunning with the same
configuration reproduces the committed files byte for byte.

Run without a subcommand to regenerate both documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger == nil {
				opts.logger = newLogger(opts.verbose)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, docPoly, docTrig)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.config, "config", "", "YAML file overriding the built-in generation tables")
	pf.StringVar(&opts.template, "template", "", "txtar archive overriding the embedded templates")
	pf.StringVar(&opts.polyOut, "poly-out", "", "output path of the polynomial fixtures")
	pf.StringVar(&opts.trigOut, "trig-out", "", "output path of the trig-table fixtures")
	pf.BoolVar(&opts.stdout, "stdout", false, "print documents to stdout instead of writing them")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "poly",
			Short: "Regenerate the polynomial-root fixtures",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runGenerate(cmd, opts, docPoly)
			},
		},
		&cobra.Command{
			Use:   "trig",
			Short: "Regenerate the trig-table fixtures",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runGenerate(cmd, opts, docTrig)
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadOptions(opts)
				if err != nil {
					return err
				}
				out, err := cfg.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			},
		},
	)

	return rootCmd
}

// loadOptions reads the config file and applies flag overrides.
func loadOptions(opts *options) (*Config, error) {
	cfg, err := LoadConfig(opts.config)
	if err != nil {
		return nil, err
	}
	if opts.polyOut != "" {
		cfg.Polynomial.Output = opts.polyOut
	}
	if opts.trigOut != "" {
		cfg.Trig.Output = opts.trigOut
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, opts *options, kinds ...documentKind) error {
	cfg, err := loadOptions(opts)
	if err != nil {
		return err
	}
	if opts.config != "" {
		opts.logger.Debug("loaded config", zap.String("path", opts.config))
	}

	g := newGenerator(cfg, opts.logger)
	g.Template = opts.template
	g.Stdout = opts.stdout
	g.out = cmd.OutOrStdout()

	for _, kind := range kinds {
		if err := g.generate(kind); err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
