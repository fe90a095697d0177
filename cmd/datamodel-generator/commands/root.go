package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datamodel-generator/internal/config"
)

var version = "dev"

// globalOptions are shared by every subcommand.
type globalOptions struct {
	configFile string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "datamodel-generator",
		Short: "Data model script generator",
		Long: `Decodes encoded result-set field names into model metadata and compiles
that metadata into client-side data model scripts.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file (default is ./"+config.FileName+")")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "verbose output")

	cmd.AddCommand(newDecodeCmd(opts), newCheckCmd(opts), newGenCmd(opts))

	return cmd
}

func (o *globalOptions) init() error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if o.verbose {
		level = "debug"
	}

	logger, err := newLogger(level)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)

	o.cfg = cfg
	o.logger = logger

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging level %q: %w", level, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.Encoding = "console"

	return zc.Build()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
