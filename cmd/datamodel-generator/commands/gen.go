package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"datamodel-generator/internal/config"
	"datamodel-generator/internal/metadata"
	"datamodel-generator/internal/script"
)

func newGenCmd(opts *globalOptions) *cobra.Command {
	var (
		outDir     string
		dateFormat string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "gen <source.yaml>...",
		Short: "Compile model sources into model scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.cfg
			if outDir != "" {
				cfg.Output.Dir = outDir
			}

			if dateFormat != "" {
				cfg.DateFormat = dateFormat
			}

			files, err := generate(cmd.Context(), &cfg, opts.logger, args)
			if err != nil {
				return err
			}

			if dryRun {
				return printFiles(cmd.OutOrStdout(), files)
			}

			if err := script.WriteFiles(files, cfg.Output.Dir); err != nil {
				return err
			}

			opts.logger.Info("generated model scripts",
				zap.Int("count", len(files)),
				zap.String("dir", cfg.Output.Dir))

			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides config)")
	cmd.Flags().StringVar(&dateFormat, "date-format", "", "date literal format: ms or iso")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print scripts instead of writing them")

	return cmd
}

// generate compiles every source concurrently. Results keep argument order.
func generate(ctx context.Context, cfg *config.Config, logger *zap.Logger, paths []string) ([]*script.GeneratedSource, error) {
	dates, err := script.DateFormatterByName(cfg.DateFormat)
	if err != nil {
		return nil, err
	}

	compiler := script.NewCompiler(script.WithDateFormatter(dates), script.WithLogger(logger))
	results := make([]*script.GeneratedSource, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := compileFile(compiler, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func compileFile(compiler *script.Compiler, path string) (*script.GeneratedSource, error) {
	model, err := loadModel(path)
	if err != nil {
		return nil, err
	}

	if model.Metadata != nil {
		if err := metadata.Validate(model.Metadata).Error(); err != nil {
			return nil, err
		}
	}

	return compiler.Compile(model.Name, model.System, model.Metadata)
}

func printFiles(w io.Writer, files []*script.GeneratedSource) error {
	for _, f := range files {
		if _, err := fmt.Fprintf(w, "// %s\n%s\n", f.Filename, f.Content); err != nil {
			return err
		}
	}

	return nil
}
