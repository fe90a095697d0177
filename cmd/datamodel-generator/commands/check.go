package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datamodel-generator/internal/metadata"
	"datamodel-generator/internal/source"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <source.yaml>...",
		Short: "Validate model sources without generating scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error

			for _, path := range args {
				if err := checkFile(cmd.OutOrStdout(), opts.logger, path); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
				}
			}

			return errors.Join(errs...)
		},
	}
}

// checkFile prints the diagnostics of one source and fails on errors.
func checkFile(w io.Writer, logger *zap.Logger, path string) error {
	model, err := loadModel(path)
	if err != nil {
		return err
	}

	if model.Metadata == nil {
		fmt.Fprintf(w, "%s: empty model\n", path)
		return nil
	}

	diags := metadata.Validate(model.Metadata)

	for _, d := range diags.Errors {
		fmt.Fprintf(w, "%s: error: %s\n", path, d)
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(w, "%s: warning: %s\n", path, d)
	}

	logger.Info("checked model",
		zap.String("model", model.Name),
		zap.Int("types", model.Metadata.Len()),
		zap.Int("errors", len(diags.Errors)),
		zap.Int("warnings", len(diags.Warnings)),
		zap.String("main", model.MainElement),
		zap.Strings("rowCounts", model.RowCounts))

	if err := diags.Error(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: ok (%d types)\n", path, model.Metadata.Len())

	return nil
}

func loadModel(path string) (*source.Model, error) {
	doc, err := source.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}
