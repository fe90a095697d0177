package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datamodel-generator/internal/field"
	"datamodel-generator/internal/ingest"
)

func newDecodeCmd(opts *globalOptions) *cobra.Command {
	var xmlFile string

	cmd := &cobra.Command{
		Use:   "decode [name...]",
		Short: "Decode encoded field names",
		Long: `Decodes each argument as an encoded field name and prints the descriptor.
With --xml the field names are collected from an XML data file instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args

			if xmlFile != "" {
				fromFile, err := xmlFieldNames(xmlFile)
				if err != nil {
					return err
				}

				names = append(names, fromFile...)
			}

			if len(names) == 0 {
				return errors.New("no field names given")
			}

			opts.logger.Debug("decoding field names", zap.Int("count", len(names)))

			return decodeNames(cmd.OutOrStdout(), names)
		},
	}

	cmd.Flags().StringVar(&xmlFile, "xml", "", "read field names from an XML data file")

	return cmd
}

func xmlFieldNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	file, err := ingest.NewXMLReader(ingest.NewDataFile()).Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file.Fields(), nil
}

func decodeNames(w io.Writer, names []string) error {
	var errs []error

	for _, name := range names {
		d, err := field.Decode(name)
		if err != nil {
			errs = append(errs, err)
			fmt.Fprintf(w, "%-30s error: %v\n", name, err)

			continue
		}

		fmt.Fprintf(w, "%-30s %s\n", name, d)
	}

	return errors.Join(errs...)
}
