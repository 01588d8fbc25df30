package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cplane/cplx"
)

func newEncodeCmd(a *app) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "encode <z>",
		Short: "Write z as an RE/IM record",
		Long: `Writes z in its structured form: {"RE":..,"IM":..} for json, or the
equivalent two-key yaml mapping or toml document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := cplx.ParseEncoding(format)
			if err != nil {
				return err
			}
			z, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			if err := cplx.Encode(cmd.OutOrStdout(), z, enc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			a.log.WithField("format", enc).Debug("number encoded")

			return nil
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "json", "json, yaml or toml")

	return c
}

func newDecodeCmd(a *app) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "decode [file]",
		Short: "Read an RE/IM record",
		Long: `Reads a structured number from file (or stdin) and prints it. Without
--format the encoding follows the file extension, defaulting to json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if format == "" {
					format = strings.TrimPrefix(filepath.Ext(args[0]), ".")
				}
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			if format == "" {
				format = cplx.EncodingJSON.String()
			}

			enc, err := cplx.ParseEncoding(format)
			if err != nil {
				return err
			}
			z, err := cplx.Decode(data, enc)
			if err != nil {
				return err
			}

			return a.printNumber(cmd.OutOrStdout(), z)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "", "json, yaml or toml")

	return c
}
