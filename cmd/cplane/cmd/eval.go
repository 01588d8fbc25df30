package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cplane/plane"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Apply a binary operation",
		Long: `Applies one of add (+), sub (-), mul (* or x), div (/), pow (^ or **),
root (w-th root of a) or log (logarithm of a to base b).

Examples:
  cplane eval 3+4i x 1-2i      # 11-2i
  cplane eval 8 root 3         # cube root
  cplane eval 16 log 2         # 4+0i`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			op, err := plane.ParseOp(args[1])
			if err != nil {
				return err
			}
			y, err := parseOperand(args[2])
			if err != nil {
				return err
			}

			z, err := a.calculator().Binary(op, x, y)
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}
			a.log.WithFields(logrus.Fields{"a": x, "op": op, "b": y}).Debug("binary operation")

			return a.printNumber(cmd.OutOrStdout(), z)
		},
	}
}

func newDefineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "define <re> <im>",
		Short: "Build re + im·i",
		Long: `Builds re + im·i. A complex im is rotated by i, so
"cplane define 1 0+1i" yields 0+0i.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			im, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			return a.printNumber(cmd.OutOrStdout(), a.calculator().Define(re, im))
		},
	}
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Report exact equality of two operands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			y, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.calculator().Compare(x, y))

			return err
		},
	}
}
