package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cplane/plane"
)

func newFnCmd(a *app) *cobra.Command {
	var list bool

	c := &cobra.Command{
		Use:   "fn <name> <z>",
		Short: "Apply a unary function",
		Long: `Applies a function from the menu (see --list) to z. The gamma entry
honors --method and --terms.

Examples:
  cplane fn --list
  cplane fn arctan 1+1i
  cplane fn gamma 0.5`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, f := range plane.Funcs() {
					fmt.Fprintln(out, f)
				}
				return nil
			}

			f, err := plane.ParseFunc(args[0])
			if err != nil {
				return err
			}
			z, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			w, err := a.calculator().Apply(f, z)
			if err != nil {
				return fmt.Errorf("fn: %w", err)
			}
			a.log.WithField("func", f).WithField("z", z).Debug("unary function")

			return a.printNumber(out, w)
		},
	}
	c.Flags().BoolVar(&list, "list", false, "list the function menu")

	return c
}
