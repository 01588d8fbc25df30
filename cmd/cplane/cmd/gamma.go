package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cplane/gamma"
)

func newGammaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gamma <z>",
		Short: "Evaluate Γ(z)",
		Long: `Evaluates Γ(z) with the Lanczos approximation (default) or the
truncated Weierstrass series (--method series, --terms K).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			opts := a.cfg.GammaOptions()
			resolved := gamma.Resolve(opts...)
			start := time.Now()
			w := gamma.Gamma(z, opts...)

			fields := logrus.Fields{
				"z":       z,
				"method":  resolved.Method(),
				"elapsed": time.Since(start),
			}
			if resolved.Method() == gamma.MethodSeries {
				fields["terms"] = resolved.Terms()
			}
			a.log.WithFields(fields).Debug("gamma evaluated")

			return a.printNumber(cmd.OutOrStdout(), w)
		},
	}
}
