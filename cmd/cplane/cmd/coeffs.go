package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cplane/gamma"
)

const (
	formClosed    = "closed"
	formChebyshev = "chebyshev"
)

// coeffReport is the structured coeffs output.
type coeffReport struct {
	G            float64   `json:"g" yaml:"g" toml:"g"`
	N            int       `json:"n" yaml:"n" toml:"n"`
	Form         string    `json:"form" yaml:"form" toml:"form"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients" toml:"coefficients"`
}

func newCoeffsCmd(a *app) *cobra.Command {
	var (
		g    float64
		n    int
		form string
	)

	c := &cobra.Command{
		Use:   "coeffs",
		Short: "Print Lanczos coefficients",
		Long: `Prints the Lanczos coefficient table. The default is the cached table
(g = 5, N = 5) in closed form c₀ + Σ cᵢ/(z+i); --form chebyshev prints
the series coefficients p₀…p_{N−1} instead. --g and --n derive a fresh
table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form = strings.ToLower(form)
			if form != formClosed && form != formChebyshev {
				return fmt.Errorf("coeffs: unknown form %q (want %s or %s)", form, formClosed, formChebyshev)
			}

			var coeffs []float64
			if !cmd.Flags().Changed("g") && !cmd.Flags().Changed("n") {
				coeffs = gamma.ClosedFormCoefficients()
				if form == formChebyshev {
					coeffs = gamma.Coefficients()
				}
			} else {
				p, err := gamma.ComputeCoefficients(g, n)
				if err != nil {
					return fmt.Errorf("coeffs: %w", err)
				}
				coeffs = p
				if form == formClosed {
					coeffs = gamma.PartialFractions(p)
				}
			}
			a.log.WithField("g", g).WithField("n", len(coeffs)).Debug("coefficients ready")

			out := cmd.OutOrStdout()
			if !a.textOutput() {
				return a.printValue(out, coeffReport{G: g, N: len(coeffs), Form: form, Coefficients: coeffs})
			}
			name := "c"
			if form == formChebyshev {
				name = "p"
			}
			for i, v := range coeffs {
				fmt.Fprintf(out, "%s%d = %.17g\n", name, i, v)
			}

			return nil
		},
	}

	f := c.Flags()
	f.Float64Var(&g, "g", gamma.PrecisionModifier, "Lanczos precision modifier g")
	f.IntVar(&n, "n", gamma.CoefficientCount, "number of coefficients")
	f.StringVar(&form, "form", formClosed, "closed or chebyshev")

	return c
}
