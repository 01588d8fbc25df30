package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/katalvlaran/cplane/grid"
	"github.com/katalvlaran/cplane/plane"
)

// component is a float64 whose JSON form spells NaN and ±Inf as the
// strings "NaN", "+Inf" and "-Inf". Grids routinely cross poles, so a
// single non-finite sample must not abort the whole report. YAML and TOML
// carry non-finite floats natively and see a plain float64.
type component float64

// MarshalJSON implements json.Marshaler.
func (c component) MarshalJSON() ([]byte, error) {
	x := float64(c)
	switch {
	case math.IsNaN(x):
		return []byte(`"NaN"`), nil
	case math.IsInf(x, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(x, -1):
		return []byte(`"-Inf"`), nil
	}

	return json.Marshal(x)
}

// sample is the RE/IM record of one grid value.
type sample struct {
	RE component `json:"RE" yaml:"RE" toml:"RE"`
	IM component `json:"IM" yaml:"IM" toml:"IM"`
}

func newSample(z cplx.Number) sample {
	return sample{RE: component(z.Real()), IM: component(z.Imag())}
}

// gridPoint is one sample of the structured grid output.
type gridPoint struct {
	Row int    `json:"row" yaml:"row" toml:"row"`
	Col int    `json:"col" yaml:"col" toml:"col"`
	Z   sample `json:"z" yaml:"z" toml:"z"`
	F   sample `json:"f" yaml:"f" toml:"f"`
}

// gridReport is the structured grid output.
type gridReport struct {
	Func   string      `json:"func" yaml:"func" toml:"func"`
	Rect   grid.Rect   `json:"rect" yaml:"rect" toml:"rect"`
	Points []gridPoint `json:"points" yaml:"points" toml:"points"`
}

func newGridCmd(a *app) *cobra.Command {
	var (
		rect    grid.Rect
		size    int
		workers int
	)

	c := &cobra.Command{
		Use:   "grid <func>",
		Short: "Sample a function over a rectangle",
		Long: `Evaluates a menu function on a size×size lattice spanning the
rectangle and prints one line per imaginary row (text) or a list of
points (json, yaml, toml). Rows are evaluated concurrently. Poles and
other non-finite samples are written as "NaN", "+Inf" or "-Inf" in json
and as .nan/.inf in yaml.

Examples:
  cplane grid exp --size 5
  cplane grid gamma --re-min=-3 --re-max=3 --size 61 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := plane.ParseFunc(args[0])
			if err != nil {
				return err
			}
			fn, err := plane.Unary(f, a.cfg.GammaOptions()...)
			if err != nil {
				return fmt.Errorf("grid: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("size") {
				a.cfg.Grid.Size = size
			}
			if flags.Changed("workers") {
				a.cfg.Grid.Workers = workers
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			n := a.cfg.Grid.Size
			values, err := grid.Sample(cmd.Context(), fn, rect, a.cfg.GridOptions(a.log.WithField("func", f))...)
			if err != nil {
				return fmt.Errorf("grid: %w", err)
			}

			out := cmd.OutOrStdout()
			if !a.textOutput() {
				report := gridReport{Func: f.String(), Rect: rect, Points: make([]gridPoint, 0, n*n)}
				for j, row := range values {
					for i, w := range row {
						report.Points = append(report.Points, gridPoint{
							Row: j,
							Col: i,
							Z:   newSample(rect.Point(i, j, n, n)),
							F:   newSample(w),
						})
					}
				}
				return a.printValue(out, report)
			}

			cells := make([]string, n)
			for _, row := range values {
				for i, w := range row {
					cells[i] = w.String()
				}
				if _, err := fmt.Fprintln(out, strings.Join(cells, "\t")); err != nil {
					return err
				}
			}

			return nil
		},
	}

	fl := c.Flags()
	fl.Float64Var(&rect.ReMin, "re-min", -2, "lower real bound")
	fl.Float64Var(&rect.ReMax, "re-max", 2, "upper real bound")
	fl.Float64Var(&rect.ImMin, "im-min", -2, "lower imaginary bound")
	fl.Float64Var(&rect.ImMax, "im-max", 2, "upper imaginary bound")
	fl.IntVar(&size, "size", grid.DefaultSize, "samples per axis")
	fl.IntVar(&workers, "workers", 0, "concurrent rows (0 = GOMAXPROCS)")

	return c
}
