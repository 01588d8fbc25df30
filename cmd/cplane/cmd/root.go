package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cplane/internal/config"
	"github.com/katalvlaran/cplane/plane"
)

// app carries the flag values and the state built from them before any
// subcommand runs.
type app struct {
	cfgFile  string
	verbose  bool
	logLevel string
	output   string
	method   string
	terms    int

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCmd assembles the cplane command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "cplane",
		Short: "Complex-plane arithmetic and Gamma engine",
		Long: `cplane evaluates complex arithmetic, elementary functions and the
Gamma function (Lanczos or Weierstrass series) from the command line.

Operands are written "<re><+|-><im>i" (e.g. 3-4i), as plain reals (2.5)
or as one of the constants pi, e and i. Put "--" before a leading
negative operand so it is not taken for a flag:

  cplane eval 3+4i x 1-2i
  cplane fn arcsin 0.5+1i
  cplane gamma --method series 1+1i
  cplane grid gamma --size 41 --re-min=-3 --re-max=3
  cplane eval -- -1 ^ 0.5`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVarP(&a.output, "output", "o", "", "output format: text, json, yaml or toml")
	pf.StringVar(&a.method, "method", "", "gamma method: lanczos or series")
	pf.IntVar(&a.terms, "terms", 0, "number of gamma series terms")

	root.AddCommand(
		newEvalCmd(a),
		newDefineCmd(a),
		newCompareCmd(a),
		newFnCmd(a),
		newGammaCmd(a),
		newCoeffsCmd(a),
		newGridCmd(a),
		newEncodeCmd(a),
		newDecodeCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree; SIGINT cancels long-running commands.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}
	if flags.Changed("method") {
		cfg.Gamma.Method = a.method
	}
	if flags.Changed("terms") {
		cfg.Gamma.SeriesTerms = a.terms
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = setupLogger(cmd.ErrOrStderr(), cfg.Level(), a.verbose)
	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  a.cfgFile,
		"method":  cfg.Gamma.Method,
		"output":  cfg.Output.Format,
	}).Debug("configuration loaded")

	return nil
}

// calculator returns a plane.Calculator using the configured Gamma options.
func (a *app) calculator() *plane.Calculator {
	return plane.New(a.cfg.GammaOptions()...)
}

func setupLogger(w io.Writer, level logrus.Level, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return logger
}
