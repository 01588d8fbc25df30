package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/katalvlaran/cplane/internal/config"
	"github.com/katalvlaran/cplane/plane"
)

// parseOperand reads a command-line operand: a named constant, complex
// text, or a plain real.
func parseOperand(s string) (cplx.Number, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pi", "π":
		return plane.Pi(), nil
	case "e":
		return plane.E(), nil
	case "i":
		return plane.I(), nil
	}
	if z, err := cplx.ParseStrict(s); err == nil {
		return z, nil
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return cplx.Zero(), fmt.Errorf("%w: %q", cplx.ErrSyntax, s)
	}

	return cplx.FromReal(x), nil
}

func (a *app) textOutput() bool {
	return strings.EqualFold(a.cfg.Output.Format, config.OutputText)
}

// printNumber writes z as text or in the configured structured encoding.
func (a *app) printNumber(w io.Writer, z cplx.Number) error {
	if a.textOutput() {
		_, err := fmt.Fprintln(w, z)
		return err
	}
	enc, err := cplx.ParseEncoding(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	return cplx.Encode(w, z, enc)
}

// printValue writes an arbitrary structured result in the configured
// encoding. Callers handle text output themselves.
func (a *app) printValue(w io.Writer, v any) error {
	enc, err := cplx.ParseEncoding(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	switch enc {
	case cplx.EncodingJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(v)
	case cplx.EncodingYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(v); err != nil {
			return err
		}
		return e.Close()
	case cplx.EncodingTOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("%w: %v", cplx.ErrUnknownFormat, enc)
	}
}
