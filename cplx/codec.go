package cplx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Record is the structured form of a Number: two named numeric fields.
// Hosts persist this shape and rebuild the value with FromRecord.
type Record struct {
	RE float64 `json:"RE" yaml:"RE" toml:"RE"`
	IM float64 `json:"IM" yaml:"IM" toml:"IM"`
}

// Record returns the structured form of z.
func (z Number) Record() Record {
	return Record{RE: z.re, IM: z.im}
}

// FromRecord rebuilds a Number from its structured form.
func FromRecord(r Record) Number {
	return FromRealImag(r.RE, r.IM)
}

// MarshalJSON encodes z as {"RE":re,"IM":im}. NaN and ±Inf are not
// representable in JSON and make encoding fail.
func (z Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(z.Record())
}

// UnmarshalJSON decodes {"RE":re,"IM":im}; missing fields are zero.
func (z *Number) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*z = FromRecord(r)

	return nil
}

// MarshalYAML encodes z as a mapping with RE and IM keys.
// YAML carries .nan and ±.inf, so every Number is representable.
func (z Number) MarshalYAML() (interface{}, error) {
	return z.Record(), nil
}

// UnmarshalYAML decodes a mapping with RE and IM keys.
func (z *Number) UnmarshalYAML(node *yaml.Node) error {
	var r Record
	if err := node.Decode(&r); err != nil {
		return err
	}
	*z = FromRecord(r)

	return nil
}

// Encoding selects a structured serialization format.
type Encoding int

const (
	// EncodingJSON writes {"RE":..,"IM":..}.
	EncodingJSON Encoding = iota

	// EncodingYAML writes a two-key YAML mapping.
	EncodingYAML

	// EncodingTOML writes two top-level TOML keys.
	EncodingTOML
)

// String returns the lowercase encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingYAML:
		return "yaml"
	case EncodingTOML:
		return "toml"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding maps "json", "yaml"/"yml" and "toml" (case-insensitive)
// to an Encoding.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return EncodingJSON, nil
	case "yaml", "yml":
		return EncodingYAML, nil
	case "toml":
		return EncodingTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode writes the structured form of z to w.
func Encode(w io.Writer, z Number, enc Encoding) error {
	switch enc {
	case EncodingJSON:
		return json.NewEncoder(w).Encode(z.Record())
	case EncodingYAML:
		e := yaml.NewEncoder(w)
		if err := e.Encode(z.Record()); err != nil {
			return err
		}
		return e.Close()
	case EncodingTOML:
		return toml.NewEncoder(w).Encode(z.Record())
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, enc)
	}
}

// Marshal returns the structured form of z as bytes.
func Marshal(z Number, enc Encoding) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, z, enc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decode reads a structured Number from data.
func Decode(data []byte, enc Encoding) (Number, error) {
	var r Record
	switch enc {
	case EncodingJSON:
		if err := json.Unmarshal(data, &r); err != nil {
			return Zero(), fmt.Errorf("cplx: decode json: %w", err)
		}
	case EncodingYAML:
		if err := yaml.Unmarshal(data, &r); err != nil {
			return Zero(), fmt.Errorf("cplx: decode yaml: %w", err)
		}
	case EncodingTOML:
		if _, err := toml.Decode(string(data), &r); err != nil {
			return Zero(), fmt.Errorf("cplx: decode toml: %w", err)
		}
	default:
		return Zero(), fmt.Errorf("%w: %v", ErrUnknownFormat, enc)
	}

	return FromRecord(r), nil
}
