package cplx_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/cplane/cplx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestRecord verifies the RE/IM structured form.
func TestRecord(t *testing.T) {
	z := cplx.FromRealImag(3, -4)
	r := z.Record()
	assert.Equal(t, cplx.Record{RE: 3, IM: -4}, r)
	assert.True(t, cplx.FromRecord(r).Equal(z))
}

// TestJSON covers the json.Marshaler implementation.
func TestJSON(t *testing.T) {
	z := cplx.FromRealImag(3, -4)
	data, err := json.Marshal(z)
	require.NoError(t, err)
	assert.JSONEq(t, `{"RE":3,"IM":-4}`, string(data))

	var back cplx.Number
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(z))

	// Embedded in a document.
	type doc struct {
		Z cplx.Number `json:"z"`
	}
	data, err = json.Marshal(doc{Z: cplx.I()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":{"RE":0,"IM":1}}`, string(data))

	// NaN cannot be carried by JSON.
	_, err = json.Marshal(cplx.FromRealImag(math.NaN(), 0))
	assert.Error(t, err)
}

// TestYAML covers the yaml.Marshaler implementation, NaN included.
func TestYAML(t *testing.T) {
	type doc struct {
		Z cplx.Number `yaml:"z"`
	}
	in := doc{Z: cplx.FromRealImag(math.NaN(), math.Inf(-1))}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "RE: .nan")

	var out doc
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.True(t, math.IsNaN(out.Z.Real()))
	assert.True(t, math.IsInf(out.Z.Imag(), -1))
}

// TestEncodeDecode round-trips every encoding.
func TestEncodeDecode(t *testing.T) {
	z := cplx.FromRealImag(-1.25, 7.5)
	for _, enc := range []cplx.Encoding{cplx.EncodingJSON, cplx.EncodingYAML, cplx.EncodingTOML} {
		t.Run(enc.String(), func(t *testing.T) {
			data, err := cplx.Marshal(z, enc)
			require.NoError(t, err)
			assert.Contains(t, string(data), "RE")
			assert.Contains(t, string(data), "IM")

			back, err := cplx.Decode(data, enc)
			require.NoError(t, err)
			assert.True(t, back.Equal(z), "decoded %v", back)
		})
	}
}

// TestEncode_TOMLNaN verifies TOML keeps non-finite components.
func TestEncode_TOMLNaN(t *testing.T) {
	data, err := cplx.Marshal(cplx.FromRealImag(math.NaN(), math.Inf(1)), cplx.EncodingTOML)
	require.NoError(t, err)

	back, err := cplx.Decode(data, cplx.EncodingTOML)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(back.Real()))
	assert.True(t, math.IsInf(back.Imag(), 1))
}

// TestEncoding_Errors covers unknown encodings and malformed input.
func TestEncoding_Errors(t *testing.T) {
	_, err := cplx.ParseEncoding("xml")
	assert.ErrorIs(t, err, cplx.ErrUnknownFormat)

	enc, err := cplx.ParseEncoding(" YML ")
	require.NoError(t, err)
	assert.Equal(t, cplx.EncodingYAML, enc)

	var sb strings.Builder
	assert.ErrorIs(t, cplx.Encode(&sb, cplx.One(), cplx.Encoding(9)), cplx.ErrUnknownFormat)
	_, err = cplx.Decode([]byte("{}"), cplx.Encoding(9))
	assert.ErrorIs(t, err, cplx.ErrUnknownFormat)

	_, err = cplx.Decode([]byte("{not json"), cplx.EncodingJSON)
	assert.Error(t, err)
	_, err = cplx.Decode([]byte("RE = = 1"), cplx.EncodingTOML)
	assert.Error(t, err)
}
