package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/geocodec/pkg/geo"
)

func defaultOptions() Options {
	return Options{Format: "geojson", SRID: -1}
}

func TestRunStream(t *testing.T) {
	in := strings.NewReader(`
		{"type": "Point", "coordinates": [1.234, 5.678]}
		null
		{"coordinates": [[0,0],[1,0],[1,1],[0,0]], "type": "LinearRing"}
	`)
	var out bytes.Buffer

	opts := defaultOptions()
	opts.Precision = "fixed"
	opts.Scale = 10
	require.NoError(t, run(opts, in, &out))

	assert.Equal(t,
		"{\"type\":\"point\",\"coordinates\":[1.2,5.7]}\n"+
			"null\n"+
			"{\"type\":\"linearring\",\"coordinates\":[[0,0],[1,0],[1,1],[0,0]]}\n",
		out.String())
}

func TestRunEmptyInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(defaultOptions(), strings.NewReader("  \n"), &out))
	assert.Empty(t, out.String())
}

func TestRunWKT(t *testing.T) {
	var out bytes.Buffer
	opts := defaultOptions()
	opts.Format = "wkt"

	in := strings.NewReader(`{"type":"multipoint","coordinates":[[1,2],[3,4]]}`)
	require.NoError(t, run(opts, in, &out))
	assert.Equal(t, "MULTIPOINT (1 2, 3 4)\n", out.String())
}

func TestRunPascalIndent(t *testing.T) {
	var out bytes.Buffer
	opts := defaultOptions()
	opts.Pascal = true
	opts.Indent = "  "

	require.NoError(t, run(opts, strings.NewReader(`{"type":"point","coordinates":[]}`), &out))
	assert.Equal(t, "{\n  \"type\": \"Point\",\n  \"coordinates\": []\n}\n", out.String())
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("srid: 4326\nprecision: {type: fixed, scale: 1}\n"), 0o644))

	opts := defaultOptions()
	opts.ConfigFile = path

	cfg, err := configure(opts)
	require.NoError(t, err)
	assert.Equal(t, 4326, cfg.SRID)

	opts.SRID = 3857
	cfg, err = configure(opts)
	require.NoError(t, err)
	assert.Equal(t, 3857, cfg.SRID)

	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(`{"type":"point","coordinates":[1.4,2.6]}`), &out))
	assert.Equal(t, "{\"type\":\"point\",\"coordinates\":[1,3]}\n", out.String())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		opts  func(*Options)
		input string
		kind  geo.ErrorKind
	}{
		{"open ring", nil, `{"type":"linearring","coordinates":[[0,0],[1,0],[1,1]]}`, geo.KindInvariantViolation},
		{"second value broken", nil, `{"type":"point","coordinates":[1,2]} {"type":"point"}`, geo.KindMissingCoordinates},
		{"unknown type", nil, `{"type":"circle","coordinates":[1,2]}`, geo.KindUnknownGeometryType},
		{"short position", nil, `{"type":"point","coordinates":[1]}`, geo.KindMalformedPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			err := run(opts, strings.NewReader(tt.input), &bytes.Buffer{})
			require.Error(t, err)
			assert.ErrorIs(t, err, &geo.Error{Kind: tt.kind})
		})
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	opts := defaultOptions()
	opts.Precision = "fixed"
	assert.Error(t, run(opts, strings.NewReader("null"), &bytes.Buffer{}))

	opts = defaultOptions()
	opts.Indent = "--"
	assert.Error(t, run(opts, strings.NewReader("null"), &bytes.Buffer{}))

	opts = defaultOptions()
	opts.ConfigFile = filepath.Join(t.TempDir(), "missing.yaml")
	assert.ErrorIs(t, run(opts, strings.NewReader("null"), &bytes.Buffer{}), os.ErrNotExist)

	opts = defaultOptions()
	opts.Format = "wkt"
	assert.Error(t, run(opts, strings.NewReader("null"), &bytes.Buffer{}))
}
