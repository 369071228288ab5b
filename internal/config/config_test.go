package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/woozymasta/geocodec/pkg/geojson"
	"github.com/woozymasta/geocodec/pkg/hostgeom"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
srid: 32633
precision:
  type: fixed
  scale: 100
pascal_case: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32633, cfg.SRID)
	assert.Equal(t, geojson.DefaultMaxDepth, cfg.MaxDepth)
	assert.True(t, cfg.PascalCase)

	f, err := cfg.Factory()
	require.NoError(t, err)
	assert.Equal(t, 32633, f.SRID())
	assert.Equal(t, hostgeom.FixedPrecision(100), f.PrecisionModel())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	f, err := cfg.Factory()
	require.NoError(t, err)
	assert.Equal(t, 0, f.SRID())
	assert.Equal(t, hostgeom.FloatingPrecision(), f.PrecisionModel())
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":         "srid: [",
		"unknown model":  "precision: {type: double}",
		"fixed no scale": "precision: {type: fixed}",
		"negative depth": "max_depth: -1",
		"negative srid":  "srid: -4326",
		"bad indent":     "indent: '--'",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(text))
			assert.Error(t, err)
		})
	}
}

func TestAdapter(t *testing.T) {
	cfg, err := Parse([]byte(`
srid: 4326
max_depth: 1
pascal_case: true
indent: "  "
`))
	require.NoError(t, err)

	a, err := cfg.Adapter()
	require.NoError(t, err)
	assert.Equal(t, 4326, a.Factory().SRID())

	p, err := a.Factory().CreatePoint(geom.XY, geom.Coord{1, 2})
	require.NoError(t, err)
	out, err := a.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"type\": \"Point\",\n  \"coordinates\": [\n    1,\n    2\n  ]\n}", string(out))

	_, err = a.Unmarshal([]byte(`{"type":"GeometryCollection","geometries":[{"type":"GeometryCollection","geometries":[]}]}`))
	assert.Error(t, err, "max_depth 1 rejects nested collections")
}
