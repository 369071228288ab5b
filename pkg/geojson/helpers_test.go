package geojson

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/minify/v2"
	jsonmin "github.com/tdewolff/minify/v2/json"

	"github.com/woozymasta/geocodec/pkg/geo"
)

// compact strips insignificant whitespace while leaving numbers untouched.
func compact(t *testing.T, s string) string {
	t.Helper()
	m := minify.New()
	m.Add("application/json", &jsonmin.Minifier{KeepNumbers: true})
	out, err := m.String("application/json", s)
	require.NoError(t, err)
	return out
}

func mustRing(t *testing.T, ps ...geo.Position) geo.LinearRing {
	t.Helper()
	r, err := geo.NewLinearRing(ps...)
	require.NoError(t, err)
	return r
}

func outerRing(t *testing.T) geo.LinearRing {
	return mustRing(t, geo.XY(56.7, 83.6), geo.XY(43.9, 5.8), geo.XY(43.9, 10), geo.XY(56.7, 83.6))
}

func holeRing(t *testing.T) geo.LinearRing {
	return mustRing(t, geo.XY(46.7, 73.6), geo.XY(33.9, 5.8), geo.XY(33.9, 9), geo.XY(46.7, 73.6))
}

func polygonWithHole(t *testing.T) geo.Polygon {
	t.Helper()
	p, err := geo.NewPolygon(outerRing(t), holeRing(t))
	require.NoError(t, err)
	return p
}

func point(t *testing.T, x, y float64) geo.Point {
	t.Helper()
	p, err := geo.NewPoint(geo.XY(x, y))
	require.NoError(t, err)
	return p
}

// samples covers every variant, populated.
func samples(t *testing.T) map[string]geo.Geometry {
	t.Helper()
	ls, err := geo.NewLineString(geo.XY(56.7, 83.6), geo.XY(43.9, 5.8))
	require.NoError(t, err)
	ls3, err := geo.NewLineString(geo.XYZ(1, 2, 3), geo.XYZ(4, 5, 6))
	require.NoError(t, err)
	mp, err := geo.NewMultiPoint(geo.XY(56.7, 83.6), geo.XY(43.9, 5.8))
	require.NoError(t, err)
	mls, err := geo.NewMultiLineString(ls, ls3)
	require.NoError(t, err)
	mpoly, err := geo.NewMultiPolygon(polygonWithHole(t), polygonWithHole(t))
	require.NoError(t, err)
	inner, err := geo.NewGeometryCollection(point(t, 1, 2), ls)
	require.NoError(t, err)
	gc, err := geo.NewGeometryCollection(point(t, 56.7, 83.6), inner, geo.MultiPolygon{})
	require.NoError(t, err)

	return map[string]geo.Geometry{
		"point":              point(t, 56.7, 83.6),
		"point z":            geo.Point{Position: &geo.Position{X: 1, Y: 2, Z: 3, HasZ: true}},
		"multipoint":         mp,
		"linestring":         ls,
		"linestring z":       ls3,
		"multilinestring":    mls,
		"linearring":         outerRing(t),
		"polygon":            polygonWithHole(t),
		"multipolygon":       mpoly,
		"geometrycollection": gc,
		"subnormal":          point(t, 5e-324, -2.2250738585072014e-308),
	}
}
