package hostgeom

import (
	"github.com/twpayne/go-geom"
)

// Factory creates host geometries that share one SRID and precision model.
// Coordinates passed to the Create methods are copied with X and Y made
// precise; Z and M are kept as given.
type Factory interface {
	SRID() int
	PrecisionModel() PrecisionModel

	// CreatePoint returns an empty point when c is nil.
	CreatePoint(layout geom.Layout, c geom.Coord) (*geom.Point, error)
	CreateLineString(layout geom.Layout, cs []geom.Coord) (*geom.LineString, error)
	CreateLinearRing(layout geom.Layout, cs []geom.Coord) (*geom.LinearRing, error)
	CreatePolygon(layout geom.Layout, rings [][]geom.Coord) (*geom.Polygon, error)
	CreateMultiPoint(layout geom.Layout, cs []geom.Coord) (*geom.MultiPoint, error)
	CreateMultiLineString(layout geom.Layout, lines [][]geom.Coord) (*geom.MultiLineString, error)
	CreateMultiPolygon(layout geom.Layout, polygons [][][]geom.Coord) (*geom.MultiPolygon, error)
	CreateGeometryCollection(members ...geom.T) (*geom.GeometryCollection, error)
}

// GeometryFactory is the stock Factory implementation.
type GeometryFactory struct {
	pm   PrecisionModel
	srid int
}

var _ Factory = (*GeometryFactory)(nil)

// NewGeometryFactory returns a factory stamping srid on every geometry it
// creates and rounding with pm.
func NewGeometryFactory(pm PrecisionModel, srid int) *GeometryFactory {
	return &GeometryFactory{pm: pm, srid: srid}
}

// DefaultFactory has SRID 0 and floating precision.
func DefaultFactory() *GeometryFactory {
	return NewGeometryFactory(FloatingPrecision(), 0)
}

func (f *GeometryFactory) SRID() int                      { return f.srid }
func (f *GeometryFactory) PrecisionModel() PrecisionModel { return f.pm }

func (f *GeometryFactory) CreatePoint(layout geom.Layout, c geom.Coord) (*geom.Point, error) {
	if c == nil {
		return geom.NewPointEmpty(layout).SetSRID(f.srid), nil
	}
	g, err := geom.NewPoint(layout).SetCoords(f.coord(c))
	if err != nil {
		return nil, err
	}
	return g.SetSRID(f.srid), nil
}

func (f *GeometryFactory) CreateLineString(layout geom.Layout, cs []geom.Coord) (*geom.LineString, error) {
	g, err := geom.NewLineString(layout).SetCoords(f.coords(cs))
	if err != nil {
		return nil, err
	}
	return g.SetSRID(f.srid), nil
}

func (f *GeometryFactory) CreateLinearRing(layout geom.Layout, cs []geom.Coord) (*geom.LinearRing, error) {
	g, err := geom.NewLinearRing(layout).SetCoords(f.coords(cs))
	if err != nil {
		return nil, err
	}
	return g.SetSRID(f.srid), nil
}

func (f *GeometryFactory) CreatePolygon(layout geom.Layout, rings [][]geom.Coord) (*geom.Polygon, error) {
	g, err := geom.NewPolygon(layout).SetCoords(f.coords2(rings))
	if err != nil {
		return nil, err
	}
	return g.SetSRID(f.srid), nil
}

func (f *GeometryFactory) CreateMultiPoint(layout geom.Layout, cs []geom.Coord) (*geom.MultiPoint, error) {
	g, err := geom.NewMultiPoint(layout).SetCoords(f.coords(cs))
	if err != nil {
		return nil, err
	}
	return g.SetSRID(f.srid), nil
}

func (f *GeometryFactory) CreateMultiLineString(layout geom.Layout, lines [][]geom.Coord) (*geom.MultiLineString, error) {
	g, err := geom.NewMultiLineString(layout).SetCoords(f.coords2(lines))
	if err != nil {
		return nil, err
	}
	return g.SetSRID(f.srid), nil
}

func (f *GeometryFactory) CreateMultiPolygon(layout geom.Layout, polygons [][][]geom.Coord) (*geom.MultiPolygon, error) {
	css := make([][][]geom.Coord, len(polygons))
	for i, p := range polygons {
		css[i] = f.coords2(p)
	}
	g, err := geom.NewMultiPolygon(layout).SetCoords(css)
	if err != nil {
		return nil, err
	}
	return g.SetSRID(f.srid), nil
}

// CreateGeometryCollection pushes members as given; they keep their own SRID.
func (f *GeometryFactory) CreateGeometryCollection(members ...geom.T) (*geom.GeometryCollection, error) {
	g := geom.NewGeometryCollection()
	if err := g.Push(members...); err != nil {
		return nil, err
	}
	return g.SetSRID(f.srid), nil
}

func (f *GeometryFactory) coord(c geom.Coord) geom.Coord {
	out := make(geom.Coord, len(c))
	copy(out, c)
	for i := 0; i < len(out) && i < 2; i++ {
		out[i] = f.pm.MakePrecise(out[i])
	}
	return out
}

func (f *GeometryFactory) coords(cs []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(cs))
	for i, c := range cs {
		out[i] = f.coord(c)
	}
	return out
}

func (f *GeometryFactory) coords2(css [][]geom.Coord) [][]geom.Coord {
	out := make([][]geom.Coord, len(css))
	for i, cs := range css {
		out[i] = f.coords(cs)
	}
	return out
}
