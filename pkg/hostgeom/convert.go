package hostgeom

import (
	"math"
	"reflect"

	"github.com/twpayne/go-geom"

	"github.com/woozymasta/geocodec/pkg/geo"
)

// ToHost builds the host equivalent of g with the adapter's factory. The host
// layout is XYZ when any position of g has an altitude and XY otherwise.
// Positions without an altitude in an XYZ geometry get a NaN Z. Collection
// members pick their layout independently. A nil g yields a nil result.
func (a *Adapter) ToHost(g geo.Geometry) (geom.T, error) {
	if g == nil {
		return nil, nil
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return a.toHost(g)
}

func (a *Adapter) toHost(g geo.Geometry) (geom.T, error) {
	layout := geom.XY
	if geo.AnyZ(g) {
		layout = geom.XYZ
	}
	f := a.factory

	switch g := g.(type) {
	case geo.Point:
		if g.Position == nil {
			return f.CreatePoint(layout, nil)
		}
		return f.CreatePoint(layout, coord(*g.Position, layout))
	case geo.MultiPoint:
		return f.CreateMultiPoint(layout, coords(g.Positions, layout))
	case geo.LineString:
		return f.CreateLineString(layout, coords(g.Positions, layout))
	case geo.LinearRing:
		return f.CreateLinearRing(layout, coords(g.Positions, layout))
	case geo.MultiLineString:
		lines := make([][]geom.Coord, len(g.LineStrings))
		for i, l := range g.LineStrings {
			lines[i] = coords(l.Positions, layout)
		}
		return f.CreateMultiLineString(layout, lines)
	case geo.Polygon:
		return f.CreatePolygon(layout, rings(g, layout))
	case geo.MultiPolygon:
		polygons := make([][][]geom.Coord, len(g.Polygons))
		for i, p := range g.Polygons {
			polygons[i] = rings(p, layout)
		}
		return f.CreateMultiPolygon(layout, polygons)
	case geo.GeometryCollection:
		members := make([]geom.T, len(g.Geometries))
		for i, m := range g.Geometries {
			h, err := a.toHost(m)
			if err != nil {
				return nil, err
			}
			members[i] = h
		}
		return f.CreateGeometryCollection(members...)
	}
	return nil, geo.NewError(geo.KindUnsupportedHostType, "%T", g)
}

func coord(p geo.Position, layout geom.Layout) geom.Coord {
	if layout == geom.XYZ {
		if !p.HasZ {
			return geom.Coord{p.X, p.Y, math.NaN()}
		}
		return geom.Coord{p.X, p.Y, p.Z}
	}
	return geom.Coord{p.X, p.Y}
}

func coords(ps []geo.Position, layout geom.Layout) []geom.Coord {
	cs := make([]geom.Coord, len(ps))
	for i, p := range ps {
		cs[i] = coord(p, layout)
	}
	return cs
}

func rings(p geo.Polygon, layout geom.Layout) [][]geom.Coord {
	rs := p.Rings()
	out := make([][]geom.Coord, len(rs))
	for i, r := range rs {
		out[i] = coords(r.Positions, layout)
	}
	return out
}

// FromHost converts a host geometry. Measures are dropped and altitudes kept;
// a NaN altitude means the position has none.
// The host SRID is not carried over and no invariants are re-checked here;
// encoding validates. A nil t yields a nil result.
func (a *Adapter) FromHost(t geom.T) (geo.Geometry, error) {
	if t == nil {
		return nil, nil
	}
	return fromHost(t)
}

func fromHost(t geom.T) (geo.Geometry, error) {
	if v := reflect.ValueOf(t); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, nil
	}
	if _, ok := t.(*geom.GeometryCollection); !ok {
		switch l := t.Layout(); l {
		case geom.XY, geom.XYZ, geom.XYM, geom.XYZM:
		default:
			return nil, geo.NewError(geo.KindUnsupportedHostType, "%T has layout %s", t, l)
		}
	}

	switch t := t.(type) {
	case *geom.Point:
		if t.Empty() {
			return geo.Point{}, nil
		}
		p := position(t.Coords(), t.Layout())
		return geo.Point{Position: &p}, nil
	case *geom.MultiPoint:
		cs := t.Coords()
		for i, c := range cs {
			if c == nil {
				return nil, geo.Violation(geo.RuleNilMember, "multipoint member %d is empty", i)
			}
		}
		return geo.MultiPoint{Positions: positions(cs, t.Layout())}, nil
	case *geom.LineString:
		return geo.LineString{Positions: positions(t.Coords(), t.Layout())}, nil
	case *geom.LinearRing:
		return geo.LinearRing{Positions: positions(t.Coords(), t.Layout())}, nil
	case *geom.MultiLineString:
		mls := geo.MultiLineString{}
		for _, cs := range t.Coords() {
			mls.LineStrings = append(mls.LineStrings, geo.LineString{Positions: positions(cs, t.Layout())})
		}
		return mls, nil
	case *geom.Polygon:
		return polygon(t.Coords(), t.Layout()), nil
	case *geom.MultiPolygon:
		mp := geo.MultiPolygon{}
		for _, rs := range t.Coords() {
			mp.Polygons = append(mp.Polygons, polygon(rs, t.Layout()))
		}
		return mp, nil
	case *geom.GeometryCollection:
		gc := geo.GeometryCollection{}
		for i, m := range t.Geoms() {
			if m == nil {
				return nil, geo.Violation(geo.RuleNilMember, "geometry collection member %d", i)
			}
			g, err := fromHost(m)
			if err != nil {
				return nil, err
			}
			if g == nil {
				return nil, geo.Violation(geo.RuleNilMember, "geometry collection member %d", i)
			}
			gc.Geometries = append(gc.Geometries, g)
		}
		return gc, nil
	}
	return nil, geo.NewError(geo.KindUnsupportedHostType, "%T", t)
}

func position(c geom.Coord, layout geom.Layout) geo.Position {
	if zi := layout.ZIndex(); zi >= 0 && zi < len(c) && !math.IsNaN(c[zi]) {
		return geo.XYZ(c[0], c[1], c[zi])
	}
	return geo.XY(c[0], c[1])
}

func positions(cs []geom.Coord, layout geom.Layout) []geo.Position {
	if len(cs) == 0 {
		return nil
	}
	ps := make([]geo.Position, len(cs))
	for i, c := range cs {
		ps[i] = position(c, layout)
	}
	return ps
}

func polygon(rs [][]geom.Coord, layout geom.Layout) geo.Polygon {
	if len(rs) == 0 {
		return geo.Polygon{}
	}
	p := geo.Polygon{Exterior: geo.LinearRing{Positions: positions(rs[0], layout)}}
	for _, r := range rs[1:] {
		p.Holes = append(p.Holes, geo.LinearRing{Positions: positions(r, layout)})
	}
	return p
}
