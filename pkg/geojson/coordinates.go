package geojson

import (
	"math"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/woozymasta/geocodec/pkg/geo"
)

// shape parses a captured coordinates value according to the nesting that t
// prescribes and validates the result.
func (r *reader) shape(t geo.Type) (geo.Geometry, error) {
	var (
		g   geo.Geometry
		err error
	)
	switch t {
	case geo.TypePoint:
		g, err = r.point()
	case geo.TypeMultiPoint:
		var ps []geo.Position
		ps, err = r.positions()
		g = geo.MultiPoint{Positions: ps}
	case geo.TypeLineString:
		var ps []geo.Position
		ps, err = r.positions()
		g = geo.LineString{Positions: ps}
	case geo.TypeLinearRing:
		var ps []geo.Position
		ps, err = r.positions()
		g = geo.LinearRing{Positions: ps}
	case geo.TypeMultiLineString:
		var pss [][]geo.Position
		pss, err = r.positions2()
		mls := geo.MultiLineString{}
		for _, ps := range pss {
			mls.LineStrings = append(mls.LineStrings, geo.LineString{Positions: ps})
		}
		g = mls
	case geo.TypePolygon:
		var pss [][]geo.Position
		if pss, err = r.positions2(); err == nil {
			g, err = r.polygon(pss)
		}
	case geo.TypeMultiPolygon:
		var psss [][][]geo.Position
		psss, err = r.positions3()
		mp := geo.MultiPolygon{}
		for _, pss := range psss {
			if err != nil {
				break
			}
			var p geo.Polygon
			p, err = r.polygon(pss)
			mp.Polygons = append(mp.Polygons, p)
		}
		g = mp
	default:
		return nil, r.errorf(geo.KindUnknownGeometryType, "%s has no coordinates shape", t)
	}
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, r.locate(err)
	}
	return g, nil
}

// polygon splits rings into exterior and holes. An empty ring inside a
// polygon is a violation even though a standalone empty ring is not.
func (r *reader) polygon(rings [][]geo.Position) (geo.Polygon, error) {
	if len(rings) == 0 {
		return geo.Polygon{}, nil
	}
	for i, ring := range rings {
		if len(ring) == 0 {
			return geo.Polygon{}, r.locate(geo.Violation(geo.RuleRingArity, "polygon ring %d is empty", i))
		}
	}
	p := geo.Polygon{Exterior: geo.LinearRing{Positions: rings[0]}}
	for _, h := range rings[1:] {
		p.Holes = append(p.Holes, geo.LinearRing{Positions: h})
	}
	return p, nil
}

// point reads a single position, or an empty array for the empty point.
func (r *reader) point() (geo.Geometry, error) {
	vals, err := r.numbers()
	if err != nil {
		return nil, err
	}
	switch len(vals) {
	case 0:
		return geo.Point{}, nil
	case 1:
		return nil, r.errorf(geo.KindMalformedPosition, "position has 1 number, need at least 2")
	}
	p := position(vals)
	return geo.Point{Position: &p}, nil
}

func (r *reader) positions() ([]geo.Position, error) {
	var ps []geo.Position
	err := r.array(func() error {
		p, err := r.position()
		if err != nil {
			return err
		}
		ps = append(ps, p)
		return nil
	})
	return ps, err
}

func (r *reader) positions2() ([][]geo.Position, error) {
	var pss [][]geo.Position
	err := r.array(func() error {
		ps, err := r.positions()
		if err != nil {
			return err
		}
		pss = append(pss, ps)
		return nil
	})
	return pss, err
}

func (r *reader) positions3() ([][][]geo.Position, error) {
	var psss [][][]geo.Position
	err := r.array(func() error {
		pss, err := r.positions2()
		if err != nil {
			return err
		}
		psss = append(psss, pss)
		return nil
	})
	return psss, err
}

// position reads one [x, y] or [x, y, z, ...] array.
func (r *reader) position() (geo.Position, error) {
	vals, err := r.numbers()
	if err != nil {
		return geo.Position{}, err
	}
	if len(vals) < 2 {
		return geo.Position{}, r.errorf(geo.KindMalformedPosition, "position has %d numbers, need at least 2", len(vals))
	}
	return position(vals), nil
}

// numbers reads an array of numbers, keeping at most the first three.
func (r *reader) numbers() ([]float64, error) {
	vals := make([]float64, 0, 3)
	n := 0
	err := r.array(func() error {
		switch k := r.dec.PeekKind(); k {
		case jsontext.KindNumber:
		case jsontext.KindInvalid:
			_, err := r.readToken()
			return err
		default:
			return r.errorf(geo.KindMalformedPosition, "position element %d is %s, not a number", n, k)
		}
		tok, err := r.readToken()
		if err != nil {
			return err
		}
		v, err := tok.Float()
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			e := r.errorf(geo.KindNumberOutOfRange, "position element %d", n)
			e.Err = err
			return e
		}
		if n < 3 {
			vals = append(vals, v)
		}
		n++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if n > 3 {
		r.codec.log.Debug().
			Int("dimensions", n).
			Str("pointer", r.pointer()).
			Msg("Dropping position dimensions beyond altitude")
	}
	return vals, nil
}

func position(vals []float64) geo.Position {
	if len(vals) >= 3 {
		return geo.XYZ(vals[0], vals[1], vals[2])
	}
	return geo.XY(vals[0], vals[1])
}
