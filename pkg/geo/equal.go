package geo

// Equal reports whether a and b are the same variant with bitwise equal
// positions in the same order. Two nil geometries are equal.
func Equal(a, b Geometry) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a := a.(type) {
	case Point:
		b := b.(Point)
		if a.Position == nil || b.Position == nil {
			return a.Position == nil && b.Position == nil
		}
		return a.Position.Equal(*b.Position)
	case MultiPoint:
		return positionsEqual(a.Positions, b.(MultiPoint).Positions)
	case LineString:
		return positionsEqual(a.Positions, b.(LineString).Positions)
	case LinearRing:
		return positionsEqual(a.Positions, b.(LinearRing).Positions)
	case MultiLineString:
		b := b.(MultiLineString)
		if len(a.LineStrings) != len(b.LineStrings) {
			return false
		}
		for i := range a.LineStrings {
			if !positionsEqual(a.LineStrings[i].Positions, b.LineStrings[i].Positions) {
				return false
			}
		}
		return true
	case Polygon:
		return polygonsEqual(a, b.(Polygon))
	case MultiPolygon:
		b := b.(MultiPolygon)
		if len(a.Polygons) != len(b.Polygons) {
			return false
		}
		for i := range a.Polygons {
			if !polygonsEqual(a.Polygons[i], b.Polygons[i]) {
				return false
			}
		}
		return true
	case GeometryCollection:
		b := b.(GeometryCollection)
		if len(a.Geometries) != len(b.Geometries) {
			return false
		}
		for i := range a.Geometries {
			if !Equal(a.Geometries[i], b.Geometries[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func polygonsEqual(a, b Polygon) bool {
	if !positionsEqual(a.Exterior.Positions, b.Exterior.Positions) || len(a.Holes) != len(b.Holes) {
		return false
	}
	for i := range a.Holes {
		if !positionsEqual(a.Holes[i].Positions, b.Holes[i].Positions) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of g sharing no slices with it.
func Clone(g Geometry) Geometry {
	switch g := g.(type) {
	case Point:
		if g.Position == nil {
			return Point{}
		}
		p := *g.Position
		return Point{Position: &p}
	case MultiPoint:
		return MultiPoint{Positions: clonePositions(g.Positions)}
	case LineString:
		return LineString{Positions: clonePositions(g.Positions)}
	case LinearRing:
		return LinearRing{Positions: clonePositions(g.Positions)}
	case MultiLineString:
		out := MultiLineString{}
		for _, l := range g.LineStrings {
			out.LineStrings = append(out.LineStrings, LineString{Positions: clonePositions(l.Positions)})
		}
		return out
	case Polygon:
		out := Polygon{Exterior: LinearRing{Positions: clonePositions(g.Exterior.Positions)}}
		for _, h := range g.Holes {
			out.Holes = append(out.Holes, LinearRing{Positions: clonePositions(h.Positions)})
		}
		return out
	case MultiPolygon:
		out := MultiPolygon{}
		for _, p := range g.Polygons {
			out.Polygons = append(out.Polygons, Clone(p).(Polygon))
		}
		return out
	case GeometryCollection:
		out := GeometryCollection{}
		for _, m := range g.Geometries {
			out.Geometries = append(out.Geometries, Clone(m))
		}
		return out
	}
	return nil
}

// HasZ reports whether g has at least one position and every position
// carries an altitude.
func HasZ(g Geometry) bool {
	seen := false
	all := true
	Walk(g, func(p Position) {
		seen = true
		all = all && p.HasZ
	})
	return seen && all
}

// AnyZ reports whether at least one position of g carries an altitude.
func AnyZ(g Geometry) bool {
	found := false
	Walk(g, func(p Position) {
		found = found || p.HasZ
	})
	return found
}

// Walk calls fn for every position of g in document order.
func Walk(g Geometry, fn func(Position)) {
	each := func(ps []Position) {
		for _, p := range ps {
			fn(p)
		}
	}
	switch g := g.(type) {
	case Point:
		if g.Position != nil {
			fn(*g.Position)
		}
	case MultiPoint:
		each(g.Positions)
	case LineString:
		each(g.Positions)
	case LinearRing:
		each(g.Positions)
	case MultiLineString:
		for _, l := range g.LineStrings {
			each(l.Positions)
		}
	case Polygon:
		for _, r := range g.Rings() {
			each(r.Positions)
		}
	case MultiPolygon:
		for _, p := range g.Polygons {
			Walk(p, fn)
		}
	case GeometryCollection:
		for _, m := range g.Geometries {
			Walk(m, fn)
		}
	}
}
