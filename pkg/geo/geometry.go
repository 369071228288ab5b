package geo

// Geometry is the closed set of variants below. A nil Geometry is the absent
// geometry and is distinct from an empty one.
type Geometry interface {
	Type() Type
	IsEmpty() bool
	Validate() error

	sealed()
}

// Point holds a single position; a nil Position is the empty point.
type Point struct {
	Position *Position
}

// MultiPoint is an ordered set of positions.
type MultiPoint struct {
	Positions []Position
}

// LineString is an open chain of zero or at least two positions.
type LineString struct {
	Positions []Position
}

// MultiLineString is an ordered set of non-empty line strings.
type MultiLineString struct {
	LineStrings []LineString
}

// LinearRing is a closed chain of zero or at least four positions.
type LinearRing struct {
	Positions []Position
}

// Polygon is an exterior ring with optional holes. The zero value is the
// empty polygon.
type Polygon struct {
	Exterior LinearRing
	Holes    []LinearRing
}

// MultiPolygon is an ordered set of polygons.
type MultiPolygon struct {
	Polygons []Polygon
}

// GeometryCollection is an ordered, possibly nested, set of geometries.
type GeometryCollection struct {
	Geometries []Geometry
}

func (Point) Type() Type              { return TypePoint }
func (MultiPoint) Type() Type         { return TypeMultiPoint }
func (LineString) Type() Type         { return TypeLineString }
func (MultiLineString) Type() Type    { return TypeMultiLineString }
func (LinearRing) Type() Type         { return TypeLinearRing }
func (Polygon) Type() Type            { return TypePolygon }
func (MultiPolygon) Type() Type       { return TypeMultiPolygon }
func (GeometryCollection) Type() Type { return TypeGeometryCollection }

func (g Point) IsEmpty() bool              { return g.Position == nil }
func (g MultiPoint) IsEmpty() bool         { return len(g.Positions) == 0 }
func (g LineString) IsEmpty() bool         { return len(g.Positions) == 0 }
func (g MultiLineString) IsEmpty() bool    { return len(g.LineStrings) == 0 }
func (g LinearRing) IsEmpty() bool         { return len(g.Positions) == 0 }
func (g Polygon) IsEmpty() bool            { return g.Exterior.IsEmpty() && len(g.Holes) == 0 }
func (g MultiPolygon) IsEmpty() bool       { return len(g.Polygons) == 0 }
func (g GeometryCollection) IsEmpty() bool { return len(g.Geometries) == 0 }

func (Point) sealed()              {}
func (MultiPoint) sealed()         {}
func (LineString) sealed()         {}
func (MultiLineString) sealed()    {}
func (LinearRing) sealed()         {}
func (Polygon) sealed()            {}
func (MultiPolygon) sealed()       {}
func (GeometryCollection) sealed() {}

// Rings returns the exterior followed by the holes, or nil for an empty
// polygon.
func (g Polygon) Rings() []LinearRing {
	if g.IsEmpty() {
		return nil
	}
	rings := make([]LinearRing, 0, 1+len(g.Holes))
	rings = append(rings, g.Exterior)
	return append(rings, g.Holes...)
}

// Empty returns the empty value of variant t, or nil for an invalid tag.
func Empty(t Type) Geometry {
	switch t {
	case TypePoint:
		return Point{}
	case TypeMultiPoint:
		return MultiPoint{}
	case TypeLineString:
		return LineString{}
	case TypeMultiLineString:
		return MultiLineString{}
	case TypeLinearRing:
		return LinearRing{}
	case TypePolygon:
		return Polygon{}
	case TypeMultiPolygon:
		return MultiPolygon{}
	case TypeGeometryCollection:
		return GeometryCollection{}
	}
	return nil
}

// NewPoint returns a point at p.
func NewPoint(p Position) (Point, error) {
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return Point{Position: &p}, nil
}

// NewMultiPoint returns a multi point over a copy of ps.
func NewMultiPoint(ps ...Position) (MultiPoint, error) {
	g := MultiPoint{Positions: clonePositions(ps)}
	if err := g.Validate(); err != nil {
		return MultiPoint{}, err
	}
	return g, nil
}

// NewLineString returns a line string over a copy of ps.
func NewLineString(ps ...Position) (LineString, error) {
	g := LineString{Positions: clonePositions(ps)}
	if err := g.Validate(); err != nil {
		return LineString{}, err
	}
	return g, nil
}

// NewMultiLineString returns a multi line string over copies of ls.
func NewMultiLineString(ls ...LineString) (MultiLineString, error) {
	g := MultiLineString{}
	for _, l := range ls {
		g.LineStrings = append(g.LineStrings, LineString{Positions: clonePositions(l.Positions)})
	}
	if err := g.Validate(); err != nil {
		return MultiLineString{}, err
	}
	return g, nil
}

// NewLinearRing returns a ring over a copy of ps.
func NewLinearRing(ps ...Position) (LinearRing, error) {
	g := LinearRing{Positions: clonePositions(ps)}
	if err := g.Validate(); err != nil {
		return LinearRing{}, err
	}
	return g, nil
}

// NewPolygon returns a polygon with the given exterior and holes.
func NewPolygon(exterior LinearRing, holes ...LinearRing) (Polygon, error) {
	g := Polygon{Exterior: LinearRing{Positions: clonePositions(exterior.Positions)}}
	for _, h := range holes {
		g.Holes = append(g.Holes, LinearRing{Positions: clonePositions(h.Positions)})
	}
	if err := g.Validate(); err != nil {
		return Polygon{}, err
	}
	return g, nil
}

// NewMultiPolygon returns a multi polygon over copies of ps.
func NewMultiPolygon(ps ...Polygon) (MultiPolygon, error) {
	g := MultiPolygon{}
	for _, p := range ps {
		g.Polygons = append(g.Polygons, Clone(p).(Polygon))
	}
	if err := g.Validate(); err != nil {
		return MultiPolygon{}, err
	}
	return g, nil
}

// NewGeometryCollection returns a collection over copies of gs.
func NewGeometryCollection(gs ...Geometry) (GeometryCollection, error) {
	g := GeometryCollection{}
	for _, m := range gs {
		if m == nil {
			return GeometryCollection{}, Violation(RuleNilMember, "geometry collection member")
		}
		g.Geometries = append(g.Geometries, Clone(m))
	}
	if err := g.Validate(); err != nil {
		return GeometryCollection{}, err
	}
	return g, nil
}
