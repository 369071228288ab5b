package geo

// Validate checks the point's position is finite.
func (g Point) Validate() error {
	if g.Position == nil {
		return nil
	}
	return g.Position.Validate()
}

// Validate checks every position is finite.
func (g MultiPoint) Validate() error {
	return validatePositions(g.Positions)
}

// Validate checks arity and finiteness.
func (g LineString) Validate() error {
	if n := len(g.Positions); n == 1 {
		return Violation(RuleLineStringArity, "line string has %d position, need at least 2", n)
	}
	return validatePositions(g.Positions)
}

// Validate checks every member is a non-empty line string.
func (g MultiLineString) Validate() error {
	for i, l := range g.LineStrings {
		if n := len(l.Positions); n < 2 {
			return Violation(RuleMultiLineStringArity, "line string %d has %d positions, need at least 2", i, n)
		}
		if err := validatePositions(l.Positions); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks arity, closure and finiteness. The empty ring is valid.
func (g LinearRing) Validate() error {
	if g.IsEmpty() {
		return nil
	}
	return validateRing(g.Positions)
}

// Validate checks every ring and that holes have an exterior.
func (g Polygon) Validate() error {
	if g.Exterior.IsEmpty() {
		if len(g.Holes) > 0 {
			return Violation(RulePolygonExterior, "polygon has %d holes but no exterior ring", len(g.Holes))
		}
		return nil
	}
	for _, r := range g.Rings() {
		if err := validateRing(r.Positions); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every member polygon.
func (g MultiPolygon) Validate() error {
	for _, p := range g.Polygons {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every member, recursively.
func (g GeometryCollection) Validate() error {
	for i, m := range g.Geometries {
		if m == nil {
			return Violation(RuleNilMember, "geometry collection member %d", i)
		}
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateRing(ps []Position) error {
	if len(ps) < 4 {
		return Violation(RuleRingArity, "ring has %d positions, need at least 4", len(ps))
	}
	if first, last := ps[0], ps[len(ps)-1]; !first.Equal(last) {
		return Violation(RuleRingClosure, "ring starts at %s but ends at %s", first, last)
	}
	return validatePositions(ps)
}
