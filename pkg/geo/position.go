package geo

import (
	"math"
	"strconv"
)

// Position is a coordinate tuple: longitude (X), latitude (Y) and an optional
// altitude (Z) present when HasZ is set.
type Position struct {
	X, Y, Z float64
	HasZ    bool
}

// XY returns a two-component position.
func XY(x, y float64) Position {
	return Position{X: x, Y: y}
}

// XYZ returns a three-component position.
func XYZ(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z, HasZ: true}
}

// Validate rejects NaN and infinite components.
func (p Position) Validate() error {
	if !finite(p.X) || !finite(p.Y) || (p.HasZ && !finite(p.Z)) {
		return Violation(RuleNonFinitePosition, "position %s", p)
	}
	return nil
}

// Equal reports bitwise equality of every present component.
func (p Position) Equal(o Position) bool {
	if p.HasZ != o.HasZ {
		return false
	}
	if math.Float64bits(p.X) != math.Float64bits(o.X) || math.Float64bits(p.Y) != math.Float64bits(o.Y) {
		return false
	}
	return !p.HasZ || math.Float64bits(p.Z) == math.Float64bits(o.Z)
}

// Coords returns the components as a slice of length 2 or 3.
func (p Position) Coords() []float64 {
	if p.HasZ {
		return []float64{p.X, p.Y, p.Z}
	}
	return []float64{p.X, p.Y}
}

func (p Position) String() string {
	b := []byte{'['}
	b = strconv.AppendFloat(b, p.X, 'g', -1, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, p.Y, 'g', -1, 64)
	if p.HasZ {
		b = append(b, ' ')
		b = strconv.AppendFloat(b, p.Z, 'g', -1, 64)
	}
	return string(append(b, ']'))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validatePositions(ps []Position) error {
	for _, p := range ps {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func positionsEqual(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func clonePositions(ps []Position) []Position {
	if len(ps) == 0 {
		return nil
	}
	out := make([]Position, len(ps))
	copy(out, ps)
	return out
}
