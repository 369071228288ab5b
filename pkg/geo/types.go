// Package geo handles geographic data structures: positions, linear chains and
// the GeoJSON geometry variants.
package geo

import "strings"

// Type tags a geometry variant.
type Type uint8

// Geometry variants.
const (
	TypePoint Type = iota + 1
	TypeMultiPoint
	TypeLineString
	TypeMultiLineString
	TypeLinearRing
	TypePolygon
	TypeMultiPolygon
	TypeGeometryCollection
)

var typeNames = [...]struct{ lower, pascal string }{
	TypePoint:              {"point", "Point"},
	TypeMultiPoint:         {"multipoint", "MultiPoint"},
	TypeLineString:         {"linestring", "LineString"},
	TypeMultiLineString:    {"multilinestring", "MultiLineString"},
	TypeLinearRing:         {"linearring", "LinearRing"},
	TypePolygon:            {"polygon", "Polygon"},
	TypeMultiPolygon:       {"multipolygon", "MultiPolygon"},
	TypeGeometryCollection: {"geometrycollection", "GeometryCollection"},
}

// Types lists every variant in declaration order.
var Types = []Type{
	TypePoint,
	TypeMultiPoint,
	TypeLineString,
	TypeMultiLineString,
	TypeLinearRing,
	TypePolygon,
	TypeMultiPolygon,
	TypeGeometryCollection,
}

// Valid reports whether t is one of the declared variants.
func (t Type) Valid() bool {
	return t >= TypePoint && t <= TypeGeometryCollection
}

// String returns the lowercase wire name, e.g. "multipolygon".
func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return typeNames[t].lower
}

// PascalName returns the strict GeoJSON spelling, e.g. "MultiPolygon".
func (t Type) PascalName() string {
	if !t.Valid() {
		return "Unknown"
	}
	return typeNames[t].pascal
}

// ParseType matches name against the variant names ignoring case.
func ParseType(name string) (Type, bool) {
	lower := strings.ToLower(name)
	for _, t := range Types {
		if typeNames[t].lower == lower {
			return t, true
		}
	}
	return 0, false
}
