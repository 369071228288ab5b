package geojson

import (
	"github.com/go-json-experiment/json/jsontext"

	"github.com/woozymasta/geocodec/pkg/geo"
)

// Value wraps a geometry so it can be a field of a struct handled by
// encoding/json or github.com/go-json-experiment/json. A nil Geometry
// marshals as null.
type Value struct {
	Geometry geo.Geometry
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return Marshal(v.Geometry)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	g, err := Unmarshal(data)
	if err != nil {
		return err
	}
	v.Geometry = g
	return nil
}

// MarshalJSONTo streams the geometry into enc.
func (v Value) MarshalJSONTo(enc *jsontext.Encoder) error {
	return Encode(enc, v.Geometry)
}

// UnmarshalJSONFrom reads one geometry from dec. Duplicate member handling
// follows the options dec was created with.
func (v *Value) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	g, err := Decode(dec)
	if err != nil {
		return err
	}
	v.Geometry = g
	return nil
}
