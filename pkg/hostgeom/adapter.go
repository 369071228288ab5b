// Package hostgeom converts between geo geometries and github.com/twpayne/go-geom
// values. An Adapter is bound to one Factory, whose SRID and precision model
// every host geometry it produces carries.
package hostgeom

import (
	"github.com/go-json-experiment/json/jsontext"
	"github.com/twpayne/go-geom"

	"github.com/woozymasta/geocodec/pkg/geo"
	"github.com/woozymasta/geocodec/pkg/geojson"
)

// Adapter maps geometries to and from the host model and encodes host
// geometries as GeoJSON. It is immutable and safe for concurrent use.
type Adapter struct {
	factory Factory
	codec   *geojson.Codec
}

// New returns an adapter for f. A nil f selects DefaultFactory. The codec
// options are passed to geojson.NewCodec.
func New(f Factory, opts ...geojson.Option) *Adapter {
	if f == nil {
		f = DefaultFactory()
	}
	return &Adapter{factory: f, codec: geojson.NewCodec(opts...)}
}

// Factory returns the factory the adapter was created with.
func (a *Adapter) Factory() Factory {
	return a.factory
}

// Codec returns the GeoJSON codec used by Marshal and Unmarshal.
func (a *Adapter) Codec() *geojson.Codec {
	return a.codec
}

// Marshal encodes a host geometry. SRID and precision are not written.
func (a *Adapter) Marshal(t geom.T) ([]byte, error) {
	g, err := a.FromHost(t)
	if err != nil {
		return nil, err
	}
	return a.codec.Marshal(g)
}

// Unmarshal decodes data into a host geometry built by the adapter's factory.
func (a *Adapter) Unmarshal(data []byte) (geom.T, error) {
	g, err := a.codec.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return a.ToHost(g)
}

// Decode reads one geometry from dec into the host model.
func (a *Adapter) Decode(dec *jsontext.Decoder) (geom.T, error) {
	g, err := a.codec.Decode(dec)
	if err != nil {
		return nil, err
	}
	return a.ToHost(g)
}

// Encode writes a host geometry to enc.
func (a *Adapter) Encode(enc *jsontext.Encoder, t geom.T) error {
	g, err := a.FromHost(t)
	if err != nil {
		return err
	}
	return a.codec.Encode(enc, g)
}
