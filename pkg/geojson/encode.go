package geojson

import (
	"github.com/go-json-experiment/json/jsontext"

	"github.com/woozymasta/geocodec/pkg/geo"
)

type writer struct {
	codec *Codec
	enc   *jsontext.Encoder
	err   error
}

func (w *writer) token(t jsontext.Token) {
	if w.err == nil {
		w.err = w.enc.WriteToken(t)
	}
}

func (w *writer) typeName(t geo.Type) string {
	if w.codec.pascal {
		return t.PascalName()
	}
	return t.String()
}

// geometry writes an already validated geometry.
func (w *writer) geometry(g geo.Geometry) error {
	w.token(jsontext.BeginObject)
	w.token(jsontext.String("type"))
	w.token(jsontext.String(w.typeName(g.Type())))

	if gc, ok := g.(geo.GeometryCollection); ok {
		w.token(jsontext.String("geometries"))
		w.token(jsontext.BeginArray)
		for _, m := range gc.Geometries {
			if w.err != nil {
				break
			}
			w.err = w.geometry(m)
		}
		w.token(jsontext.EndArray)
		w.token(jsontext.EndObject)
		return w.err
	}

	w.token(jsontext.String("coordinates"))
	switch g := g.(type) {
	case geo.Point:
		if g.Position == nil {
			w.token(jsontext.BeginArray)
			w.token(jsontext.EndArray)
		} else {
			w.position(*g.Position)
		}
	case geo.MultiPoint:
		w.positions(g.Positions)
	case geo.LineString:
		w.positions(g.Positions)
	case geo.LinearRing:
		w.positions(g.Positions)
	case geo.MultiLineString:
		w.token(jsontext.BeginArray)
		for _, l := range g.LineStrings {
			w.positions(l.Positions)
		}
		w.token(jsontext.EndArray)
	case geo.Polygon:
		w.polygon(g)
	case geo.MultiPolygon:
		w.token(jsontext.BeginArray)
		for _, p := range g.Polygons {
			w.polygon(p)
		}
		w.token(jsontext.EndArray)
	}
	w.token(jsontext.EndObject)
	return w.err
}

func (w *writer) polygon(p geo.Polygon) {
	w.token(jsontext.BeginArray)
	for _, r := range p.Rings() {
		w.positions(r.Positions)
	}
	w.token(jsontext.EndArray)
}

func (w *writer) positions(ps []geo.Position) {
	w.token(jsontext.BeginArray)
	for _, p := range ps {
		w.position(p)
	}
	w.token(jsontext.EndArray)
}

func (w *writer) position(p geo.Position) {
	w.token(jsontext.BeginArray)
	w.token(jsontext.Float(p.X))
	w.token(jsontext.Float(p.Y))
	if p.HasZ {
		w.token(jsontext.Float(p.Z))
	}
	w.token(jsontext.EndArray)
}
