// Package format renders host geometries in the output formats the tools offer.
package format

import (
	"bytes"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/geocodec/pkg/geo"
	"github.com/woozymasta/geocodec/pkg/hostgeom"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	GeoJSON Format = "geojson"
	WKT     Format = "wkt"
	YAML    Format = "yaml"
)

// Parse resolves a format name; the empty string selects GeoJSON.
func Parse(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", "json":
		return GeoJSON, nil
	case GeoJSON, WKT, YAML:
		return f, nil
	}
	return "", errors.Errorf("unknown output format %q", name)
}

// ContentType is the media type served for f.
func (f Format) ContentType() string {
	switch f {
	case WKT:
		return "text/plain; charset=utf-8"
	case YAML:
		return "application/yaml"
	}
	return "application/geo+json"
}

// Render encodes t with the adapter's codec settings. The result carries no
// trailing newline. WKT has no null form and no way to mix 2D and 3D
// positions in one geometry, so both are errors there.
func Render(a *hostgeom.Adapter, t geom.T, f Format) ([]byte, error) {
	switch f {
	case WKT:
		g, err := a.FromHost(t)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, errors.New("null geometry has no WKT form")
		}
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if mixedAltitude(g) {
			return nil, errors.New("geometry mixing 2D and 3D positions has no WKT form")
		}
		s, err := wkt.Marshal(t)
		if err != nil {
			return nil, errors.Wrap(err, "error encoding WKT")
		}
		return []byte(s), nil

	case YAML:
		data, err := a.Marshal(t)
		if err != nil {
			return nil, err
		}
		return toYAML(data)
	}
	return a.Marshal(t)
}

// mixedAltitude reports whether a non-collection geometry inside g has
// positions both with and without altitude.
func mixedAltitude(g geo.Geometry) bool {
	if gc, ok := g.(geo.GeometryCollection); ok {
		for _, m := range gc.Geometries {
			if mixedAltitude(m) {
				return true
			}
		}
		return false
	}
	return geo.AnyZ(g) && !geo.HasZ(g)
}

// toYAML re-emits JSON text as block-style YAML. Numbers keep their source
// text.
func toYAML(data []byte) ([]byte, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	root, err := yamlNode(dec)
	if err != nil {
		return nil, errors.Wrap(err, "error reading JSON")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, errors.Wrap(err, "error encoding YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "error encoding YAML")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func yamlNode(dec *jsontext.Decoder) (*yaml.Node, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case jsontext.KindBeginObject, jsontext.KindBeginArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		end := jsontext.KindEndArray
		if tok.Kind() == jsontext.KindBeginObject {
			n.Kind, n.Tag, end = yaml.MappingNode, "!!map", jsontext.KindEndObject
		}
		for dec.PeekKind() != end {
			c, err := yamlNode(dec)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return n, nil
	case jsontext.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: tok.String()}, nil
	case jsontext.KindNumber:
		tag := "!!float"
		if !strings.ContainsAny(tok.String(), ".eE") {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: tok.String()}, nil
	case jsontext.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: tok.String()}, nil
}
