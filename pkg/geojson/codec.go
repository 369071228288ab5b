// Package geojson reads and writes the geometry subset of GeoJSON over a
// jsontext token stream.
package geojson

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/rs/zerolog"

	"github.com/woozymasta/geocodec/pkg/geo"
)

// DefaultMaxDepth bounds geometry collection nesting.
const DefaultMaxDepth = 64

// Codec converts between geo.Geometry values and GeoJSON geometry objects.
// A Codec is immutable and safe for concurrent use as long as each call gets
// its own decoder or encoder.
type Codec struct {
	maxDepth int
	pascal   bool
	indent   string
	log      zerolog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithMaxDepth sets how deeply geometry collections may nest. Values below 1
// are ignored.
func WithMaxDepth(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithLogger sets the logger used for debug events such as skipped members.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Codec) {
		c.log = l
	}
}

// WithPascalCaseTypes makes the encoder emit "MultiPolygon" instead of
// "multipolygon". Decoding accepts either spelling regardless.
func WithPascalCaseTypes() Option {
	return func(c *Codec) {
		c.pascal = true
	}
}

// WithIndent makes Marshal produce multi-line output indented by indent.
// Only spaces and tabs are allowed; anything else is ignored.
func WithIndent(indent string) Option {
	return func(c *Codec) {
		if strings.Trim(indent, " \t") == "" {
			c.indent = indent
		}
	}
}

// NewCodec returns a codec with the given options applied.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		maxDepth: DefaultMaxDepth,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// NewTokenDecoder returns a jsontext decoder configured the way the codec
// expects: duplicate member names are allowed so the last one wins.
func NewTokenDecoder(r io.Reader, opts ...jsontext.Options) *jsontext.Decoder {
	opts = append([]jsontext.Options{jsontext.AllowDuplicateNames(true)}, opts...)
	return jsontext.NewDecoder(r, opts...)
}

// NewTokenEncoder returns a jsontext encoder honouring the codec's indent.
func (c *Codec) NewTokenEncoder(w io.Writer) *jsontext.Encoder {
	if c.indent != "" {
		return jsontext.NewEncoder(w, jsontext.WithIndent(c.indent))
	}
	return jsontext.NewEncoder(w)
}

// Decode reads exactly one geometry object, or null, from dec.
func (c *Codec) Decode(dec *jsontext.Decoder) (geo.Geometry, error) {
	r := &reader{codec: c, dec: dec}
	return r.geometry()
}

// Encode writes g as exactly one JSON value. A nil g is written as null.
func (c *Codec) Encode(enc *jsontext.Encoder, g geo.Geometry) error {
	if g == nil {
		return enc.WriteToken(jsontext.Null)
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if d := depth(g); d > c.maxDepth {
		return geo.NewError(geo.KindDepthExceeded, "geometry collections nest %d levels, limit is %d", d, c.maxDepth)
	}
	w := &writer{codec: c, enc: enc}
	return w.geometry(g)
}

// Unmarshal decodes a single geometry from data. Anything but whitespace
// after the geometry is an error.
func (c *Codec) Unmarshal(data []byte) (geo.Geometry, error) {
	dec := NewTokenDecoder(bytes.NewReader(data))
	g, err := c.Decode(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.ReadToken(); err != io.EOF {
		e := &geo.Error{Kind: geo.KindSyntax, Offset: dec.InputOffset(), Detail: "unexpected data after geometry"}
		if err != nil {
			e.Err = err
		}
		return nil, e
	}
	return g, nil
}

// Marshal encodes g without a trailing newline.
func (c *Codec) Marshal(g geo.Geometry) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(c.NewTokenEncoder(&buf), g); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes data with the default codec.
func Unmarshal(data []byte) (geo.Geometry, error) {
	return defaultCodec.Unmarshal(data)
}

// Marshal encodes g with the default codec.
func Marshal(g geo.Geometry) ([]byte, error) {
	return defaultCodec.Marshal(g)
}

// Decode reads one geometry from dec with the default codec.
func Decode(dec *jsontext.Decoder) (geo.Geometry, error) {
	return defaultCodec.Decode(dec)
}

// Encode writes g to enc with the default codec.
func Encode(enc *jsontext.Encoder, g geo.Geometry) error {
	return defaultCodec.Encode(enc, g)
}

// depth counts geometry collection nesting; a collection of points has depth 1.
func depth(g geo.Geometry) int {
	gc, ok := g.(geo.GeometryCollection)
	if !ok {
		return 0
	}
	deepest := 0
	for _, m := range gc.Geometries {
		deepest = max(deepest, depth(m))
	}
	return deepest + 1
}
