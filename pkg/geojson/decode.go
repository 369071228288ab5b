package geojson

import (
	"bytes"
	"errors"
	"io"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/woozymasta/geocodec/pkg/geo"
)

// reader walks one token stream. Values captured from an enclosing stream are
// replayed through a child reader whose base and path locate them in the
// original document.
type reader struct {
	codec *Codec
	dec   *jsontext.Decoder
	base  int64
	path  string
	depth int
}

// captured is a member value read ahead of knowing the geometry type.
type captured struct {
	raw  jsontext.Value
	base int64
	path string
}

func (r *reader) geometry() (geo.Geometry, error) {
	switch k := r.dec.PeekKind(); k {
	case jsontext.KindBeginObject:
	case jsontext.KindNull:
		if _, err := r.readToken(); err != nil {
			return nil, err
		}
		return nil, nil
	case jsontext.KindInvalid:
		_, err := r.readToken()
		return nil, err
	default:
		return nil, r.errorf(geo.KindExpectedObject, "found %s", k)
	}
	if _, err := r.readToken(); err != nil {
		return nil, err
	}

	var (
		typeName    string
		typeSeen    bool
		coordinates *captured
		geometries  *captured
	)
	for r.dec.PeekKind() != jsontext.KindEndObject {
		tok, err := r.readToken()
		if err != nil {
			return nil, err
		}

		switch name := tok.String(); name {
		case "type":
			if k := r.dec.PeekKind(); k != jsontext.KindString {
				if k == jsontext.KindInvalid {
					_, err := r.readToken()
					return nil, err
				}
				return nil, r.errorf(geo.KindUnknownGeometryType, "type must be a string, found %s", k)
			}
			tok, err := r.readToken()
			if err != nil {
				return nil, err
			}
			typeName, typeSeen = tok.String(), true
		case "coordinates":
			if coordinates, err = r.capture(); err != nil {
				return nil, err
			}
		case "geometries":
			if geometries, err = r.capture(); err != nil {
				return nil, err
			}
		default:
			r.codec.log.Debug().
				Str("member", name).
				Str("pointer", r.pointer()).
				Msg("Skipping unknown geometry member")
			if err := r.dec.SkipValue(); err != nil {
				return nil, r.syntax(err)
			}
		}
	}
	if _, err := r.readToken(); err != nil {
		return nil, err
	}

	if !typeSeen {
		return nil, r.errorf(geo.KindMissingType, "geometry object has no type member")
	}
	t, ok := geo.ParseType(typeName)
	if !ok {
		return nil, r.errorf(geo.KindUnknownGeometryType, "%q", typeName)
	}

	if t == geo.TypeGeometryCollection {
		if geometries == nil {
			return nil, r.errorf(geo.KindMissingCoordinates, "geometry collection has no geometries member")
		}
		if r.depth+1 > r.codec.maxDepth {
			return nil, r.errorf(geo.KindDepthExceeded, "geometry collections nest deeper than %d", r.codec.maxDepth)
		}
		child := r.child(geometries)
		child.depth = r.depth + 1
		return child.collection()
	}

	if coordinates == nil {
		return nil, r.errorf(geo.KindMissingCoordinates, "%s has no coordinates member", t)
	}
	return r.child(coordinates).shape(t)
}

func (r *reader) collection() (geo.Geometry, error) {
	gc := geo.GeometryCollection{}
	err := r.array(func() error {
		if r.dec.PeekKind() == jsontext.KindNull {
			return r.errorf(geo.KindExpectedObject, "geometry collection member is null")
		}
		g, err := r.geometry()
		if err != nil {
			return err
		}
		gc.Geometries = append(gc.Geometries, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gc, nil
}

// capture reads the next value verbatim so it can be interpreted once the
// geometry type is known.
func (r *reader) capture() (*captured, error) {
	raw, err := r.dec.ReadValue()
	if err != nil {
		return nil, r.syntax(err)
	}
	return &captured{
		raw:  raw.Clone(),
		base: r.base + r.dec.InputOffset() - int64(len(raw)),
		path: r.pointer(),
	}, nil
}

func (r *reader) child(c *captured) *reader {
	return &reader{
		codec: r.codec,
		dec:   NewTokenDecoder(bytes.NewReader(c.raw)),
		base:  c.base,
		path:  c.path,
		depth: r.depth,
	}
}

// array reads '[', calls each until the matching ']' and consumes it. each
// must consume exactly one element or fail.
func (r *reader) array(each func() error) error {
	switch k := r.dec.PeekKind(); k {
	case jsontext.KindBeginArray:
	case jsontext.KindInvalid:
		_, err := r.readToken()
		return err
	default:
		return r.errorf(geo.KindMalformedPosition, "expected array, found %s", k)
	}
	if _, err := r.readToken(); err != nil {
		return err
	}
	for r.dec.PeekKind() != jsontext.KindEndArray {
		if err := each(); err != nil {
			return err
		}
	}
	_, err := r.readToken()
	return err
}

func (r *reader) readToken() (jsontext.Token, error) {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return tok, r.syntax(err)
	}
	return tok, nil
}

func (r *reader) pointer() string {
	return r.path + string(r.dec.StackPointer())
}

func (r *reader) errorf(kind geo.ErrorKind, format string, args ...any) *geo.Error {
	e := geo.NewError(kind, format, args...)
	e.Offset = r.base + r.dec.InputOffset()
	e.Pointer = r.pointer()
	return e
}

// locate attaches the current stream position to an error that has none.
func (r *reader) locate(err error) error {
	var e *geo.Error
	if errors.As(err, &e) && e.Offset < 0 {
		e.Offset = r.base + r.dec.InputOffset()
		e.Pointer = r.path
	}
	return err
}

func (r *reader) syntax(err error) error {
	e := &geo.Error{Kind: geo.KindSyntax, Offset: r.base + r.dec.InputOffset(), Pointer: r.pointer(), Err: err}
	if err == io.EOF {
		e.Detail = "unexpected end of input"
		e.Err = io.ErrUnexpectedEOF
		return e
	}
	var serr *jsontext.SyntacticError
	if errors.As(err, &serr) {
		e.Offset = r.base + serr.ByteOffset
		e.Pointer = r.path + string(serr.JSONPointer)
	}
	return e
}
