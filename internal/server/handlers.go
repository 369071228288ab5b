// Package server handles HTTP requests and middleware.
package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/rs/zerolog/hlog"

	"github.com/woozymasta/geocodec/internal/format"
	"github.com/woozymasta/geocodec/pkg/geo"
)

// errorView is the body of every failed API response.
type errorView struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitzero"`
	Rule    string `json:"rule,omitzero"`
	Offset  *int64 `json:"offset,omitzero"`
	Pointer string `json:"pointer,omitzero"`
}

// HandleConfig serves the effective factory and codec settings.
func (s *ServerContext) HandleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	if match := r.Header.Get("If-None-Match"); match == s.settingsETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", s.settingsETag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.settings)
}

// HandleGeometry decodes one geometry from the request body through the
// configured factory and writes it back normalised. The format query
// parameter selects geojson (default), wkt or yaml.
func (s *ServerContext) HandleGeometry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	f, err := format.Parse(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.MaxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	t, err := s.Adapter.Unmarshal(body)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	out, err := format.Render(s.Adapter, t, f)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType())
	if t != nil {
		w.Header().Set("X-Geometry-SRID", strconv.Itoa(t.SRID()))
	}
	_, _ = w.Write(out)
}

// statusFor maps codec failures to HTTP statuses: malformed documents are
// bad requests, well-formed ones breaking geometry rules are unprocessable.
func statusFor(err error) int {
	var gerr *geo.Error
	if !errors.As(err, &gerr) {
		return http.StatusUnprocessableEntity
	}
	switch gerr.Kind {
	case geo.KindInvariantViolation, geo.KindDepthExceeded, geo.KindUnsupportedHostType:
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func (s *ServerContext) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	view := errorView{Error: err.Error()}
	var gerr *geo.Error
	if errors.As(err, &gerr) {
		view.Kind = gerr.Kind.String()
		view.Rule = string(gerr.Rule)
		view.Pointer = gerr.Pointer
		if gerr.Offset >= 0 {
			offset := gerr.Offset
			view.Offset = &offset
		}
	}

	hlog.FromRequest(r).Debug().
		Err(err).
		Int("status", status).
		Msg("Request rejected")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonv2.MarshalWrite(w, view)
}
