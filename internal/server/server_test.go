package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/geocodec/internal/config"
)

func newTestServer(t *testing.T, yamlConfig string) (*ServerContext, http.Handler) {
	t.Helper()
	cfg, err := config.Parse([]byte(yamlConfig))
	require.NoError(t, err)
	s, err := NewServerContext(cfg)
	require.NoError(t, err)
	return s, s.Handler(zerolog.Nop())
}

func post(h http.Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleGeometryNormalises(t *testing.T) {
	_, h := newTestServer(t, "srid: 4326\nprecision: {type: fixed, scale: 100}\n")

	rec := post(h, "/api/geometry", `{
		"coordinates": [602010.123, 5340367.456],
		"type": "Point",
		"properties": {"ignored": true}
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "4326", rec.Header().Get("X-Geometry-SRID"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, `{"type":"point","coordinates":[602010.12,5340367.46]}`, rec.Body.String())
}

func TestHandleGeometryFormats(t *testing.T) {
	_, h := newTestServer(t, "pascal_case: true\n")
	body := `{"type":"linestring","coordinates":[[1,2],[3,4]]}`

	rec := post(h, "/api/geometry?format=wkt", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "LINESTRING (1 2, 3 4)", rec.Body.String())

	rec = post(h, "/api/geometry?format=yaml", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "type: LineString")

	rec = post(h, "/api/geometry?format=svg", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGeometryNull(t *testing.T) {
	_, h := newTestServer(t, "{}")

	rec := post(h, "/api/geometry", "null")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Geometry-SRID"))
}

func TestHandleGeometryErrors(t *testing.T) {
	_, h := newTestServer(t, "{}")

	tests := []struct {
		name   string
		body   string
		status int
		kind   string
		rule   string
	}{
		{"syntax", `{"type":`, http.StatusBadRequest, "syntax error", ""},
		{"unknown type", `{"type":"Feature","coordinates":[]}`, http.StatusBadRequest, "unknown geometry type", ""},
		{"malformed position", `{"type":"point","coordinates":[1]}`, http.StatusBadRequest, "malformed position", ""},
		{"open ring", `{"type":"linearring","coordinates":[[0,0],[1,0],[1,1],[0,1]]}`, http.StatusUnprocessableEntity, "invariant violation", "ring-closure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, "/api/geometry", tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var view errorView
			require.NoError(t, jsonv2.Unmarshal(rec.Body.Bytes(), &view))
			assert.Equal(t, tt.kind, view.Kind)
			assert.Equal(t, tt.rule, view.Rule)
			assert.NotEmpty(t, view.Error)
			if assert.NotNil(t, view.Offset) {
				assert.GreaterOrEqual(t, *view.Offset, int64(0))
			}
		})
	}
}

func TestHandleGeometryBodyLimit(t *testing.T) {
	s, h := newTestServer(t, "{}")
	s.MaxBody = 16

	rec := post(h, "/api/geometry", `{"type":"point","coordinates":[1,2]}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleGeometryMethod(t *testing.T) {
	_, h := newTestServer(t, "{}")

	req := httptest.NewRequest(http.MethodGet, "/api/geometry", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
}

func TestHandleConfig(t *testing.T) {
	_, h := newTestServer(t, "srid: 32633\nprecision: {type: fixed, scale: 100}\nmax_depth: 8\n")

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var view settingsView
	require.NoError(t, jsonv2.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 32633, view.SRID)
	assert.Equal(t, "fixed", view.Precision)
	assert.Equal(t, 100.0, view.Scale)
	assert.Equal(t, 8, view.MaxDepth)
	assert.Contains(t, view.Types, "linearring")

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req = httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestServer(t, "{}")
	h := s.Handler(zerolog.New(&buf))

	post(h, "/api/geometry?format=wkt", `{"type":"point","coordinates":[1,2]}`)

	line := buf.String()
	assert.Contains(t, line, `"message":"Request processed"`)
	assert.Contains(t, line, `"path":"/api/geometry"`)
	assert.Contains(t, line, `"status":200`)
	assert.Contains(t, line, `"req_id":`)
}
