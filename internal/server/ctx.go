package server

import (
	"fmt"
	"hash/fnv"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/geocodec/internal/config"
	"github.com/woozymasta/geocodec/pkg/geo"
	"github.com/woozymasta/geocodec/pkg/geojson"
	"github.com/woozymasta/geocodec/pkg/hostgeom"
)

// DefaultMaxBody bounds request bodies accepted by HandleGeometry.
const DefaultMaxBody = 8 << 20

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config  *config.Config
	Adapter *hostgeom.Adapter
	MaxBody int64

	// settings is the pre-rendered /api/config response and its ETag.
	settings     []byte
	settingsETag string
}

// settingsView is the public shape of the effective configuration.
type settingsView struct {
	SRID       int      `json:"srid"`
	Precision  string   `json:"precision"`
	Scale      float64  `json:"scale,omitzero"`
	MaxDepth   int      `json:"max_depth"`
	PascalCase bool     `json:"pascal_case"`
	Types      []string `json:"types"`
	Formats    []string `json:"formats"`
}

// NewServerContext builds the adapter described by cfg. Extra codec options,
// typically a logger, are appended to the configured ones.
func NewServerContext(cfg *config.Config, opts ...geojson.Option) (*ServerContext, error) {
	adapter, err := cfg.Adapter(opts...)
	if err != nil {
		return nil, err
	}

	f := adapter.Factory()
	view := settingsView{
		SRID:       f.SRID(),
		Precision:  f.PrecisionModel().Kind().String(),
		Scale:      f.PrecisionModel().Scale(),
		MaxDepth:   cfg.MaxDepth,
		PascalCase: cfg.PascalCase,
		Formats:    []string{"geojson", "wkt", "yaml"},
	}
	for _, t := range geo.Types {
		view.Types = append(view.Types, t.String())
	}
	settings, err := jsonv2.Marshal(view)
	if err != nil {
		return nil, err
	}
	h := fnv.New64a()
	_, _ = h.Write(settings)

	log.Info().
		Int("srid", f.SRID()).
		Stringer("precision", f.PrecisionModel()).
		Int("max_depth", cfg.MaxDepth).
		Bool("pascal_case", cfg.PascalCase).
		Msg("Server context initialized")

	return &ServerContext{
		Config:       cfg,
		Adapter:      adapter,
		MaxBody:      DefaultMaxBody,
		settings:     settings,
		settingsETag: fmt.Sprintf(`"%x"`, h.Sum64()),
	}, nil
}
