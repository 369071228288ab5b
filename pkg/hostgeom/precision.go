package hostgeom

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// PrecisionKind selects how a PrecisionModel rounds ordinates.
type PrecisionKind uint8

// Precision kinds.
const (
	Floating PrecisionKind = iota
	FloatingSingle
	Fixed
)

var precisionNames = map[PrecisionKind]string{
	Floating:       "floating",
	FloatingSingle: "floating_single",
	Fixed:          "fixed",
}

func (k PrecisionKind) String() string {
	if name, ok := precisionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("precision kind %d", uint8(k))
}

// PrecisionModel describes the grid that X and Y ordinates are snapped to.
// The zero value is the floating model. Models are comparable with ==.
type PrecisionModel struct {
	kind  PrecisionKind
	scale float64
}

// FloatingPrecision keeps full float64 precision.
func FloatingPrecision() PrecisionModel {
	return PrecisionModel{kind: Floating}
}

// FloatingSinglePrecision rounds ordinates to the nearest float32.
func FloatingSinglePrecision() PrecisionModel {
	return PrecisionModel{kind: FloatingSingle}
}

// FixedPrecision snaps ordinates to multiples of 1/scale. A scale of 100
// keeps two decimal places. The sign of scale is ignored and a zero scale
// yields the floating model.
func FixedPrecision(scale float64) PrecisionModel {
	scale = math.Abs(scale)
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return FloatingPrecision()
	}
	return PrecisionModel{kind: Fixed, scale: scale}
}

// ParsePrecisionModel builds a model from its configuration name: floating,
// floating_single or fixed. scale is only used by fixed and must be positive.
func ParsePrecisionModel(kind string, scale float64) (PrecisionModel, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "floating":
		return FloatingPrecision(), nil
	case "floating_single", "floating-single", "single":
		return FloatingSinglePrecision(), nil
	case "fixed":
		if !(scale > 0) || math.IsInf(scale, 0) {
			return PrecisionModel{}, errors.Errorf("fixed precision needs a positive scale, got %v", scale)
		}
		return FixedPrecision(scale), nil
	}
	return PrecisionModel{}, errors.Errorf("unknown precision model %q", kind)
}

// Kind returns the rounding strategy.
func (pm PrecisionModel) Kind() PrecisionKind { return pm.kind }

// Scale returns the fixed scale, or 0 for floating models.
func (pm PrecisionModel) Scale() float64 { return pm.scale }

// IsFloating reports whether the model is one of the floating kinds.
func (pm PrecisionModel) IsFloating() bool { return pm.kind != Fixed }

// MakePrecise rounds v to the model. NaN and infinities are returned as is.
// Fixed rounding is half-up, so -0.5 at scale 1 becomes 0. A finite v can
// come back infinite: fixed rounding overflows when v*scale does, and
// floating single overflows above math.MaxFloat32. Such geometries are only
// rejected when they are encoded.
func (pm PrecisionModel) MakePrecise(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	switch pm.kind {
	case FloatingSingle:
		return float64(float32(v))
	case Fixed:
		if pm.scale >= 1 {
			return math.Floor(v*pm.scale+0.5) / pm.scale
		}
		// Grid coarser than one unit.
		grid := 1 / pm.scale
		return math.Floor(v/grid+0.5) * grid
	}
	return v
}

func (pm PrecisionModel) String() string {
	if pm.kind == Fixed {
		return fmt.Sprintf("fixed(%g)", pm.scale)
	}
	return pm.kind.String()
}
