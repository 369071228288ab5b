package geo

import (
	"fmt"
	"strings"
)

// ErrorKind classifies codec and adapter failures.
type ErrorKind uint8

// Error kinds.
const (
	KindExpectedObject ErrorKind = iota + 1
	KindMissingType
	KindUnknownGeometryType
	KindMissingCoordinates
	KindMalformedPosition
	KindNumberOutOfRange
	KindInvariantViolation
	KindUnsupportedHostType
	KindDepthExceeded
	KindSyntax
)

var kindNames = map[ErrorKind]string{
	KindExpectedObject:      "expected object",
	KindMissingType:         "missing type",
	KindUnknownGeometryType: "unknown geometry type",
	KindMissingCoordinates:  "missing coordinates",
	KindMalformedPosition:   "malformed position",
	KindNumberOutOfRange:    "number out of range",
	KindInvariantViolation:  "invariant violation",
	KindUnsupportedHostType: "unsupported host type",
	KindDepthExceeded:       "depth exceeded",
	KindSyntax:              "syntax error",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error kind %d", uint8(k))
}

// Rule names the structural invariant an InvariantViolation refers to.
type Rule string

// Invariant rules.
const (
	RuleLineStringArity      Rule = "linestring-arity"
	RuleRingArity            Rule = "ring-arity"
	RuleRingClosure          Rule = "ring-closure"
	RulePolygonExterior      Rule = "polygon-exterior"
	RuleMultiLineStringArity Rule = "multilinestring-member"
	RuleNonFinitePosition    Rule = "non-finite-position"
	RuleNilMember            Rule = "nil-member"
)

// Error is returned by every failing decode, encode and host conversion.
//
// Offset is the absolute byte offset reported by the token stream, or -1 when
// the failure did not come from parsing. Pointer is the RFC 6901 location of
// the offending value when known.
type Error struct {
	Kind    ErrorKind
	Rule    Rule
	Offset  int64
	Pointer string
	Detail  string
	Err     error
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrExpectedObject      = &Error{Kind: KindExpectedObject, Offset: -1}
	ErrMissingType         = &Error{Kind: KindMissingType, Offset: -1}
	ErrUnknownGeometryType = &Error{Kind: KindUnknownGeometryType, Offset: -1}
	ErrMissingCoordinates  = &Error{Kind: KindMissingCoordinates, Offset: -1}
	ErrMalformedPosition   = &Error{Kind: KindMalformedPosition, Offset: -1}
	ErrNumberOutOfRange    = &Error{Kind: KindNumberOutOfRange, Offset: -1}
	ErrInvariantViolation  = &Error{Kind: KindInvariantViolation, Offset: -1}
	ErrUnsupportedHostType = &Error{Kind: KindUnsupportedHostType, Offset: -1}
	ErrDepthExceeded       = &Error{Kind: KindDepthExceeded, Offset: -1}
	ErrSyntax              = &Error{Kind: KindSyntax, Offset: -1}
)

// NewError returns an error of the given kind without position information.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: -1, Detail: fmt.Sprintf(format, args...)}
}

// Violation returns an InvariantViolation for rule.
func Violation(rule Rule, format string, args ...any) *Error {
	return &Error{Kind: KindInvariantViolation, Rule: rule, Offset: -1, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("geo: ")
	b.WriteString(e.Kind.String())
	if e.Rule != "" {
		b.WriteString(" (")
		b.WriteString(string(e.Rule))
		b.WriteString(")")
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Pointer != "" {
		fmt.Fprintf(&b, " (%s)", e.Pointer)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. A target carrying a
// rule only matches violations of that rule.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Rule == "" || t.Rule == e.Rule
}
