// Package calcerr is the structured error taxonomy of the oloc pipeline:
// five error families, each member value-typed with a stable name, a
// canonical message template, a hint and a caret marker line over the
// expression as visible to the raising stage.
package calcerr

import (
	"fmt"
	"strings"
)

// Family partitions Kind into the five error families.
type Family string

const (
	Syntax      Family = "Syntax"
	Value       Family = "Value"
	Calculation Family = "Calculation"
	Conversion  Family = "Conversion"
	Timeout     Family = "Timeout"
)

// Kind is a stable, programmatic error name — one of the closed set
// declared in kinds.go. It is never extended at runtime.
type Kind string

// template holds the canonical message and hint for one Kind, exactly as
// oloc_exceptions.py pairs (message, hint) per TYPE member.
type template struct {
	family  Family
	message string
	hint    string
}

// Error is the value-typed error every stage raises. It never recovers
// inside the core: it simply propagates to calculate()'s caller.
type Error struct {
	Kind       Kind
	Expression string
	Positions  []int
	Primary    string
	Secondary  string

	// TimeLimit/Elapsed are only populated for the Timeout family.
	TimeLimit float64
	Elapsed   float64
}

// New constructs an Error for kind, pointing at positions within expr.
func New(kind Kind, expr string, positions []int) *Error {
	return &Error{Kind: kind, Expression: expr, Positions: positions}
}

// WithInfo attaches the primary/secondary template interpolation slots.
func (e *Error) WithInfo(primary, secondary string) *Error {
	e.Primary = primary
	e.Secondary = secondary
	return e
}

// WithTiming attaches the Timeout family's limit/elapsed fields.
func (e *Error) WithTiming(limit, elapsed float64) *Error {
	e.TimeLimit = limit
	e.Elapsed = elapsed
	return e
}

// Family reports which of the five error families Kind belongs to.
func (e *Error) Family() Family {
	if t, ok := registry[e.Kind]; ok {
		return t.family
	}
	return Syntax
}

// Name returns the stable, programmatic name for this error's kind.
func (e *Error) Name() string { return string(e.Kind) }

// Hint returns the canonical remediation hint for this error's kind.
func (e *Error) Hint() string {
	if t, ok := registry[e.Kind]; ok {
		return t.hint
	}
	return ""
}

// message renders the canonical template with this error's interpolation
// slots filled in.
func (e *Error) message() string {
	t, ok := registry[e.Kind]
	if !ok {
		return string(e.Kind)
	}
	msg := t.message
	msg = strings.ReplaceAll(msg, "{primary_info}", e.Primary)
	msg = strings.ReplaceAll(msg, "{secondary_info}", e.Secondary)
	if e.Kind == TIMEOUT {
		msg = strings.ReplaceAll(msg, "{time_limit}", fmt.Sprintf("%.1f", e.TimeLimit))
	}
	return msg
}

// markerLine renders one '^' under every position in e.Positions, over a
// single-line expression (no multi-line source to track).
func (e *Error) markerLine() string {
	runes := []rune(e.Expression)
	marks := make([]rune, len(runes))
	for i := range marks {
		marks[i] = ' '
	}
	for _, pos := range e.Positions {
		if pos >= 0 && pos < len(marks) {
			marks[pos] = '^'
		}
	}
	return string(marks)
}

// Error implements the error interface, rendering the full template the
// source CLI shows: name, message, expression, marker line and hint.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.message())
	b.WriteString(e.Expression)
	b.WriteByte('\n')
	b.WriteString(e.markerLine())
	fmt.Fprintf(&b, "\nHint: %s", e.Hint())
	return b.String()
}
