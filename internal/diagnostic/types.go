package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Diagnostics holds all diagnostic information from one generation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Union names the schema this relates to (if any).
	Union string
	// Variant names the variant this relates to (if any).
	Variant string
	// Pos is the source location of the offending declaration or directive.
	Pos token.Position
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic codes emitted by the engine.
const (
	CodeInvalidVariantShape = "invalid-variant-shape"
	CodeDuplicateSlot       = "duplicate-slot"
	CodeRenameConflict      = "rename-conflict"
	CodeUnknownDirective    = "unknown-directive"
	CodeUnknownDerive       = "unknown-derive"
	CodeBadDirectiveArgs    = "bad-directive-args"
)

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, union, variant string, pos token.Position) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Union:    union,
		Variant:  variant,
		Pos:      pos,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, union, variant string, pos token.Position) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Union:    union,
		Variant:  variant,
		Pos:      pos,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, union, variant string, pos token.Position) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Union:    union,
		Variant:  variant,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic ordered errors, warnings, infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)
	out = append(out, d.Infos...)

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string, e.g.
// "hello.go:12:2: error: Hello.There: [invalid-variant-shape] ...".
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Pos.IsValid() {
		sb.WriteString(d.Pos.String())
		sb.WriteString(": ")
	}

	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")

	var ctx []string
	if d.Union != "" {
		ctx = append(ctx, d.Union)
	}

	if d.Variant != "" {
		ctx = append(ctx, d.Variant)
	}

	if len(ctx) > 0 {
		sb.WriteString(strings.Join(ctx, "."))
		sb.WriteString(": ")
	}

	if d.Code != "" {
		sb.WriteString(fmt.Sprintf("[%s] ", d.Code))
	}

	sb.WriteString(d.Message)

	return sb.String()
}
