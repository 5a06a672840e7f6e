package diagnostic

import (
	"fmt"
	"slices"
	"strings"

	"bindgen-core/internal/common"
	"bindgen-core/internal/cpptype"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/ffi"
	"bindgen-core/internal/naming"
)

// Diagnostic codes.
const (
	CodeUnsupportedType = "unsupported-type"
	CodeNoUniqueName    = "no-unique-name"
	CodeNameCollision   = "name-collision"
	CodeInvariant       = "invariant-violation"
	CodeRegression      = "check-regression"
	CodeUnknownName     = "unknown-name"
	CodeOther           = "error"
)

// Diagnostics holds everything reported while processing a crate.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single report.
type Diagnostic struct {
	Severity DiagnosticSeverity
	// Code classifies the diagnostic; see the Code* constants.
	Code    string
	Message string
	// Item is the short text of the declaration this relates to (if any).
	Item string
	// Function is the boundary function name this relates to (if any).
	Function string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Code classifies err into one of the Code* constants.
func Code(err error) string {
	switch {
	case errors.IsInvariantViolation(err):
		return CodeInvariant
	case errors.IsAny(err, ffi.ErrUnsupportedType, cpptype.ErrUnsupported):
		return CodeUnsupportedType
	case errors.Is(err, naming.ErrNoUniqueCaption):
		return CodeNoUniqueName
	case errors.Is(err, naming.ErrNameCollision):
		return CodeNameCollision
	default:
		return CodeOther
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, item, function string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Item:     item,
		Function: function,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, item, function string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Item:     item,
		Function: function,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, item, function string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Item:     item,
		Function: function,
	})
}

// AddFailure records err as an error diagnostic classified by Code.
func (d *Diagnostics) AddFailure(err error, item, function string) {
	d.AddError(Code(err), err.Error(), item, function)
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

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// CodeCount is the number of diagnostics with one code.
type CodeCount struct {
	Code  string
	Count int
}

// CountByCode tallies error and warning diagnostics per code, most
// frequent first.
func (d *Diagnostics) CountByCode() []CodeCount {
	counts := make(map[string]int)

	for _, list := range [][]Diagnostic{d.Errors, d.Warnings} {
		for _, diag := range list {
			counts[diag.Code]++
		}
	}

	out := make([]CodeCount, 0, len(counts))
	for code, n := range counts {
		out = append(out, CodeCount{Code: code, Count: n})
	}

	slices.SortFunc(out, func(a, b CodeCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}

		return strings.Compare(a.Code, b.Code)
	})

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Item != "" {
		prefix = append(prefix, "["+d.Item+"]")
	}

	if d.Function != "" {
		prefix = append(prefix, d.Function)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
