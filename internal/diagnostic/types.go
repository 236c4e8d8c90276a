package diagnostic

import (
	"log/slog"

	"runconfig-converter/internal/common"
)

// Diagnostic codes emitted by the converter.
const (
	CodeUnknownType       = "unknown_type"
	CodeEmptyName         = "empty_name"
	CodeDuplicateName     = "duplicate_name"
	CodeUnexpectedFactory = "unexpected_factory"
	CodeUnknownGroup      = "unknown_group"
	CodeInvalidDocument   = "invalid_document"
)

// Diagnostics holds all diagnostic information from a conversion.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Config names the run configuration this relates to (if any).
	Config string
	// Field names the attribute or option this relates to (if any).
	Field string
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

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, config, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Config:   config,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, config, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Config:   config,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, config, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Config:   config,
		Field:    field,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Count returns the number of diagnostics carrying the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				n++
			}
		}
	}

	return n
}

// Log writes every diagnostic to logger. Infos are logged at debug level
// since they describe expected skips.
func (d *Diagnostics) Log(logger *slog.Logger) {
	for _, diag := range d.Infos {
		logger.Debug(diag.Message, diag.attrs()...)
	}

	for _, diag := range d.Warnings {
		logger.Warn(diag.Message, diag.attrs()...)
	}

	for _, diag := range d.Errors {
		logger.Error(diag.Message, diag.attrs()...)
	}
}

func (d Diagnostic) attrs() []any {
	attrs := []any{"code", d.Code}
	if d.Config != "" {
		attrs = append(attrs, "config", d.Config)
	}

	if d.Field != "" {
		attrs = append(attrs, "field", d.Field)
	}

	return attrs
}
