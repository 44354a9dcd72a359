package diagnostic

import (
	"fmt"
	"strings"

	"regionsynth/internal/common"
)

// Codes for recoverable conditions.
const (
	CodeMalformedDeclaration = "MalformedDeclaration"
	CodeMissingDefaultValue  = "MissingDefaultValue"
	CodeDuplicateAttribute   = "DuplicateAttribute"
	CodeUnknownGeneratorKind = "UnknownGeneratorKind"
	CodeMissingEndMarker     = "MissingEndMarker"
	CodeUnknownProjection    = "UnknownProjection"
	CodeExtracted            = "Extracted"
)

// Diagnostics holds all diagnostic information from one unit of work.
type Diagnostics struct {
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
	// Type is the owning type this relates to (if any).
	Type string
	// Member is the member or function name this relates to (if any).
	Member string
	// Line is the 1-based source line (0 if unknown).
	Line int
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, member string, line int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Member:   member,
		Line:     line,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, member string, line int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Member:   member,
		Line:     line,
	})
}

// HasCode reports whether any diagnostic of any severity carries code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, list := range [][]Diagnostic{d.Warnings, d.Infos} {
		for _, item := range list {
			if item.Code == code {
				return true
			}
		}
	}

	return false
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	switch {
	case d.Type != "" && d.Member != "":
		prefix = append(prefix, d.Type+"::"+d.Member)
	case d.Type != "":
		prefix = append(prefix, d.Type)
	case d.Member != "":
		prefix = append(prefix, d.Member)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
