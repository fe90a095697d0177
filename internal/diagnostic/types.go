package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"datamodel-generator/internal/common"
)

// Diagnostics holds all diagnostic information from one check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName identifies the record this relates to (if any).
	TypeName string
	// Field identifies the field this relates to (if any).
	Field string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, fieldName string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		TypeName: typeName,
		Field:    fieldName,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, fieldName string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		TypeName: typeName,
		Field:    fieldName,
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
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Codes returns the sorted, de-duplicated codes of all diagnostics.
func (d *Diagnostics) Codes() []string {
	seen := map[string]struct{}{}

	for _, x := range append(append([]Diagnostic{}, d.Errors...), d.Warnings...) {
		seen[x.Code] = struct{}{}
	}

	codes := make([]string, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}

	sort.Strings(codes)

	return codes
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
	var prefix string

	switch {
	case d.TypeName != "" && d.Field != "":
		prefix = d.TypeName + "." + d.Field
	case d.TypeName != "":
		prefix = d.TypeName
	case d.Field != "":
		prefix = d.Field
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if prefix != "" {
		return prefix + ": " + msg
	}

	return msg
}
