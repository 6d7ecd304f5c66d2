package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics collects everything an operation wants to tell the
// author: hard errors, soft data-loss warnings, and recommendations.
type Diagnostics struct {
	Errors          []Diagnostic
	Warnings        []Diagnostic
	Recommendations []Diagnostic
}

// Diagnostic is a single message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// VariantPair identifies which source->target pair this relates to (if any).
	VariantPair string
	// FieldPath identifies which prop path this relates to (if any).
	FieldPath string
}

// Severity is the diagnostic severity level.
type Severity int

const (
	SeverityRecommendation Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityRecommendation:
		return "recommendation"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, variantPair, fieldPath string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		VariantPair: variantPair,
		FieldPath:   fieldPath,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, variantPair, fieldPath string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		VariantPair: variantPair,
		FieldPath:   fieldPath,
	})
}

// AddRecommendation adds a recommendation diagnostic.
func (d *Diagnostics) AddRecommendation(code, message, variantPair, fieldPath string) {
	d.Recommendations = append(d.Recommendations, Diagnostic{
		Severity:    SeverityRecommendation,
		Code:        code,
		Message:     message,
		VariantPair: variantPair,
		FieldPath:   fieldPath,
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
	d.Recommendations = append(d.Recommendations, other.Recommendations...)
}

// ErrorMessages returns the error messages as plain strings.
func (d *Diagnostics) ErrorMessages() []string {
	return messages(d.Errors)
}

// WarningMessages returns the warning messages as plain strings.
func (d *Diagnostics) WarningMessages() []string {
	return messages(d.Warnings)
}

// RecommendationMessages returns the recommendations as plain strings.
func (d *Diagnostics) RecommendationMessages() []string {
	return messages(d.Recommendations)
}

func messages(list []Diagnostic) []string {
	if len(list) == 0 {
		return nil
	}

	out := make([]string, len(list))
	for i, diag := range list {
		out[i] = diag.Message
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil.
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

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.VariantPair != "" {
		prefix = append(prefix, "["+d.VariantPair+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
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
