package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Accumulate(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
	assert.Nil(t, d.WarningMessages())

	d.AddWarning("content_dropped", "field lost", "centered->minimal", "secondaryButton")
	d.AddRecommendation("duplicate_first", "duplicate before switching", "centered->minimal", "")
	d.AddError("unknown_target_variant", "no such variant", "centered->holographic", "")

	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"field lost"}, d.WarningMessages())
	assert.Equal(t, []string{"duplicate before switching"}, d.RecommendationMessages())
	assert.Equal(t, []string{"no such variant"}, d.ErrorMessages())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown_target_variant")
	assert.Contains(t, err.Error(), "no such variant")
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning("w1", "first", "", "")
	b.AddWarning("w2", "second", "", "")
	b.AddError("e1", "boom", "", "")

	a.Merge(b)

	assert.Equal(t, []string{"first", "second"}, a.WarningMessages())
	assert.True(t, a.HasErrors())
}

func TestDiagnostic_String(t *testing.T) {
	full := Diagnostic{
		Severity:    SeverityWarning,
		Code:        "content_dropped",
		Message:     "field lost",
		VariantPair: "centered->minimal",
		FieldPath:   "secondaryButton",
	}
	assert.Equal(t, "[centered->minimal] secondaryButton: [content_dropped] field lost", full.String())

	bare := Diagnostic{Message: "just a message"}
	assert.Equal(t, "just a message", bare.String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "recommendation", SeverityRecommendation.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
