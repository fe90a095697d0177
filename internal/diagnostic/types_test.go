package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("w1", "just a warning", "TRow", "")
	assert.True(t, d.IsValid())

	d.AddError("e2", "broken", "TRow", "Qty")
	d.AddError("e1", "no root", "", "")

	other := Diagnostics{}
	other.AddError("e2", "also broken", "TDoc", "Id")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"e1", "e2", "w1"}, d.Codes())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "TRow.Qty: [e2] broken; [e1] no root; TDoc.Id: [e2] also broken", err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{Diagnostic{Code: "c", Message: "m", TypeName: "T", Field: "f"}, "T.f: [c] m"},
		{Diagnostic{Code: "c", Message: "m", TypeName: "T"}, "T: [c] m"},
		{Diagnostic{Message: "m", Field: "f"}, "f: m"},
		{Diagnostic{Message: "m"}, "m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
	}

	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
