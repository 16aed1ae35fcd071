package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasWarnings())

	d.AddInfo(CodeBuiltinType, "Label", "described as System.String")
	d.AddWarning(CodeSkippedInstance, "Pair[Handler, int]", "no descriptor for Handler")

	assert.True(t, d.HasWarnings())

	all := d.All()
	if assert.Len(t, all, 2) {
		assert.Equal(t, SeverityWarning, all[0].Severity)
		assert.Equal(t, "Pair[Handler, int]: [skipped-instance] no descriptor for Handler", all[0].String())
		assert.Equal(t, "info", all[1].Severity.String())
	}
}

func TestDiagnostic_StringWithoutType(t *testing.T) {
	d := Diagnostic{Message: "nothing to describe"}
	assert.Equal(t, "nothing to describe", d.String())
	assert.Equal(t, "unknown", Severity(7).String())
}
