package diagnostic

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics
	d.AddInfo(CodeDuplicateName, "duplicate configuration skipped", "App", "")
	d.AddError(CodeUnexpectedFactory, "unexpected type 'unittests'", "Tests", "factoryName")

	require.Len(t, d.Infos, 1)
	require.Len(t, d.Errors, 1)
	assert.Empty(t, d.Warnings)
	assert.Equal(t, Diagnostic{
		Severity: DiagnosticError,
		Code:     CodeUnexpectedFactory,
		Message:  "unexpected type 'unittests'",
		Config:   "Tests",
		Field:    "factoryName",
	}, d.Errors[0])
}

func TestDiagnostics_MergeAndCount(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo(CodeEmptyName, "configuration without a name skipped", "", "name")
	b.AddInfo(CodeEmptyName, "configuration without a name skipped", "", "name")
	b.AddWarning(CodeInvalidDocument, "existing document is not a JSON object", "", "")

	a.Merge(b)

	assert.Equal(t, 2, a.Count(CodeEmptyName))
	assert.Equal(t, 1, a.Count(CodeInvalidDocument))
	assert.Equal(t, 0, a.Count(CodeUnknownType))
}

func TestDiagnostics_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var d Diagnostics
	d.AddInfo(CodeUnknownType, "unsupported configuration type skipped", "Node app", "type")
	d.AddWarning(CodeInvalidDocument, "existing document is not a JSON object", "", "")
	d.AddError(CodeUnknownGroup, `unknown group "tools"`, "Tool", "folderName")
	d.Log(logger)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "code=unknown_type")
	assert.Contains(t, out, `config="Node app"`)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "field=folderName")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
