package vscode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runconfig-converter/internal/runconfig"
)

func TestMapOne_Script(t *testing.T) {
	c := runconfig.New("App", "PythonConfigurationType")
	c.Program = "${workspaceFolder}/main.py"
	c.Presentation = runconfig.Presentation{Group: "1.Run", Order: 1}

	l := NewMapper("debugpy").MapOne(c)

	data, err := json.Marshal(l)
	require.NoError(t, err)

	want := `{"type":"debugpy","name":"App","request":"launch","console":"integratedTerminal",` +
		`"program":"${workspaceFolder}/main.py","cwd":"",` +
		`"presentation":{"hidden":false,"group":"1.Run","order":1},"justMyCode":false}`
	assert.JSONEq(t, want, string(data))
	assert.Equal(t, want, string(data), "key order")
}

func TestMapOne_EmptyProgramIsEmitted(t *testing.T) {
	l := NewMapper("debugpy").MapOne(runconfig.New("App", "PythonConfigurationType"))

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"program":""`)
}

func TestMapOne_Module(t *testing.T) {
	c := runconfig.New("Tests", "tests")
	c.Module = "pytest"
	c.Program = "ignored.py"
	c.Args = []string{"-k", ""}
	c.Env = map[string]string{"DEBUG": "1"}

	l := NewMapper("debugpy").MapOne(c)

	assert.Nil(t, l.Program)
	assert.Equal(t, "pytest", l.Module)
	assert.Equal(t, []string{"-k", " "}, l.Args)
	assert.Equal(t, []string{"-k", ""}, c.Args, "input must not be modified")

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "program")
	assert.Equal(t, "pytest", fields["module"])
	assert.Equal(t, map[string]any{"DEBUG": "1"}, fields["env"])
}

func TestMapOne_OmitsEmptyArgsAndEnv(t *testing.T) {
	c := runconfig.New("App", "PythonConfigurationType")
	c.Args = []string{}
	c.Env = map[string]string{}

	data, err := json.Marshal(NewMapper("debugpy").MapOne(c))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "args")
	assert.NotContains(t, fields, "env")
	assert.NotContains(t, fields, "module")
}

func TestFixEmptyFilter(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"empty filter", []string{"-k", ""}, []string{"-k", " "}},
		{"filter with value", []string{"-k", "value"}, []string{"-k", "value"}},
		{"filter last", []string{"-x", "-k"}, []string{"-x", "-k"}},
		{"only first filter", []string{"-k", "a", "-k", ""}, []string{"-k", "a", "-k", ""}},
		{"no filter", []string{"", "-v"}, []string{"", "-v"}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fixEmptyFilter(tt.input))
		})
	}
}

func TestMap(t *testing.T) {
	m := NewMapper("debugpy")

	assert.Equal(t, []Launch{}, m.Map(nil))

	launches := m.Map([]runconfig.Configuration{
		runconfig.New("a", "PythonConfigurationType"),
		runconfig.New("b", "tests"),
	})
	require.Len(t, launches, 2)
	assert.Equal(t, "a", launches[0].Name)
	assert.Equal(t, "b", launches[1].Name)
	assert.Equal(t, "debugpy", launches[1].Type)
}
