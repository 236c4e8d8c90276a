package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const workspace = `<project version="4">
  <component name="RunManager">
    <configuration name="Internal" type="PythonConfigurationType" folderName="internal">
      <option name="SCRIPT_NAME" value="$PROJECT_DIR$/tools/seed.py" />
    </configuration>
    <configuration name="App" type="PythonConfigurationType">
      <option name="SCRIPT_NAME" value="$PROJECT_DIR$/main.py" />
    </configuration>
  </component>
</project>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_Convert(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := writeFile(t, dir, "workspace.xml", workspace)
	cfg := writeFile(t, dir, "converter.yaml", "groups:\n  hidden: [internal]\n")
	output := filepath.Join(dir, "launch.json")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run([]string{"-i", input, "-o", output, "-c", cfg}, stdout, stderr)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t,
		"> OK written to "+output+".\n"+
			"> Copy "+output+" to your VSCode project / workspace and have fun!\n",
		stdout.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var doc struct {
		Configurations []struct {
			Name         string `json:"name"`
			Program      string `json:"program"`
			Presentation struct {
				Hidden bool `json:"hidden"`
			} `json:"presentation"`
		} `json:"configurations"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Configurations, 2)
	require.Equal(t, "App", doc.Configurations[0].Name)
	require.Equal(t, "${workspaceFolder}/main.py", doc.Configurations[0].Program)
	require.True(t, doc.Configurations[1].Presentation.Hidden)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := run([]string{"--help"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	require.Contains(t, stdout.String(), "Usage: runconfig-converter [OPTIONS]")
}

func TestRun_UnexpectedArgument(t *testing.T) {
	t.Parallel()

	err := run([]string{"extra"}, &bytes.Buffer{}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "unexpected arguments")
}

func TestRun_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	err := run([]string{"--log-level", "loud"}, &bytes.Buffer{}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	err := run([]string{"-i", filepath.Join(dir, "workspace.xml"), "-o", filepath.Join(dir, "launch.json")}, stdout, &bytes.Buffer{})

	require.ErrorIs(t, err, os.ErrNotExist)
	require.Empty(t, stdout.String())
}

func TestRun_PrintConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "converter.yaml", "groups:\n  hidden: [internal]\n")
	stdout := &bytes.Buffer{}

	err := run([]string{"-c", cfgFile, "--print-config", "-o", filepath.Join(dir, "launch.json")}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	require.Contains(t, stdout.String(), "version: \"1\"")
	require.Contains(t, stdout.String(), "- internal")
	require.Contains(t, stdout.String(), "debugger_type: debugpy")
	require.NotContains(t, stdout.String(), "> OK")

	_, err = os.Stat(filepath.Join(dir, "launch.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_DumpGoesToStderr(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "workspace.xml", `<project><configuration name="App" type="PythonConfigurationType"/></project>`)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	err := run([]string{"-i", input, "-o", filepath.Join(dir, "launch.json"), "--dump"}, stdout, stderr)

	require.NoError(t, err)
	require.Contains(t, stderr.String(), "runconfig.Configuration")
	require.NotContains(t, stdout.String(), "runconfig.Configuration")
}
