package vscode

import (
	"slices"

	"runconfig-converter/internal/common"
	"runconfig-converter/internal/runconfig"
)

// Launch is one entry of the launch.json "configurations" array.
type Launch struct {
	Type         string                 `json:"type"`
	Name         string                 `json:"name"`
	Request      string                 `json:"request"`
	Console      string                 `json:"console"`
	Program      *string                `json:"program,omitempty"`
	Cwd          string                 `json:"cwd"`
	Presentation runconfig.Presentation `json:"presentation"`
	JustMyCode   bool                   `json:"justMyCode"`
	Args         []string               `json:"args,omitempty"`
	Env          map[string]string      `json:"env,omitempty"`
	Module       string                 `json:"module,omitempty"`
}

// Mapper converts normalized configurations to launch entries.
type Mapper struct {
	// DebuggerType is the launch type of every entry, e.g. "debugpy".
	DebuggerType string
}

// NewMapper creates a mapper emitting the given debugger type.
func NewMapper(debuggerType string) *Mapper {
	return &Mapper{DebuggerType: debuggerType}
}

// Map converts configurations in order.
func (m *Mapper) Map(configs []runconfig.Configuration) []Launch {
	launches := common.Map(configs, m.MapOne)
	if launches == nil {
		launches = []Launch{}
	}

	return launches
}

// MapOne converts a single configuration.
func (m *Mapper) MapOne(c runconfig.Configuration) Launch {
	l := Launch{
		Type:         m.DebuggerType,
		Name:         c.Name,
		Request:      c.Request,
		Console:      c.Console,
		Cwd:          c.Cwd,
		Presentation: c.Presentation,
		Args:         fixEmptyFilter(c.Args),
	}

	if len(c.Env) > 0 {
		l.Env = c.Env
	}

	if c.Module != "" {
		l.Module = c.Module
	} else {
		program := c.Program
		l.Program = &program
	}

	return l
}

// fixEmptyFilter replaces an empty argument following the first "-k" with
// a single space; pytest rejects an empty keyword expression.
func fixEmptyFilter(args []string) []string {
	if common.IsEmpty(args) {
		return nil
	}

	args = slices.Clone(args)

	i := slices.Index(args, "-k")
	if i >= 0 && i+1 < len(args) && args[i+1] == "" {
		args[i+1] = " "
	}

	return args
}
