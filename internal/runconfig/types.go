package runconfig

import (
	"cmp"
	"slices"
)

// Constant launch settings of every converted configuration.
const (
	RequestLaunch     = "launch"
	ConsoleIntegrated = "integratedTerminal"
)

// Configuration is one normalized run configuration.
type Configuration struct {
	Name string
	// Kind is the source configuration type, e.g. "PythonConfigurationType".
	Kind    string
	Request string
	// Program and Module are mutually exclusive; Module wins when both are set.
	Program      string
	Module       string
	Console      string
	Cwd          string
	Args         []string
	Env          map[string]string
	Presentation Presentation
	// Priority is the rank of Presentation.Group in its GroupTable.
	Priority int
}

// Presentation controls where the entry appears in the launch selector.
type Presentation struct {
	Hidden bool   `json:"hidden"`
	Group  string `json:"group"`
	Order  int    `json:"order"`
}

// New returns a configuration with the constant launch settings applied.
func New(name, kind string) Configuration {
	return Configuration{
		Name:    name,
		Kind:    kind,
		Request: RequestLaunch,
		Console: ConsoleIntegrated,
	}
}

// Sort orders configurations by group priority, then by order within the
// group. Ties keep their input order.
func Sort(configs []Configuration) {
	slices.SortStableFunc(configs, func(a, b Configuration) int {
		return cmp.Or(
			cmp.Compare(a.Priority, b.Priority),
			cmp.Compare(a.Presentation.Order, b.Presentation.Order),
		)
	})
}
