package config

// Config is the root of a converter configuration file.
type Config struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Groups declares the presentation groups and their display order.
	Groups Groups `yaml:"groups"`

	// Pytest describes how test-runner configurations are recognized and launched.
	Pytest Pytest `yaml:"pytest"`

	// DebuggerType is the launch "type" every converted configuration gets.
	DebuggerType string `yaml:"debugger_type,omitempty"`

	// UnbufferedEnv is the environment variable dropped from every configuration.
	UnbufferedEnv string `yaml:"unbuffered_env,omitempty"`

	// Placeholders maps source path tokens to their target equivalents.
	Placeholders Placeholders `yaml:"placeholders"`
}

// Groups lists the group labels. Priorities follow declaration order:
// Run is 1, Test is 2, Hidden continue from 3, Folders after the hidden ones.
type Groups struct {
	Run     string   `yaml:"run,omitempty"`
	Test    string   `yaml:"test,omitempty"`
	Hidden  []string `yaml:"hidden,omitempty"`
	Folders []string `yaml:"folders,omitempty"`
}

// Pytest holds the test-runner settings.
type Pytest struct {
	// Factory is the factoryName a "tests" configuration must carry.
	Factory string `yaml:"factory,omitempty"`
	// Module is the launch module for test configurations.
	Module string `yaml:"module,omitempty"`
	// ExtraArgsOption names the option holding additional runner arguments.
	ExtraArgsOption string `yaml:"extra_args_option,omitempty"`
}

// Placeholders holds the path tokens of both IDEs.
type Placeholders struct {
	ProjectDir      string `yaml:"project_dir,omitempty"`
	ProjectParent   string `yaml:"project_parent,omitempty"`
	Workspace       string `yaml:"workspace,omitempty"`
	WorkspaceParent string `yaml:"workspace_parent,omitempty"`
}

// Built-in values used by Default and for missing keys.
const (
	DefaultRunGroup        = "1.Run"
	DefaultTestGroup       = "2.Test"
	DefaultPytestFactory   = "py.test"
	DefaultPytestModule    = "pytest"
	DefaultExtraArgsOption = "_new_additionalArguments"
	DefaultDebuggerType    = "debugpy"
	DefaultUnbufferedEnv   = "PYTHONUNBUFFERED"
	DefaultProjectDir      = "$PROJECT_DIR$"
	DefaultProjectParent   = "$PROJECT_DIR$/.."
	DefaultWorkspace       = "${workspaceFolder}"
	DefaultWorkspaceParent = "${workspaceFolder}"
)
