package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"runconfig-converter/internal/pathtoken"
	"runconfig-converter/internal/runconfig"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// SchemaVersion is the only configuration schema version understood.
const SchemaVersion = "1"

// Default returns the built-in configuration.
func Default() *Config {
	var c Config

	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	setDefault(&c.Version, SchemaVersion)
	setDefault(&c.Groups.Run, DefaultRunGroup)
	setDefault(&c.Groups.Test, DefaultTestGroup)
	setDefault(&c.Pytest.Factory, DefaultPytestFactory)
	setDefault(&c.Pytest.Module, DefaultPytestModule)
	setDefault(&c.Pytest.ExtraArgsOption, DefaultExtraArgsOption)
	setDefault(&c.DebuggerType, DefaultDebuggerType)
	setDefault(&c.UnbufferedEnv, DefaultUnbufferedEnv)
	setDefault(&c.Placeholders.ProjectDir, DefaultProjectDir)
	setDefault(&c.Placeholders.ProjectParent, DefaultProjectParent)
	setDefault(&c.Placeholders.Workspace, DefaultWorkspace)
	setDefault(&c.Placeholders.WorkspaceParent, DefaultWorkspaceParent)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate checks the schema version and that every group label is
// non-empty and declared once.
func (c *Config) Validate() error {
	if c.Version != SchemaVersion {
		return fmt.Errorf("%w: unsupported version %q", ErrInvalidConfig, c.Version)
	}

	seen := make(map[string]bool)

	for _, label := range c.groupLabels() {
		if label == "" {
			return fmt.Errorf("%w: empty group label", ErrInvalidConfig)
		}

		if seen[label] {
			return fmt.Errorf("%w: group %q declared more than once", ErrInvalidConfig, label)
		}

		seen[label] = true
	}

	return nil
}

func (c *Config) groupLabels() []string {
	labels := []string{c.Groups.Run, c.Groups.Test}
	labels = append(labels, c.Groups.Hidden...)

	return append(labels, c.Groups.Folders...)
}

// GroupTable builds the group priority table described by c.Groups.
func (c *Config) GroupTable() *runconfig.GroupTable {
	return runconfig.NewGroupTable(c.Groups.Run, c.Groups.Test, c.Groups.Hidden, c.Groups.Folders)
}

// Rewriter builds the path-token rewriter described by c.Placeholders.
func (c *Config) Rewriter() pathtoken.Rewriter {
	return pathtoken.Rewriter{
		ProjectParent:   c.Placeholders.ProjectParent,
		ProjectDir:      c.Placeholders.ProjectDir,
		WorkspaceParent: c.Placeholders.WorkspaceParent,
		Workspace:       c.Placeholders.Workspace,
	}
}
