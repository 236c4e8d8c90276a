package convert

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"runconfig-converter/internal/config"
	"runconfig-converter/internal/diagnostic"
	"runconfig-converter/internal/jetbrains"
	"runconfig-converter/internal/vscode"
)

// Default file names, relative to the working directory.
const (
	DefaultInput  = "workspace.xml"
	DefaultOutput = "launch.json"
)

// Options describes one conversion run.
type Options struct {
	InputPath  string
	OutputPath string
	Mode       vscode.MergeMode
	// Dump receives a dump of the normalized configurations when non-nil.
	Dump io.Writer
}

// Result summarizes a finished run.
type Result struct {
	OutputPath  string
	Written     int
	Diagnostics diagnostic.Diagnostics
}

// Converter converts a JetBrains workspace file to a VS Code launch file.
type Converter struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a converter. A nil cfg selects the built-in configuration.
func New(cfg *config.Config, logger *slog.Logger) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Converter{cfg: cfg, logger: logger}
}

// Run performs the conversion. The output file is only written once the
// whole input has been converted; on error it is left untouched.
func (c *Converter) Run(opts Options) (*Result, error) {
	if opts.InputPath == "" {
		opts.InputPath = DefaultInput
	}

	if opts.OutputPath == "" {
		opts.OutputPath = DefaultOutput
	}

	c.logger.Debug("Extracting run configurations.", "input", opts.InputPath)

	extracted, err := jetbrains.NewExtractor(c.cfg).ExtractFile(opts.InputPath)
	if err != nil {
		if extracted != nil {
			extracted.Diagnostics.Log(c.logger)
		}

		return nil, err
	}

	result := &Result{OutputPath: opts.OutputPath}
	result.Diagnostics.Merge(extracted.Diagnostics)

	c.logger.Debug("Run configurations extracted.",
		"count", len(extracted.Configurations),
		"skipped", len(extracted.Diagnostics.Infos),
	)

	if opts.Dump != nil {
		spew.Fdump(opts.Dump, extracted.Configurations)
	}

	launches := vscode.NewMapper(c.cfg.DebuggerType).Map(extracted.Configurations)

	existing, err := vscode.ReadExisting(opts.OutputPath)
	if err != nil {
		return nil, err
	}

	doc, diags, err := vscode.MergeDocument(existing, launches, opts.Mode)
	if err != nil {
		return nil, err
	}

	result.Diagnostics.Merge(diags)

	if err := vscode.WriteFile(opts.OutputPath, doc); err != nil {
		return nil, fmt.Errorf("failed to write launch file: %w", err)
	}

	result.Written = len(launches)
	result.Diagnostics.Log(c.logger)
	c.logger.Info("Launch file written.", "output", opts.OutputPath, "configurations", result.Written)

	return result, nil
}
