// Package main provides the CLI entrypoint for runconfig-converter.
//
// runconfig-converter reads the run configurations of a JetBrains IDE
// (workspace.xml) and writes the equivalent VS Code debugger entries into
// launch.json.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/xhd2015/less-gen/flags"

	"runconfig-converter/internal/config"
	"runconfig-converter/internal/convert"
	"runconfig-converter/internal/vscode"
)

const help = `
runconfig-converter converts JetBrains run configurations to VS Code launch configurations

Usage: runconfig-converter [OPTIONS]

Options:
  -i,--input FILE                 JetBrains workspace file (default: workspace.xml)
  -o,--output FILE                VS Code launch file (default: launch.json)
  -c,--config FILE                converter configuration in YAML: groups, hidden folders, placeholders
  --overwrite                     discard the existing content of the launch file instead of merging
  --dump                          dump the normalized configurations to stderr
  --print-config                  print the effective converter configuration as YAML and exit
  --log-level LEVEL               debug, info, warn or error (default: warn)
  --log-format FORMAT             text or json (default: text)
  -h,--help                       show help message

Examples:
  # copy .idea/workspace.xml next to the tool, then
  runconfig-converter

  # start a configuration file from the built-in defaults
  runconfig-converter --print-config > converter.yaml

  # hide internal folders and write straight into the project
  runconfig-converter -i .idea/workspace.xml -o .vscode/launch.json -c converter.yaml
`

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if slices.ContainsFunc(args, isHelpArg) {
		fmt.Fprint(stdout, strings.TrimPrefix(help, "\n"))
		return nil
	}

	var input string
	var output string
	var configFile string
	var overwrite bool
	var dump bool
	var printConfig bool
	logLevel := "warn"
	logFormat := "text"

	args, err := flags.String("-i,--input", &input).
		String("-o,--output", &output).
		String("-c,--config", &configFile).
		Bool("--overwrite", &overwrite).
		Bool("--dump", &dump).
		Bool("--print-config", &printConfig).
		String("--log-level", &logLevel).
		String("--log-format", &logFormat).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	if len(args) > 0 {
		return &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v, try `runconfig-converter --help`", args)}
	}

	logLevel, logFormat, err = convert.ValidateLogSettings(logLevel, logFormat)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	logger := convert.NewLogger(logLevel, logFormat, stderr)

	cfg := config.Default()
	if configFile != "" {
		cfg, err = config.LoadFile(configFile)
		if err != nil {
			return err
		}

		logger.Debug("Converter configuration loaded.", "path", configFile)
	}

	if printConfig {
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}

		_, err = stdout.Write(data)

		return err
	}

	opts := convert.Options{
		InputPath:  input,
		OutputPath: output,
	}

	if overwrite {
		opts.Mode = vscode.MergeOverwrite
	}

	if dump {
		opts.Dump = stderr
	}

	res, err := convert.New(cfg, logger).Run(opts)
	if err != nil {
		return err
	}

	logger.Debug("Conversion finished.", slog.Int("configurations", res.Written))

	fmt.Fprintf(stdout, "> OK written to %s.\n", res.OutputPath)
	fmt.Fprintf(stdout, "> Copy %s to your VSCode project / workspace and have fun!\n", res.OutputPath)

	return nil
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
