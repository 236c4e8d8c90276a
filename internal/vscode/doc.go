// Package vscode maps normalized run configurations onto VS Code launch
// entries and writes them into a launch.json document.
//
// Every entry carries type, name, request, console, program, cwd,
// presentation and justMyCode. Args and env are emitted only when non-empty.
// A test-runner entry emits module instead of program.
//
// The document is merged rather than replaced: other top-level keys of an
// existing launch.json survive and only "configurations" is overwritten.
// Content that is not a JSON object is treated as an empty document.
package vscode
