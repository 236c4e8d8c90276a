// Package pathtoken rewrites IDE path placeholders in stored values.
//
// JetBrains IDEs store paths relative to "$PROJECT_DIR$"; VS Code resolves
// "${workspaceFolder}" instead. A Rewriter translates the first kind of
// token into the second, one whole value at a time:
//
//  1. If the value contains the project-parent token, every occurrence is
//     replaced with the workspace-parent token.
//  2. Otherwise, if it contains the project token, every occurrence is
//     replaced with the workspace token.
//
// At most one of the two substitutions applies to a value.
package pathtoken
