package pathtoken

import "strings"

// Rewriter maps source placeholders to target placeholders.
type Rewriter struct {
	ProjectParent   string
	ProjectDir      string
	WorkspaceParent string
	Workspace       string
}

// Rewrite returns value with its placeholders translated.
func (r Rewriter) Rewrite(value string) string {
	if r.ProjectParent != "" && strings.Contains(value, r.ProjectParent) {
		return strings.ReplaceAll(value, r.ProjectParent, r.WorkspaceParent)
	}

	if r.ProjectDir != "" && strings.Contains(value, r.ProjectDir) {
		return strings.ReplaceAll(value, r.ProjectDir, r.Workspace)
	}

	return value
}

// RewriteAll rewrites each value independently and returns a new slice.
func (r Rewriter) RewriteAll(values []string) []string {
	if values == nil {
		return nil
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = r.Rewrite(v)
	}

	return out
}
