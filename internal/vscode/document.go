package vscode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"runconfig-converter/internal/diagnostic"
)

// ConfigurationsKey is the launch.json key holding the entries.
const ConfigurationsKey = "configurations"

// MergeMode selects what happens to existing document content.
type MergeMode int

const (
	// MergeKeep preserves the other top-level keys of the existing document.
	MergeKeep MergeMode = iota
	// MergeOverwrite discards the existing document.
	MergeOverwrite
)

var prettyOptions = &pretty.Options{Indent: "  "}

// MergeDocument places launches under "configurations" in existing and
// returns the pretty-printed result. Existing content that is empty, not
// valid JSON, or not an object is replaced by an empty object; a warning
// is recorded unless the content was empty.
func MergeDocument(existing []byte, launches []Launch, mode MergeMode) ([]byte, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	if launches == nil {
		launches = []Launch{}
	}

	entries, err := marshalNoEscape(launches)
	if err != nil {
		return nil, diags, fmt.Errorf("encoding configurations: %w", err)
	}

	base := []byte("{}")
	if mode == MergeKeep && len(bytes.TrimSpace(existing)) > 0 {
		if gjson.ValidBytes(existing) && gjson.ParseBytes(existing).IsObject() {
			base = existing
		} else {
			diags.AddWarning(diagnostic.CodeInvalidDocument,
				"existing launch document is not a JSON object, starting from an empty one", "", "")
		}
	}

	merged, err := sjson.SetRawBytes(base, ConfigurationsKey, entries)
	if err != nil {
		return nil, diags, fmt.Errorf("merging configurations: %w", err)
	}

	return pretty.PrettyOptions(merged, prettyOptions), diags, nil
}

// marshalNoEscape encodes v into JSON without escaping <, > and &.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
