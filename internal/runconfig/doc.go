// Package runconfig defines the normalized run configuration shared by the
// JetBrains extractor and the VS Code emitter, together with the group
// priority table that fixes the display order of converted entries.
package runconfig
