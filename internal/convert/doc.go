// Package convert runs one conversion: it loads the workspace file, maps
// its run configurations, and writes the launch document. It owns no
// state beyond a single Run call.
package convert
