// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Chapsplit is the canonical application identifier used for filesystem paths and CLI branding.
	Chapsplit = "chapsplit"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
