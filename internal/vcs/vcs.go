package vcs

import "runtime/debug"

// Version returns the VCS revision the binary was built from, with a
// -dirty suffix for modified trees and "unknown" when no build info is
// embedded.
func Version() string {
	var (
		revision string
		modified bool
	)

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return "unknown"
	}

	if modified {
		return revision + "-dirty"
	}

	return revision
}
