// Package version reports the version and build metadata of the challenge
// binary.
//
// Values come from, in order of preference:
//   - Version, Commit and Date, injected at link time with -ldflags
//   - the module version and vcs.* settings from debug.ReadBuildInfo()
//   - "development" / "unknown" for local builds
//
// GetInfo returns everything as an Info, whose String method gives the short
// form used by --version, e.g. "v1.2.0 (0123456, built 2026-01-01T00:00:00Z)".
// Write prints the long form used by the version subcommand.
//
// A release build sets the values with:
//
//	go build -ldflags "-X github.com/hybridanalysis/challenge/version.Version=v1.2.0 \
//	  -X github.com/hybridanalysis/challenge/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/hybridanalysis/challenge/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version
