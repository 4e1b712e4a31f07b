// Package version exposes build metadata for the project.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds.
// Short and Full render the version for CLI output and logs; UserAgent tags
// client connections so the daemon log shows which alarm-ctl build called it.
package version
