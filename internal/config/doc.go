// Package config defines the settings used by both binaries and provides
// helpers to load, validate and save them in YAML format.
//
// Config holds the daemon's gRPC address, the RPC timeout, the policy file,
// the time zone picked times are read in and the log level.
package config
