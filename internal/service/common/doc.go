// Package common holds helpers shared by the alarm-ctl commands.
//
// It provides a gRPC client wrapper with per-call timeouts and detection of
// the current system actor (hostname/username).
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
