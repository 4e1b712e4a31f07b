// Package policy provides the notification policy (do-not-disturb) service.
//
// File reads the state from a small YAML file and reloads it when the file
// changes; Static holds a fixed state for tests and for daemons started
// without a policy file.
package policy
