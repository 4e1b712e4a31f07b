// Package client implements the alarm-ctl commands: set, edit, delete,
// status and export. Each one talks to the daemon and prints the status
// line the way the alarm screen shows it.
package client
