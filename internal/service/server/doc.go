// Package server runs the alarm daemon: it assembles the host services, the
// controller and the fired-alarm receiver and serves them over gRPC.
package server
