// Package alarm implements the gRPC transport for the alarm controller.
//
// It validates requests, converts wire messages to domain values and maps
// controller outcomes back to responses.
package alarm
