package alarm

import (
	"fmt"
	"strings"
)

// InterruptionFilter is the host's do-not-disturb level.
type InterruptionFilter int

const (
	// FilterUnknown means the host could not report a level.
	FilterUnknown InterruptionFilter = iota
	// FilterAll allows every interruption.
	FilterAll
	// FilterPriority allows only priority interruptions.
	FilterPriority
	// FilterNone blocks every interruption, alarms included.
	FilterNone
	// FilterAlarms allows alarms only.
	FilterAlarms
)

// filterNames maps the textual names accepted in the policy file.
//
//nolint:gochecknoglobals // Read-only lookup table.
var filterNames = map[string]InterruptionFilter{
	"unknown":   FilterUnknown,
	"all":       FilterAll,
	"allow_all": FilterAll,
	"priority":  FilterPriority,
	"none":      FilterNone,
	"block_all": FilterNone,
	"alarms":    FilterAlarms,
}

// ParseInterruptionFilter converts a policy file value into a filter.
func ParseInterruptionFilter(s string) (InterruptionFilter, error) {
	f, ok := filterNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return FilterUnknown, fmt.Errorf("unknown interruption filter %q", s)
	}

	return f, nil
}

// String returns the canonical lower-case name.
func (f InterruptionFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterPriority:
		return "priority"
	case FilterNone:
		return "none"
	case FilterAlarms:
		return "alarms"
	default:
		return "unknown"
	}
}

// BlocksAll reports whether the filter suppresses alarms.
func (f InterruptionFilter) BlocksAll() bool {
	return f == FilterNone
}
