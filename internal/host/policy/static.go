package policy

import (
	"context"
	"sync"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// Static is a policy held in memory.
type Static struct {
	mu       sync.RWMutex
	granted  bool
	filter   domain.InterruptionFilter
	requests int
}

// NewStatic creates a policy with the given access and filter.
func NewStatic(granted bool, filter domain.InterruptionFilter) *Static {
	return &Static{
		granted: granted,
		filter:  filter,
	}
}

// IsPolicyAccessGranted reports the configured access.
func (s *Static) IsPolicyAccessGranted(context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.granted
}

// CurrentInterruptionFilter reports the configured filter.
func (s *Static) CurrentInterruptionFilter(context.Context) domain.InterruptionFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter
}

// RequestPolicyAccess records the request; nothing can grant it.
func (s *Static) RequestPolicyAccess(ctx context.Context) {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()

	logger.Warn(ctx, "Notification policy access requested but the policy is fixed")
}

// SetFilter changes the filter.
func (s *Static) SetFilter(filter domain.InterruptionFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = filter
}

// Requests returns how many times access was requested.
func (s *Static) Requests() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.requests
}
