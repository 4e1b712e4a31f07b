package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// TestStatic checks the in-memory policy.
func TestStatic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewStatic(false, domain.FilterAll)

	require.False(t, p.IsPolicyAccessGranted(ctx))
	require.Equal(t, domain.FilterAll, p.CurrentInterruptionFilter(ctx))

	p.SetFilter(domain.FilterNone)
	require.Equal(t, domain.FilterNone, p.CurrentInterruptionFilter(ctx))

	p.RequestPolicyAccess(ctx)
	require.Equal(t, 1, p.Requests())
}

// TestFile_MissingUsesDefaults ensures a missing file allows everything.
func TestFile_MissingUsesDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	p, err := NewFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.True(t, p.IsPolicyAccessGranted(ctx))
	require.Equal(t, domain.FilterAll, p.CurrentInterruptionFilter(ctx))
}

// TestFile_LoadAndKeepOnError loads a file and keeps the last good state on bad input.
func TestFile_LoadAndKeepOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "policy.yaml")

	require.NoError(t, Save(path, Settings{AccessGranted: false, InterruptionFilter: "none"}))

	p, err := NewFile(path)
	require.NoError(t, err)
	require.False(t, p.IsPolicyAccessGranted(ctx))
	require.Equal(t, domain.FilterNone, p.CurrentInterruptionFilter(ctx))

	require.NoError(t, os.WriteFile(path, []byte("interruption_filter: silent\n"), 0o600))
	require.Error(t, p.Reload())
	require.Equal(t, domain.FilterNone, p.CurrentInterruptionFilter(ctx))

	require.NoError(t, os.WriteFile(path, []byte("access_granted: [\n"), 0o600))
	require.Error(t, p.Reload())

	_, err = NewFile(path)
	require.Error(t, err)
}

// TestFile_Watch picks up edits made while the daemon runs.
func TestFile_Watch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, Save(path, Settings{AccessGranted: true, InterruptionFilter: "all"}))

	p, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, p.Watch(ctx))

	require.NoError(t, Save(path, Settings{AccessGranted: true, InterruptionFilter: "none"}))

	require.Eventually(t, func() bool {
		return p.CurrentInterruptionFilter(ctx) == domain.FilterNone
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Remove(path))

	require.Eventually(t, func() bool {
		return p.CurrentInterruptionFilter(ctx) == domain.FilterAll
	}, 5*time.Second, 20*time.Millisecond)
}
