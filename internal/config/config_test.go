package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and format validations.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Missing socket.
	require.Error(t, Validate(new(Config)))

	// Bad socket.
	require.Error(t, Validate(&Config{ServerAddress: "bad:address"}))

	// Bad zone and level.
	require.Error(t, Validate(&Config{ServerAddress: "127.0.0.1:0", TimeZone: "Mars/Olympus"}))
	require.Error(t, Validate(&Config{ServerAddress: "127.0.0.1:0", LogLevel: "loud"}))
	require.Error(t, Validate(&Config{ServerAddress: "127.0.0.1:0", CronLogLevel: "chatty"}))

	// Defaults.
	settings := &Config{ServerAddress: "127.0.0.1:0", LogLevel: "debug"}
	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultTimeout, settings.Timeout)

	loc, err := settings.Location()
	require.NoError(t, err)
	require.Equal(t, time.Local, loc)
}

// TestLocation resolves named zones.
func TestLocation(t *testing.T) {
	t.Parallel()

	loc, err := (&Config{TimeZone: "UTC"}).Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ServerAddress: "127.0.0.1:50051",
		Timeout:       3 * time.Second,
		PolicyFile:    filepath.Join(dir, DefaultPolicyFilename),
		TimeZone:      "UTC",
		LogLevel:      "warn",
		CronLogLevel:  "error",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	require.Error(t, Save(path, nil))
}
