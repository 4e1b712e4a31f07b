package policy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// Settings is the on-disk shape of the policy file.
type Settings struct {
	// AccessGranted mirrors the host's "policy access granted" flag.
	AccessGranted bool `yaml:"access_granted"`
	// InterruptionFilter is one of all, priority, alarms or none.
	InterruptionFilter string `yaml:"interruption_filter"`
}

// DefaultSettings applies when the file does not exist.
func DefaultSettings() Settings {
	return Settings{
		AccessGranted:      true,
		InterruptionFilter: domain.FilterAll.String(),
	}
}

// File is a policy backed by a YAML file.
type File struct {
	// path is the policy file location.
	path string

	// mu protects the fields below.
	mu      sync.RWMutex
	granted bool
	filter  domain.InterruptionFilter
}

// NewFile creates a policy for path and loads it once. A missing file
// yields the defaults; a broken one is an error.
func NewFile(path string) (*File, error) {
	f := &File{
		path: filepath.Clean(path),
	}

	if err := f.apply(DefaultSettings()); err != nil {
		return nil, err
	}

	if err := f.Reload(); err != nil {
		return nil, err
	}

	return f, nil
}

// Path returns the policy file location.
func (f *File) Path() string {
	return f.path
}

// IsPolicyAccessGranted reports the access flag from the file.
func (f *File) IsPolicyAccessGranted(context.Context) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.granted
}

// CurrentInterruptionFilter reports the filter from the file.
func (f *File) CurrentInterruptionFilter(context.Context) domain.InterruptionFilter {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.filter
}

// RequestPolicyAccess tells the user how to grant access.
func (f *File) RequestPolicyAccess(ctx context.Context) {
	logger.WarnKV(
		ctx,
		"Notification policy access is not granted; set access_granted: true in the policy file",
		"policy_file", f.path,
	)
}

// Reload re-reads the file. On error the previous state is kept.
func (f *File) Reload() error {
	contents, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f.apply(DefaultSettings())
		}

		return fmt.Errorf("read policy file: %w", err)
	}

	settings := DefaultSettings()
	if err = yaml.Unmarshal(contents, &settings); err != nil {
		return fmt.Errorf("decode policy file: %w", err)
	}

	return f.apply(settings)
}

// Watch reloads the file whenever it changes until ctx is done. The parent
// directory is watched so replace-by-rename saves are noticed too.
func (f *File) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create policy watcher: %w", err)
	}

	if err = watcher.Add(filepath.Dir(f.path)); err != nil {
		_ = watcher.Close()

		return fmt.Errorf("watch policy directory: %w", err)
	}

	go f.watchLoop(ctx, watcher)

	return nil
}

// watchLoop handles watcher events until ctx is done.
func (f *File) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		_ = watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != f.path {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			if err := f.Reload(); err != nil {
				logger.ErrorKV(ctx, "Policy reload failed, keeping previous state", "error", err)
				continue
			}

			logger.InfoKV(
				ctx,
				"Notification policy reloaded",
				"access_granted", f.IsPolicyAccessGranted(ctx),
				"interruption_filter", f.CurrentInterruptionFilter(ctx).String(),
			)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			logger.ErrorKV(ctx, "Policy watcher failed", "error", err)
		}
	}
}

// apply validates settings and swaps them in.
func (f *File) apply(settings Settings) error {
	filter, err := domain.ParseInterruptionFilter(settings.InterruptionFilter)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.granted = settings.AccessGranted
	f.filter = filter

	return nil
}

// Save writes settings to path, mainly for tests and first-run setup.
func Save(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode policy file: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), data, 0o600); err != nil {
		return fmt.Errorf("write policy file: %w", err)
	}

	return nil
}
