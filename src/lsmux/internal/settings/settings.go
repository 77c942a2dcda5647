// Package settings exposes global and per-folder configuration to the session manager.
package settings

//go:generate mockgen -destination=settingsmock/settings_mock.go -package=settingsmock . Provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/internal/fs"
	"github.com/uber/lsmux/src/lsmux/mapper"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FolderSettingsFile is the name of the per-folder settings file, read from the folder root.
const FolderSettingsFile = ".lsmux.yaml"

const (
	_debounceTimeout = 100 * time.Millisecond
	_defaultBinDir   = "lsmux/bin"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// ChangeFunc is notified when the settings file of a watched folder changes.
type ChangeFunc func(ctx context.Context, key entity.FolderKey)

// Provider exposes scoped reads and writes of lsmux settings.
type Provider interface {
	// LanguageServer returns the process-wide language server settings, with defaults applied.
	LanguageServer() (entity.LanguageServerConfig, error)
	// Enabled reports whether language server sessions should run.
	Enabled() (bool, error)
	// SetEnabled overrides languageServer.external for the life of the process.
	SetEnabled(enabled bool)
	// FolderSettings returns the settings for folder. The folder's settings file wins over static configuration.
	FolderSettings(folder entity.Folder) (entity.FolderSettings, error)
	// WatchFolder starts watching the settings file of a folder.
	WatchFolder(key entity.FolderKey) error
	// UnwatchFolder stops watching the settings file of a folder.
	UnwatchFolder(key entity.FolderKey) error
	// OnFolderSettingsChange registers fn to be called after a watched settings file changes.
	OnFolderSettingsChange(fn ChangeFunc)
}

// Params are inbound parameters to initialize the Provider.
type Params struct {
	fx.In

	Config    config.Provider
	FS        fs.LsmuxFS
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

type provider struct {
	config config.Provider
	fs     fs.LsmuxFS
	logger *zap.SugaredLogger

	mu        sync.RWMutex
	enabled   *bool
	listeners []ChangeFunc
	watched   map[string]entity.FolderKey

	watcher        *fsnotify.Watcher
	watchCloser    chan struct{}
	watchDone      chan struct{}
	debounce       time.Duration
	debounceMu     sync.Mutex
	debounceTimers map[entity.FolderKey]*time.Timer
}

// New creates a settings Provider over the static configuration.
func New(p Params) (Provider, error) {
	s := newProvider(p.Config, p.FS, p.Logger.Named("settings"))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Warnf("failed to create settings watcher, folder settings changes require a restart: %v", err)
	} else {
		s.watcher = watcher
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.startWatching()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.stopWatching()
		},
	})

	return s, nil
}

func newProvider(cfg config.Provider, filesystem fs.LsmuxFS, logger *zap.SugaredLogger) *provider {
	return &provider{
		config:         cfg,
		fs:             filesystem,
		logger:         logger,
		watched:        make(map[string]entity.FolderKey),
		debounce:       _debounceTimeout,
		debounceTimers: make(map[entity.FolderKey]*time.Timer),
	}
}

func (s *provider) LanguageServer() (entity.LanguageServerConfig, error) {
	cfg := entity.LanguageServerConfig{}
	if err := s.config.Get(entity.LanguageServerConfigKey).Populate(&cfg); err != nil {
		return cfg, fmt.Errorf("getting config field %q: %w", entity.LanguageServerConfigKey, err)
	}

	if cfg.InstallDir == "" {
		cacheDir, err := s.fs.UserCacheDir()
		if err != nil {
			return cfg, fmt.Errorf("resolving install directory: %w", err)
		}
		cfg.InstallDir = filepath.Join(cacheDir, _defaultBinDir)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.enabled != nil {
		cfg.External = *s.enabled
	}
	return cfg, nil
}

func (s *provider) Enabled() (bool, error) {
	cfg, err := s.LanguageServer()
	if err != nil {
		return false, err
	}
	return cfg.External, nil
}

func (s *provider) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = &enabled
}

func (s *provider) FolderSettings(folder entity.Folder) (entity.FolderSettings, error) {
	if fromFile, ok, err := s.readSettingsFile(folder.Key); err != nil || ok {
		return fromFile, err
	}

	folders := map[string]entity.FolderSettings{}
	if err := s.config.Get(entity.FoldersConfigKey).Populate(&folders); err != nil {
		return entity.FolderSettings{}, fmt.Errorf("getting config field %q: %w", entity.FoldersConfigKey, err)
	}
	if result, ok := folders[string(folder.Key)]; ok {
		return result, nil
	}
	return folders[folder.Name], nil
}

// readSettingsFile reports ok when the folder has a settings file.
func (s *provider) readSettingsFile(key entity.FolderKey) (entity.FolderSettings, bool, error) {
	result := entity.FolderSettings{}
	dir, ok := mapper.FolderKeyToPath(key)
	if !ok {
		return result, false, nil
	}

	settingsPath := filepath.Join(dir, FolderSettingsFile)
	exists, err := s.fs.FileExists(settingsPath)
	if err != nil || !exists {
		return result, false, err
	}

	data, err := s.fs.ReadFile(settingsPath)
	if err != nil {
		return result, false, fmt.Errorf("reading %q: %w", settingsPath, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&result); err != nil && !errors.Is(err, io.EOF) {
		return result, false, fmt.Errorf("parsing %q: %w", settingsPath, err)
	}
	return result, true, nil
}

func (s *provider) WatchFolder(key entity.FolderKey) error {
	dir, ok := mapper.FolderKeyToPath(key)
	if !ok || s.watcher == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.watched[dir]; ok {
		return nil
	}
	if err := s.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %q: %w", dir, err)
	}
	s.watched[dir] = key
	return nil
}

func (s *provider) UnwatchFolder(key entity.FolderKey) error {
	dir, ok := mapper.FolderKeyToPath(key)
	if !ok || s.watcher == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.watched[dir]; !ok {
		return nil
	}
	delete(s.watched, dir)
	if err := s.watcher.Remove(dir); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
		return fmt.Errorf("unwatching %q: %w", dir, err)
	}
	return nil
}

func (s *provider) OnFolderSettingsChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *provider) startWatching() {
	if s.watcher == nil {
		s.logger.Warn("File watcher unavailable, continuing without watching for changes")
		return
	}
	s.watchCloser = make(chan struct{})
	s.watchDone = make(chan struct{})
	go s.handleChanges()
}

func (s *provider) stopWatching() error {
	if s.watcher == nil {
		return nil
	}
	if s.watchCloser == nil {
		return s.watcher.Close()
	}
	close(s.watchCloser)
	<-s.watchDone
	return nil
}

func (s *provider) handleChanges() {
	defer close(s.watchDone)
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != FolderSettingsFile {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.handleDebounce(event)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warnf("Failure in settings change watcher: %v", err)

		case <-s.watchCloser:
			// Cancel any pending debounce timers
			s.debounceMu.Lock()
			for _, timer := range s.debounceTimers {
				timer.Stop()
			}
			s.debounceTimers = make(map[entity.FolderKey]*time.Timer)
			s.debounceMu.Unlock()

			if err := s.watcher.Close(); err != nil {
				s.logger.Warnf("Failed to close settings change watcher: %v", err)
			}
			return
		}
	}
}

// handleDebounce coalesces bursts of events for one folder into a single notification.
func (s *provider) handleDebounce(event fsnotify.Event) {
	s.mu.RLock()
	key, ok := s.watched[filepath.Dir(event.Name)]
	s.mu.RUnlock()
	if !ok {
		return
	}

	s.debounceMu.Lock()
	defer s.debounceMu.Unlock()

	if timer, exists := s.debounceTimers[key]; exists {
		timer.Stop()
	}
	s.debounceTimers[key] = time.AfterFunc(s.debounce, func() {
		s.debounceMu.Lock()
		delete(s.debounceTimers, key)
		s.debounceMu.Unlock()

		s.logger.Infow("folder settings changed", zap.String("folder", string(key)))
		s.mu.RLock()
		listeners := append([]ChangeFunc(nil), s.listeners...)
		s.mu.RUnlock()
		for _, fn := range listeners {
			fn(context.Background(), key)
		}
	})
}
