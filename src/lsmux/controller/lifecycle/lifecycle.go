// Package lifecycle keeps language server sessions in step with the editor's folders.
package lifecycle

//go:generate mockgen -destination=lifecyclemock/lifecycle_mock.go -package=lifecyclemock . Controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/lsmux/src/lsmux/entity"
	ideclient "github.com/uber/lsmux/src/lsmux/gateway/ide-client"
	"github.com/uber/lsmux/src/lsmux/gateway/langserver"
	"github.com/uber/lsmux/src/lsmux/internal/binpath"
	"github.com/uber/lsmux/src/lsmux/internal/clock"
	"github.com/uber/lsmux/src/lsmux/internal/errors"
	"github.com/uber/lsmux/src/lsmux/internal/idgen"
	"github.com/uber/lsmux/src/lsmux/internal/settings"
	"github.com/uber/lsmux/src/lsmux/mapper"
	"github.com/uber/lsmux/src/lsmux/repository/session"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_sessionsStarted      = "sessions_started"
	_sessionStartFailures = "session_start_failures"
	_sessionStopFailures  = "session_stop_failures"
	_configurationErrors  = "configuration_errors"
)

// Controller starts and stops sessions as folders come and go.
type Controller interface {
	// StartSessions starts a session for every folder that does not already have one.
	StartSessions(ctx context.Context, folders []entity.Folder) ([]*entity.Session, error)
	// StopSessions stops the sessions of the given folders. Folders without a session are skipped.
	StopSessions(ctx context.Context, keys []entity.FolderKey) error
	// DidChangeWorkspaceFolders stops the removed folders, then starts the added ones.
	DidChangeWorkspaceFolders(ctx context.Context, added []entity.Folder, removed []entity.Folder) error
	// Enable turns language server sessions on and starts every tracked folder.
	Enable(ctx context.Context) error
	// Disable turns language server sessions off and stops every running session.
	Disable(ctx context.Context) error
	// Initialize replaces the tracked folders with the editor's current folders.
	Initialize(ctx context.Context, folders []entity.Folder) error
	// RestartSession stops and starts the session of one tracked folder.
	RestartSession(ctx context.Context, key entity.FolderKey) error
	// Folders returns the tracked folders in the order the editor reported them.
	Folders() []entity.Folder
	// Shutdown stops every running session.
	Shutdown(ctx context.Context) error
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Sessions   session.Repository
	Settings   settings.Provider
	BinPath    binpath.Resolver
	Launcher   langserver.Launcher
	IDGen      idgen.Generator
	IdeGateway ideclient.Gateway
	Clock      clock.Clock
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type controller struct {
	sessions   session.Repository
	settings   settings.Provider
	binPath    binpath.Resolver
	launcher   langserver.Launcher
	idgen      idgen.Generator
	ideGateway ideclient.Gateway
	clock      clock.Clock
	logger     *zap.SugaredLogger
	stats      tally.Scope

	foldersMu sync.Mutex
	folders   []entity.Folder
	closed    bool

	locksMu     sync.Mutex
	folderLocks map[entity.FolderKey]*sync.Mutex

	prefixMu sync.Mutex
	prefixes map[entity.CommandPrefix]entity.FolderKey
}

// New creates a new Controller. Every session is stopped when the application stops.
func New(p Params) Controller {
	c := &controller{
		sessions:    p.Sessions,
		settings:    p.Settings,
		binPath:     p.BinPath,
		launcher:    p.Launcher,
		idgen:       p.IDGen,
		ideGateway:  p.IdeGateway,
		clock:       p.Clock,
		logger:      p.Logger.Named("lifecycle"),
		stats:       p.Stats.SubScope("lifecycle"),
		folderLocks: make(map[entity.FolderKey]*sync.Mutex),
		prefixes:    make(map[entity.CommandPrefix]entity.FolderKey),
	}

	c.settings.OnFolderSettingsChange(c.onFolderSettingsChange)
	p.Lifecycle.Append(fx.Hook{
		OnStop: c.Shutdown,
	})
	return c
}

func (c *controller) StartSessions(ctx context.Context, folders []entity.Folder) ([]*entity.Session, error) {
	if c.isClosed() {
		c.logger.Debugw("shutting down, not starting sessions", "folders", len(folders))
		return nil, nil
	}
	pending := c.pendingFolders(ctx, folders)
	if len(pending) == 0 {
		return nil, nil
	}

	binaryPath, err := c.binPath.Resolve(ctx)
	if err != nil {
		c.surface(ctx, protocol.MessageTypeError, fmt.Sprintf("Unable to install the language server: %v", err))
		return nil, err
	}
	ls, err := c.settings.LanguageServer()
	if err != nil {
		return nil, fmt.Errorf("reading language server settings: %w", err)
	}

	results := make([]*entity.Session, len(pending))
	errs := make([]error, len(pending))
	var wg sync.WaitGroup
	for i, folder := range pending {
		wg.Add(1)
		go func(i int, folder entity.Folder) {
			defer wg.Done()
			results[i], errs[i] = c.startSession(ctx, folder, binaryPath, ls.Args)
		}(i, folder)
	}
	wg.Wait()

	started := make([]*entity.Session, 0, len(results))
	for _, s := range results {
		if s != nil {
			started = append(started, s)
		}
	}
	return started, multierr.Combine(errs...)
}

// pendingFolders drops duplicates and folders that already have a session.
func (c *controller) pendingFolders(ctx context.Context, folders []entity.Folder) []entity.Folder {
	seen := make(map[entity.FolderKey]struct{}, len(folders))
	pending := make([]entity.Folder, 0, len(folders))
	for _, folder := range folders {
		if _, ok := seen[folder.Key]; ok {
			continue
		}
		seen[folder.Key] = struct{}{}
		if _, err := c.sessions.Get(ctx, folder.Key); err == nil {
			c.logger.Infow("session already running, skipping start", "folder", folder.Key)
			continue
		}
		pending = append(pending, folder)
	}
	return pending
}

func (c *controller) startSession(ctx context.Context, folder entity.Folder, binaryPath string, args []string) (*entity.Session, error) {
	unlock := c.lockFolder(folder.Key)
	defer unlock()

	logger := c.logger.With("folder", folder.Key)
	// Shutdown may have stopped this folder while the start was waiting on the lock.
	if c.isClosed() {
		logger.Infow("shutting down, skipping start")
		return nil, nil
	}
	if _, err := c.sessions.Get(ctx, folder.Key); err == nil {
		logger.Infow("session already running, skipping start")
		return nil, nil
	}

	folderSettings, err := c.settings.FolderSettings(folder)
	if err != nil {
		c.stats.Counter(_sessionStartFailures).Inc(1)
		return nil, fmt.Errorf("reading settings for folder %q: %w", folder.Key, err)
	}
	if err := folderSettings.Validate(folder.Key); err != nil {
		c.stats.Counter(_configurationErrors).Inc(1)
		logger.Warnw("invalid folder settings", "error", err)
		c.surface(ctx, protocol.MessageTypeError, err.Error())
		return nil, err
	}

	prefix := c.reservePrefix(folder.Key)
	conn, err := c.launcher.Launch(ctx, entity.LaunchSpec{
		Folder:         folder,
		CommandPrefix:  prefix,
		BinaryPath:     binaryPath,
		Args:           args,
		FolderSettings: folderSettings,
	})
	if err == nil {
		err = conn.Start(ctx)
	}
	if err != nil {
		c.releasePrefix(prefix)
		c.stats.Counter(_sessionStartFailures).Inc(1)
		logger.Errorw("failed to start session", "error", err)
		c.surface(ctx, protocol.MessageTypeError, fmt.Sprintf("Language server failed to start for %s: %v", folder.Name, err))
		return nil, err
	}

	s := &entity.Session{
		Folder:        folder,
		CommandPrefix: prefix,
		Conn:          conn,
		StartedAt:     c.clock.Now(),
	}
	if err := c.sessions.Set(ctx, s); err != nil {
		c.releasePrefix(prefix)
		c.stats.Counter(_sessionStartFailures).Inc(1)
		return nil, multierr.Append(fmt.Errorf("registering session: %w", err), conn.Stop(ctx))
	}

	if err := c.settings.WatchFolder(folder.Key); err != nil {
		logger.Warnw("unable to watch folder settings", "error", err)
	}
	c.stats.Counter(_sessionsStarted).Inc(1)
	logger.Infow("session started", "prefix", prefix)
	return s, nil
}

func (c *controller) StopSessions(ctx context.Context, keys []entity.FolderKey) error {
	errs := make([]error, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key entity.FolderKey) {
			defer wg.Done()
			errs[i] = c.stopSession(ctx, key)
		}(i, key)
	}
	wg.Wait()
	return multierr.Combine(errs...)
}

// stopSession removes the session even when the graceful stop fails.
func (c *controller) stopSession(ctx context.Context, key entity.FolderKey) error {
	unlock := c.lockFolder(key)
	defer unlock()

	logger := c.logger.With("folder", key)
	s, err := c.sessions.Get(ctx, key)
	if errors.IsFolderNotFound(err) {
		logger.Infow("no session running, skipping stop")
		return nil
	} else if err != nil {
		return err
	}

	var stopErr error
	if err := s.Conn.Stop(ctx); err != nil {
		c.stats.Counter(_sessionStopFailures).Inc(1)
		logger.Errorw("failed to stop session", "error", err)
		c.surface(ctx, protocol.MessageTypeWarning, fmt.Sprintf("Language server did not stop cleanly for %s: %v", s.Folder.Name, err))
		stopErr = err
	}
	stopErr = multierr.Append(stopErr, c.sessions.Delete(ctx, key))
	c.releasePrefix(s.CommandPrefix)

	if err := c.settings.UnwatchFolder(key); err != nil {
		logger.Debugw("unable to unwatch folder settings", "error", err)
	}
	logger.Infow("session stopped", "prefix", s.CommandPrefix)
	return stopErr
}

func (c *controller) DidChangeWorkspaceFolders(ctx context.Context, added []entity.Folder, removed []entity.Folder) error {
	c.foldersMu.Lock()
	c.folders = removeFolders(c.folders, mapper.FoldersToKeys(removed))
	c.folders = addFolders(c.folders, added)
	c.foldersMu.Unlock()

	// Removals finish before additions so a re-added folder ends up with a single session.
	err := c.StopSessions(ctx, mapper.FoldersToKeys(removed))
	if len(added) == 0 {
		return err
	}

	enabled, enabledErr := c.settings.Enabled()
	if enabledErr != nil {
		return multierr.Append(err, enabledErr)
	}
	if !enabled {
		return err
	}
	_, startErr := c.StartSessions(ctx, added)
	return multierr.Append(err, startErr)
}

func (c *controller) Enable(ctx context.Context) error {
	c.settings.SetEnabled(true)
	_, err := c.StartSessions(ctx, c.Folders())
	return err
}

func (c *controller) Disable(ctx context.Context) error {
	c.settings.SetEnabled(false)
	return c.stopAll(ctx)
}

func (c *controller) Initialize(ctx context.Context, folders []entity.Folder) error {
	c.foldersMu.Lock()
	c.folders = addFolders(nil, folders)
	current := make(map[entity.FolderKey]struct{}, len(c.folders))
	for _, f := range c.folders {
		current[f.Key] = struct{}{}
	}
	c.foldersMu.Unlock()

	running, err := c.sessions.Keys(ctx)
	if err != nil {
		return err
	}
	var stale []entity.FolderKey
	for _, key := range running {
		if _, ok := current[key]; !ok {
			stale = append(stale, key)
		}
	}
	err = c.StopSessions(ctx, stale)

	enabled, enabledErr := c.settings.Enabled()
	if enabledErr != nil {
		return multierr.Append(err, enabledErr)
	}
	if !enabled {
		c.logger.Infow("language server disabled, not starting sessions", "folders", len(folders))
		return err
	}
	_, startErr := c.StartSessions(ctx, c.Folders())
	return multierr.Append(err, startErr)
}

func (c *controller) RestartSession(ctx context.Context, key entity.FolderKey) error {
	folder, ok := c.trackedFolder(key)
	if !ok {
		return &errors.FolderNotFoundError{Folder: string(key)}
	}

	if err := c.StopSessions(ctx, []entity.FolderKey{key}); err != nil {
		c.logger.Warnw("stop failed during restart", "folder", key, "error", err)
	}

	enabled, err := c.settings.Enabled()
	if err != nil || !enabled {
		return err
	}
	_, err = c.StartSessions(ctx, []entity.Folder{folder})
	return err
}

func (c *controller) Folders() []entity.Folder {
	c.foldersMu.Lock()
	defer c.foldersMu.Unlock()
	return append([]entity.Folder(nil), c.folders...)
}

func (c *controller) Shutdown(ctx context.Context) error {
	c.foldersMu.Lock()
	c.closed = true
	c.foldersMu.Unlock()

	return c.stopAll(ctx)
}

// stopAll stops every running session and every tracked folder.
func (c *controller) stopAll(ctx context.Context) error {
	running, err := c.sessions.Keys(ctx)
	if err != nil {
		return err
	}
	keys := mapper.FoldersToKeys(c.Folders())
	seen := make(map[entity.FolderKey]struct{}, len(keys))
	for _, key := range keys {
		seen[key] = struct{}{}
	}
	for _, key := range running {
		if _, ok := seen[key]; !ok {
			keys = append(keys, key)
		}
	}
	return c.StopSessions(ctx, keys)
}

func (c *controller) onFolderSettingsChange(ctx context.Context, key entity.FolderKey) {
	if c.isClosed() {
		return
	}

	c.logger.Infow("folder settings changed, restarting session", "folder", key)
	if err := c.RestartSession(ctx, key); err != nil {
		c.logger.Warnw("restart after settings change failed", "folder", key, "error", err)
	}
}

func (c *controller) isClosed() bool {
	c.foldersMu.Lock()
	defer c.foldersMu.Unlock()
	return c.closed
}

func (c *controller) trackedFolder(key entity.FolderKey) (entity.Folder, bool) {
	c.foldersMu.Lock()
	defer c.foldersMu.Unlock()
	for _, f := range c.folders {
		if f.Key == key {
			return f, true
		}
	}
	return entity.Folder{}, false
}

// lockFolder serializes starts and stops of a single folder.
// Entries are never removed, since deleting one safely would need reference counting.
func (c *controller) lockFolder(key entity.FolderKey) func() {
	c.locksMu.Lock()
	mu, ok := c.folderLocks[key]
	if !ok {
		mu = &sync.Mutex{}
		c.folderLocks[key] = mu
	}
	c.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// reservePrefix mints a prefix that no live or starting session holds.
func (c *controller) reservePrefix(key entity.FolderKey) entity.CommandPrefix {
	c.prefixMu.Lock()
	defer c.prefixMu.Unlock()
	for {
		prefix := c.idgen.Next()
		if owner, taken := c.prefixes[prefix]; taken {
			c.logger.Debugw("command prefix collision", "prefix", prefix, "owner", owner)
			continue
		}
		c.prefixes[prefix] = key
		return prefix
	}
}

func (c *controller) releasePrefix(prefix entity.CommandPrefix) {
	c.prefixMu.Lock()
	defer c.prefixMu.Unlock()
	delete(c.prefixes, prefix)
}

// surface shows a message to the user. Delivery failures are only logged.
func (c *controller) surface(ctx context.Context, messageType protocol.MessageType, message string) {
	if err := c.ideGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    messageType,
		Message: message,
	}); err != nil {
		c.logger.Warnw("unable to show message", "error", err)
	}
}

func removeFolders(folders []entity.Folder, keys []entity.FolderKey) []entity.Folder {
	if len(keys) == 0 {
		return folders
	}
	drop := make(map[entity.FolderKey]struct{}, len(keys))
	for _, key := range keys {
		drop[key] = struct{}{}
	}
	kept := folders[:0]
	for _, f := range folders {
		if _, ok := drop[f.Key]; !ok {
			kept = append(kept, f)
		}
	}
	return kept
}

func addFolders(folders []entity.Folder, added []entity.Folder) []entity.Folder {
	for _, a := range added {
		exists := false
		for _, f := range folders {
			if f.Key == a.Key {
				exists = true
				break
			}
		}
		if !exists {
			folders = append(folders, a)
		}
	}
	return folders
}
