package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/entity/entitymock"
	"github.com/uber/lsmux/src/lsmux/factory"
	"github.com/uber/lsmux/src/lsmux/gateway/ide-client/ideclientmock"
	"github.com/uber/lsmux/src/lsmux/gateway/langserver/langservermock"
	"github.com/uber/lsmux/src/lsmux/internal/binpath/binpathmock"
	"github.com/uber/lsmux/src/lsmux/internal/clock"
	lsmuxerrors "github.com/uber/lsmux/src/lsmux/internal/errors"
	"github.com/uber/lsmux/src/lsmux/internal/idgen"
	"github.com/uber/lsmux/src/lsmux/internal/idgen/idgenmock"
	"github.com/uber/lsmux/src/lsmux/internal/settings"
	"github.com/uber/lsmux/src/lsmux/internal/settings/settingsmock"
	"github.com/uber/lsmux/src/lsmux/repository/session"
	"go.lsp.dev/protocol"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const _binaryPath = "/home/user/.cache/lsmux/bin/language-server"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testDeps struct {
	ctrl       *gomock.Controller
	settings   *settingsmock.MockProvider
	binPath    *binpathmock.MockResolver
	launcher   *langservermock.MockLauncher
	ideGateway *ideclientmock.MockGateway
	sessions   session.Repository
	stats      tally.TestScope
	lifecycle  *fxtest.Lifecycle
	logs       *observer.ObservedLogs

	mu       sync.Mutex
	onChange settings.ChangeFunc
	launched []entity.LaunchSpec
}

func newTestController(t *testing.T) (*controller, *testDeps) {
	ctrl := gomock.NewController(t)
	core, logs := observer.New(zap.InfoLevel)
	d := &testDeps{
		ctrl:       ctrl,
		settings:   settingsmock.NewMockProvider(ctrl),
		binPath:    binpathmock.NewMockResolver(ctrl),
		launcher:   langservermock.NewMockLauncher(ctrl),
		ideGateway: ideclientmock.NewMockGateway(ctrl),
		sessions:   session.New(tally.NoopScope),
		stats:      tally.NewTestScope("testing", map[string]string{}),
		lifecycle:  fxtest.NewLifecycle(t),
		logs:       logs,
	}
	d.settings.EXPECT().OnFolderSettingsChange(gomock.Any()).Do(func(fn settings.ChangeFunc) {
		d.onChange = fn
	})

	c := New(Params{
		Lifecycle:  d.lifecycle,
		Sessions:   d.sessions,
		Settings:   d.settings,
		BinPath:    d.binPath,
		Launcher:   d.launcher,
		IDGen:      idgen.New(),
		IdeGateway: d.ideGateway,
		Clock:      clock.New(),
		Logger:     zap.New(core).Sugar(),
		Stats:      d.stats,
	})
	return c.(*controller), d
}

// stubSettings makes every folder valid and the language server enabled.
func (d *testDeps) stubSettings() {
	d.settings.EXPECT().LanguageServer().Return(entity.LanguageServerConfig{Args: []string{"serve"}}, nil).AnyTimes()
	d.settings.EXPECT().FolderSettings(gomock.Any()).Return(entity.FolderSettings{}, nil).AnyTimes()
	d.settings.EXPECT().Enabled().Return(true, nil).AnyTimes()
	d.settings.EXPECT().WatchFolder(gomock.Any()).Return(nil).AnyTimes()
	d.settings.EXPECT().UnwatchFolder(gomock.Any()).Return(nil).AnyTimes()
}

// expectLaunches returns healthy connections for every launch.
func (d *testDeps) expectLaunches(times int) {
	d.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, spec entity.LaunchSpec) (entity.Connection, error) {
			d.mu.Lock()
			d.launched = append(d.launched, spec)
			d.mu.Unlock()

			conn := entitymock.NewMockConnection(d.ctrl)
			conn.EXPECT().Start(gomock.Any()).Return(nil)
			conn.EXPECT().Stop(gomock.Any()).Return(nil).AnyTimes()
			return conn, nil
		}).Times(times)
}

func (d *testDeps) count(t *testing.T) int {
	n, err := d.sessions.SessionCount(context.Background())
	require.NoError(t, err)
	return n
}

func (d *testDeps) counter(name string) int64 {
	c, ok := d.stats.Snapshot().Counters()["testing.lifecycle."+name+"+"]
	if !ok {
		return 0
	}
	return c.Value()
}

func TestStartSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("disjoint batches add up", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil).Times(2)
		d.expectLaunches(3)

		a := []entity.Folder{factory.Folder("a"), factory.Folder("b")}
		b := []entity.Folder{factory.Folder("c")}

		started, err := c.StartSessions(ctx, a)
		require.NoError(t, err)
		assert.Len(t, started, 2)
		started, err = c.StartSessions(ctx, b)
		require.NoError(t, err)
		assert.Len(t, started, 1)

		assert.Equal(t, 3, d.count(t))
		assert.Equal(t, int64(3), d.counter(_sessionsStarted))
		for _, spec := range d.launched {
			assert.Equal(t, _binaryPath, spec.BinaryPath)
			assert.Equal(t, []string{"serve"}, spec.Args)
		}
	})

	t.Run("idempotent per folder", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil).Times(1)
		d.expectLaunches(2)

		folders := []entity.Folder{factory.Folder("a"), factory.Folder("b")}
		_, err := c.StartSessions(ctx, folders)
		require.NoError(t, err)
		started, err := c.StartSessions(ctx, folders)
		require.NoError(t, err)

		assert.Empty(t, started)
		assert.Equal(t, 2, d.count(t))
		assert.Equal(t, 2, d.logs.FilterMessage("session already running, skipping start").Len())
	})

	t.Run("duplicate folders in one batch", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)
		d.expectLaunches(1)

		_, err := c.StartSessions(ctx, []entity.Folder{factory.Folder("a"), factory.Folder("a")})
		require.NoError(t, err)
		assert.Equal(t, 1, d.count(t))
	})

	t.Run("empty batch", func(t *testing.T) {
		c, _ := newTestController(t)
		started, err := c.StartSessions(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, started)
	})

	t.Run("live prefixes are distinct", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)
		d.expectLaunches(20)

		var folders []entity.Folder
		for i := 0; i < 20; i++ {
			folders = append(folders, factory.Folder(fmt.Sprintf("folder-%d", i)))
		}
		started, err := c.StartSessions(ctx, folders)
		require.NoError(t, err)
		require.Len(t, started, 20)

		seen := make(map[entity.CommandPrefix]struct{})
		for _, s := range started {
			seen[s.CommandPrefix] = struct{}{}
		}
		assert.Len(t, seen, 20)
	})

	t.Run("prefix collision is re-minted", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil).Times(2)
		d.expectLaunches(2)

		gen := idgenmock.NewMockGenerator(d.ctrl)
		gomock.InOrder(
			gen.EXPECT().Next().Return(entity.CommandPrefix("aaaaaaaa")),
			gen.EXPECT().Next().Return(entity.CommandPrefix("aaaaaaaa")),
			gen.EXPECT().Next().Return(entity.CommandPrefix("bbbbbbbb")),
		)
		c.idgen = gen

		first, err := c.StartSessions(ctx, []entity.Folder{factory.Folder("a")})
		require.NoError(t, err)
		second, err := c.StartSessions(ctx, []entity.Folder{factory.Folder("b")})
		require.NoError(t, err)

		assert.Equal(t, entity.CommandPrefix("aaaaaaaa"), first[0].CommandPrefix)
		assert.Equal(t, entity.CommandPrefix("bbbbbbbb"), second[0].CommandPrefix)
	})
}

func TestStartSessionsFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("configuration conflict fails only that folder", func(t *testing.T) {
		c, d := newTestController(t)
		bad, good := factory.Folder("bad"), factory.Folder("good")
		d.settings.EXPECT().LanguageServer().Return(entity.LanguageServerConfig{}, nil)
		d.settings.EXPECT().FolderSettings(bad).Return(entity.FolderSettings{
			RootModules:        []string{"a"},
			ExcludeRootModules: []string{"b"},
		}, nil)
		d.settings.EXPECT().FolderSettings(good).Return(entity.FolderSettings{}, nil)
		d.settings.EXPECT().WatchFolder(good.Key).Return(nil)
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)
		d.expectLaunches(1)
		d.ideGateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ShowMessageParams) error {
				assert.Equal(t, protocol.MessageTypeError, params.Type)
				assert.Contains(t, params.Message, "only one of rootModules and excludeRootModules")
				return nil
			})

		started, err := c.StartSessions(ctx, []entity.Folder{bad, good})
		assert.True(t, lsmuxerrors.IsConfiguration(err))
		require.Len(t, started, 1)
		assert.Equal(t, good.Key, started[0].Key())

		_, err = d.sessions.Get(ctx, bad.Key)
		assert.True(t, lsmuxerrors.IsFolderNotFound(err))
		assert.Equal(t, 1, d.count(t))
		assert.Equal(t, int64(1), d.counter(_configurationErrors))
	})

	t.Run("start failure leaves folder unregistered", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)
		conn := entitymock.NewMockConnection(d.ctrl)
		conn.EXPECT().Start(gomock.Any()).Return(&lsmuxerrors.ConnectionError{Op: "start", Err: errors.New("exec format error")})
		d.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(conn, nil)
		d.ideGateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).Return(nil)

		_, err := c.StartSessions(ctx, []entity.Folder{factory.Folder("a")})
		assert.Error(t, err)
		assert.Equal(t, 0, d.count(t))
		assert.Empty(t, c.prefixes, "prefix is released")
		assert.Equal(t, int64(1), d.counter(_sessionStartFailures))
	})

	t.Run("launch failure", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)
		d.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(nil, errors.New("no binary"))
		d.ideGateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).Return(errors.New("no editor"))

		_, err := c.StartSessions(ctx, []entity.Folder{factory.Folder("a")})
		assert.Error(t, err)
		assert.Empty(t, c.prefixes)
	})

	t.Run("installation error aborts the batch", func(t *testing.T) {
		c, d := newTestController(t)
		installErr := &lsmuxerrors.InstallationError{Dir: "/tmp/bin", Err: errors.New("not found")}
		d.binPath.EXPECT().Resolve(gomock.Any()).Return("", installErr)
		d.ideGateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).Return(nil)

		_, err := c.StartSessions(ctx, []entity.Folder{factory.Folder("a"), factory.Folder("b")})
		var target *lsmuxerrors.InstallationError
		assert.ErrorAs(t, err, &target)
		assert.Equal(t, 0, d.count(t))
	})

	t.Run("folder settings unreadable", func(t *testing.T) {
		c, d := newTestController(t)
		d.settings.EXPECT().LanguageServer().Return(entity.LanguageServerConfig{}, nil)
		d.settings.EXPECT().FolderSettings(gomock.Any()).Return(entity.FolderSettings{}, errors.New("bad yaml"))
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)

		_, err := c.StartSessions(ctx, []entity.Folder{factory.Folder("a")})
		assert.ErrorContains(t, err, "bad yaml")
	})
}

func TestStopSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("absent folder is a no-op", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)
		d.expectLaunches(1)
		_, err := c.StartSessions(ctx, []entity.Folder{factory.Folder("a")})
		require.NoError(t, err)

		assert.NoError(t, c.StopSessions(ctx, []entity.FolderKey{factory.Folder("missing").Key}))
		assert.Equal(t, 1, d.count(t))
		assert.Equal(t, 1, d.logs.FilterMessage("no session running, skipping stop").Len())
	})

	t.Run("stops concurrently and removes entries", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)
		d.expectLaunches(3)
		folders := []entity.Folder{factory.Folder("a"), factory.Folder("b"), factory.Folder("c")}
		_, err := c.StartSessions(ctx, folders)
		require.NoError(t, err)

		require.NoError(t, c.StopSessions(ctx, []entity.FolderKey{folders[0].Key, folders[2].Key}))
		keys, err := d.sessions.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entity.FolderKey{folders[1].Key}, keys)
		assert.Len(t, c.prefixes, 1)
	})

	t.Run("failed stop still removes the entry", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		folder := factory.Folder("a")
		conn := entitymock.NewMockConnection(d.ctrl)
		conn.EXPECT().Stop(gomock.Any()).Return(errors.New("shutdown timed out"))
		s := factory.Session(folder, conn)
		require.NoError(t, d.sessions.Set(ctx, s))
		d.ideGateway.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).Return(nil)

		err := c.StopSessions(ctx, []entity.FolderKey{folder.Key})
		assert.ErrorContains(t, err, "shutdown timed out")
		assert.Equal(t, 0, d.count(t))
		assert.Equal(t, int64(1), d.counter(_sessionStopFailures))
	})

	t.Run("stop waits for an in-flight start", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)

		folder := factory.Folder("a")
		entered, release := make(chan struct{}), make(chan struct{})
		conn := entitymock.NewMockConnection(d.ctrl)
		conn.EXPECT().Start(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			close(entered)
			<-release
			return nil
		})
		conn.EXPECT().Stop(gomock.Any()).Return(nil)
		d.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(conn, nil)

		startDone := make(chan error, 1)
		go func() {
			_, err := c.StartSessions(ctx, []entity.Folder{folder})
			startDone <- err
		}()
		<-entered

		stopDone := make(chan error, 1)
		go func() {
			stopDone <- c.StopSessions(ctx, []entity.FolderKey{folder.Key})
		}()

		select {
		case <-stopDone:
			t.Fatal("stop finished before the start it raced with")
		case <-time.After(20 * time.Millisecond):
		}

		close(release)
		require.NoError(t, <-startDone)
		require.NoError(t, <-stopDone)
		assert.Equal(t, 0, d.count(t))
	})
}

func TestDidChangeWorkspaceFolders(t *testing.T) {
	ctx := context.Background()

	t.Run("removed before added", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil).AnyTimes()
		folder := factory.Folder("a")

		oldConn := entitymock.NewMockConnection(d.ctrl)
		newConn := entitymock.NewMockConnection(d.ctrl)
		gomock.InOrder(
			d.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(oldConn, nil),
			oldConn.EXPECT().Start(gomock.Any()).Return(nil),
			oldConn.EXPECT().Stop(gomock.Any()).Return(nil),
			d.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(newConn, nil),
			newConn.EXPECT().Start(gomock.Any()).Return(nil),
		)

		require.NoError(t, c.Initialize(ctx, []entity.Folder{folder}))
		require.NoError(t, c.DidChangeWorkspaceFolders(ctx, []entity.Folder{folder}, []entity.Folder{folder}))

		s, err := d.sessions.Get(ctx, folder.Key)
		require.NoError(t, err)
		assert.Equal(t, newConn, s.Conn)
		assert.Equal(t, []entity.Folder{folder}, c.Folders())
	})

	t.Run("tracks folders", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil).AnyTimes()
		d.expectLaunches(3)
		a, b, cc := factory.Folder("a"), factory.Folder("b"), factory.Folder("c")

		require.NoError(t, c.Initialize(ctx, []entity.Folder{a, b}))
		require.NoError(t, c.DidChangeWorkspaceFolders(ctx, []entity.Folder{cc}, []entity.Folder{a}))

		assert.Equal(t, []entity.Folder{b, cc}, c.Folders())
		keys, err := d.sessions.Keys(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []entity.FolderKey{b.Key, cc.Key}, keys)
	})

	t.Run("disabled only tracks", func(t *testing.T) {
		c, d := newTestController(t)
		d.settings.EXPECT().Enabled().Return(false, nil)
		a := factory.Folder("a")

		require.NoError(t, c.DidChangeWorkspaceFolders(ctx, []entity.Folder{a}, nil))
		assert.Equal(t, []entity.Folder{a}, c.Folders())
		assert.Equal(t, 0, d.count(t))
	})
}

func TestEnableDisable(t *testing.T) {
	ctx := context.Background()
	c, d := newTestController(t)
	enabled := false
	d.settings.EXPECT().SetEnabled(gomock.Any()).Do(func(v bool) { enabled = v }).AnyTimes()
	d.settings.EXPECT().Enabled().DoAndReturn(func() (bool, error) { return enabled, nil }).AnyTimes()
	d.settings.EXPECT().LanguageServer().Return(entity.LanguageServerConfig{}, nil).AnyTimes()
	d.settings.EXPECT().FolderSettings(gomock.Any()).Return(entity.FolderSettings{}, nil).AnyTimes()
	d.settings.EXPECT().WatchFolder(gomock.Any()).Return(nil).AnyTimes()
	d.settings.EXPECT().UnwatchFolder(gomock.Any()).Return(nil).AnyTimes()
	d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil).AnyTimes()
	d.expectLaunches(4)

	folders := []entity.Folder{factory.Folder("a"), factory.Folder("b")}
	require.NoError(t, c.Initialize(ctx, folders))
	assert.Equal(t, 0, d.count(t), "disabled by default")

	require.NoError(t, c.Enable(ctx))
	require.NoError(t, c.Enable(ctx))
	assert.Equal(t, 2, d.count(t))

	require.NoError(t, c.Disable(ctx))
	require.NoError(t, c.Disable(ctx))
	assert.Equal(t, 0, d.count(t))

	require.NoError(t, c.Enable(ctx))
	assert.Equal(t, 2, d.count(t))
}

func TestInitializeStopsStaleSessions(t *testing.T) {
	ctx := context.Background()
	c, d := newTestController(t)
	d.stubSettings()
	d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil).AnyTimes()
	d.expectLaunches(3)
	a, b, cc := factory.Folder("a"), factory.Folder("b"), factory.Folder("c")

	require.NoError(t, c.Initialize(ctx, []entity.Folder{a, b}))
	require.NoError(t, c.Initialize(ctx, []entity.Folder{b, cc}))

	keys, err := d.sessions.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.FolderKey{b.Key, cc.Key}, keys)
}

func TestRestartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("settings change restarts the folder", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil).AnyTimes()
		d.expectLaunches(2)
		folder := factory.Folder("a")
		require.NoError(t, c.Initialize(ctx, []entity.Folder{folder}))
		before, err := d.sessions.Get(ctx, folder.Key)
		require.NoError(t, err)

		require.NotNil(t, d.onChange)
		d.onChange(ctx, folder.Key)

		after, err := d.sessions.Get(ctx, folder.Key)
		require.NoError(t, err)
		assert.NotSame(t, before.Conn, after.Conn)
		assert.Equal(t, 1, d.count(t))
	})

	t.Run("untracked folder", func(t *testing.T) {
		c, _ := newTestController(t)
		err := c.RestartSession(ctx, factory.Folder("a").Key)
		assert.True(t, lsmuxerrors.IsFolderNotFound(err))
	})

	t.Run("ignored after shutdown", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		require.NoError(t, c.Shutdown(ctx))
		d.onChange(ctx, factory.Folder("a").Key)
		assert.Equal(t, 0, d.count(t))
	})

	t.Run("restart racing shutdown launches nothing", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil).AnyTimes()
		d.expectLaunches(1)
		folder := factory.Folder("a")
		require.NoError(t, c.Initialize(ctx, []entity.Folder{folder}))

		require.NoError(t, c.Shutdown(ctx))
		require.NoError(t, c.RestartSession(ctx, folder.Key))
		assert.Equal(t, 0, d.count(t))
		assert.Len(t, d.launched, 1)
	})

	t.Run("start after shutdown", func(t *testing.T) {
		c, d := newTestController(t)
		d.stubSettings()
		require.NoError(t, c.Shutdown(ctx))

		started, err := c.StartSessions(ctx, []entity.Folder{factory.Folder("a")})
		require.NoError(t, err)
		assert.Empty(t, started)
		assert.Equal(t, 0, d.count(t))
	})
}

func TestLockFolderReusesMutex(t *testing.T) {
	c, _ := newTestController(t)
	key := factory.Folder("a").Key

	c.lockFolder(key)()
	c.lockFolder(key)()
	assert.Len(t, c.folderLocks, 1)
}

func TestShutdownOnStop(t *testing.T) {
	ctx := context.Background()
	c, d := newTestController(t)
	d.stubSettings()
	d.binPath.EXPECT().Resolve(gomock.Any()).Return(_binaryPath, nil)
	d.expectLaunches(2)

	d.lifecycle.RequireStart()
	require.NoError(t, c.Initialize(ctx, []entity.Folder{factory.Folder("a"), factory.Folder("b")}))
	assert.Equal(t, 2, d.count(t))

	d.lifecycle.RequireStop()
	assert.Equal(t, 0, d.count(t))
}
