package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/internal/fs"
	"github.com/uber/lsmux/src/lsmux/internal/fs/fsmock"
	"github.com/uber/lsmux/src/lsmux/mapper"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newConfigProvider(t *testing.T, values map[string]interface{}) config.Provider {
	provider, err := config.NewYAML(config.Static(values))
	require.NoError(t, err)
	return provider
}

func folderFor(dir string) entity.Folder {
	return entity.Folder{Key: mapper.FolderKeyFromURI(dir), Name: filepath.Base(dir)}
}

func TestNew(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	s, err := New(Params{
		Config:    newConfigProvider(t, map[string]interface{}{}),
		FS:        fs.New(),
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
	})
	require.NoError(t, err)
	assert.NotNil(t, s)
	lc.RequireStart()
	lc.RequireStop()
}

func TestLanguageServer(t *testing.T) {
	t.Run("configured values", func(t *testing.T) {
		s := newProvider(newConfigProvider(t, map[string]interface{}{
			"languageServer": map[string]interface{}{
				"pathToBinary": "/usr/bin/server",
				"args":         []string{"--stdio"},
				"external":     true,
				"installDir":   "/opt/lsmux",
				"binaryName":   "server",
			},
		}), fs.New(), zap.NewNop().Sugar())

		cfg, err := s.LanguageServer()
		require.NoError(t, err)
		assert.Equal(t, entity.LanguageServerConfig{
			PathToBinary: "/usr/bin/server",
			Args:         []string{"--stdio"},
			External:     true,
			InstallDir:   "/opt/lsmux",
			BinaryName:   "server",
		}, cfg)
	})

	t.Run("default install dir", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockLsmuxFS(ctrl)
		fsMock.EXPECT().UserCacheDir().Return("/home/user/.cache", nil)

		s := newProvider(newConfigProvider(t, map[string]interface{}{}), fsMock, zap.NewNop().Sugar())
		cfg, err := s.LanguageServer()
		require.NoError(t, err)
		assert.Equal(t, "/home/user/.cache/lsmux/bin", cfg.InstallDir)
	})

	t.Run("cache dir failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockLsmuxFS(ctrl)
		fsMock.EXPECT().UserCacheDir().Return("", errors.New("no home"))

		s := newProvider(newConfigProvider(t, map[string]interface{}{}), fsMock, zap.NewNop().Sugar())
		_, err := s.LanguageServer()
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		s := newProvider(newConfigProvider(t, map[string]interface{}{
			"languageServer": []string{"bad"},
		}), fs.New(), zap.NewNop().Sugar())
		_, err := s.LanguageServer()
		assert.Error(t, err)
	})
}

func TestEnabled(t *testing.T) {
	s := newProvider(newConfigProvider(t, map[string]interface{}{
		"languageServer": map[string]interface{}{"external": false, "installDir": "/opt"},
	}), fs.New(), zap.NewNop().Sugar())

	enabled, err := s.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	s.SetEnabled(true)
	enabled, err = s.Enabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	s.SetEnabled(false)
	enabled, err = s.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestFolderSettings(t *testing.T) {
	dir := t.TempDir()
	folder := folderFor(dir)

	t.Run("from config by key", func(t *testing.T) {
		s := newProvider(newConfigProvider(t, map[string]interface{}{
			"folders": map[string]interface{}{
				string(folder.Key): map[string]interface{}{"rootModules": []string{"a", "b"}},
			},
		}), fs.New(), zap.NewNop().Sugar())

		result, err := s.FolderSettings(folder)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, result.RootModules)
	})

	t.Run("from config by name", func(t *testing.T) {
		s := newProvider(newConfigProvider(t, map[string]interface{}{
			"folders": map[string]interface{}{
				folder.Name: map[string]interface{}{"excludeRootModules": []string{"x"}},
			},
		}), fs.New(), zap.NewNop().Sugar())

		result, err := s.FolderSettings(folder)
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, result.ExcludeRootModules)
	})

	t.Run("absent", func(t *testing.T) {
		s := newProvider(newConfigProvider(t, map[string]interface{}{}), fs.New(), zap.NewNop().Sugar())
		result, err := s.FolderSettings(folder)
		require.NoError(t, err)
		assert.Equal(t, entity.FolderSettings{}, result)
	})

	t.Run("non-file folder", func(t *testing.T) {
		s := newProvider(newConfigProvider(t, map[string]interface{}{}), fs.New(), zap.NewNop().Sugar())
		result, err := s.FolderSettings(entity.Folder{Key: "untitled:x", Name: "x"})
		require.NoError(t, err)
		assert.Equal(t, entity.FolderSettings{}, result)
	})

	t.Run("settings file overrides config", func(t *testing.T) {
		fileDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(fileDir, FolderSettingsFile), []byte("excludeRootModules:\n  - vendor\n"), 0644))
		f := folderFor(fileDir)

		s := newProvider(newConfigProvider(t, map[string]interface{}{
			"folders": map[string]interface{}{
				string(f.Key): map[string]interface{}{"rootModules": []string{"a"}},
			},
		}), fs.New(), zap.NewNop().Sugar())

		result, err := s.FolderSettings(f)
		require.NoError(t, err)
		assert.Empty(t, result.RootModules)
		assert.Equal(t, []string{"vendor"}, result.ExcludeRootModules)
	})

	t.Run("empty settings file", func(t *testing.T) {
		fileDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(fileDir, FolderSettingsFile), nil, 0644))

		s := newProvider(newConfigProvider(t, map[string]interface{}{}), fs.New(), zap.NewNop().Sugar())
		result, err := s.FolderSettings(folderFor(fileDir))
		require.NoError(t, err)
		assert.Equal(t, entity.FolderSettings{}, result)
	})

	t.Run("conflicting settings file is returned for validation", func(t *testing.T) {
		fileDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(fileDir, FolderSettingsFile), []byte("rootModules: [a]\nexcludeRootModules: [b]\n"), 0644))
		f := folderFor(fileDir)

		s := newProvider(newConfigProvider(t, map[string]interface{}{}), fs.New(), zap.NewNop().Sugar())
		result, err := s.FolderSettings(f)
		require.NoError(t, err)
		assert.Error(t, result.Validate(f.Key))
	})

	t.Run("unknown field in settings file", func(t *testing.T) {
		fileDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(fileDir, FolderSettingsFile), []byte("rootModulez: [a]\n"), 0644))

		s := newProvider(newConfigProvider(t, map[string]interface{}{}), fs.New(), zap.NewNop().Sugar())
		_, err := s.FolderSettings(folderFor(fileDir))
		assert.Error(t, err)
	})

	t.Run("read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockLsmuxFS(ctrl)
		fsMock.EXPECT().FileExists(gomock.Any()).Return(true, nil)
		fsMock.EXPECT().ReadFile(gomock.Any()).Return(nil, errors.New("sample"))

		s := newProvider(newConfigProvider(t, map[string]interface{}{}), fsMock, zap.NewNop().Sugar())
		_, err := s.FolderSettings(folder)
		assert.Error(t, err)
	})
}

func TestWatchFolder(t *testing.T) {
	dir := t.TempDir()
	folder := folderFor(dir)

	lc := fxtest.NewLifecycle(t)
	p, err := New(Params{
		Config:    newConfigProvider(t, map[string]interface{}{}),
		FS:        fs.New(),
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
	})
	require.NoError(t, err)
	s := p.(*provider)
	s.debounce = 10 * time.Millisecond
	lc.RequireStart()
	defer lc.RequireStop()

	changed := make(chan entity.FolderKey, 10)
	s.OnFolderSettingsChange(func(ctx context.Context, key entity.FolderKey) {
		changed <- key
	})

	require.NoError(t, s.WatchFolder(folder.Key))
	// second watch is a no-op
	require.NoError(t, s.WatchFolder(folder.Key))
	// non-file keys are ignored
	require.NoError(t, s.WatchFolder("untitled:x"))

	// unrelated files do not notify
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FolderSettingsFile), []byte("rootModules: [a]\n"), 0644))

	select {
	case key := <-changed:
		assert.Equal(t, folder.Key, key)
	case <-time.After(5 * time.Second):
		t.Fatal("expected settings change notification")
	}

	require.NoError(t, s.UnwatchFolder(folder.Key))
	require.NoError(t, s.UnwatchFolder(folder.Key))
}
