package serverinfofile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/lsmux/src/lsmux/internal/fs"
	"github.com/uber/lsmux/src/lsmux/internal/fs/fsmock"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newConfigProvider(t *testing.T, values map[string]interface{}) config.Provider {
	provider, err := config.NewYAML(config.Static(values))
	require.NoError(t, err)
	return provider
}

func TestNew(t *testing.T) {
	lifecycleMock := fxtest.NewLifecycle(t)

	tests := []struct {
		name    string
		values  map[string]interface{}
		wantErr bool
	}{
		{
			name:   "all required params are present",
			values: map[string]interface{}{_configKeyInfoFile: "/tmp/lsmux.json"},
		},
		{
			name:    "missing key",
			values:  map[string]interface{}{"other": "value"},
			wantErr: true,
		},
		{
			name:    "wrong type",
			values:  map[string]interface{}{_configKeyInfoFile: []string{"a", "b"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Params{
				Config:    newConfigProvider(t, tt.values),
				FS:        fs.New(),
				Lifecycle: lifecycleMock,
				Logger:    zap.NewNop().Sugar(),
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateAndRemoveField(t *testing.T) {
	infofile := filepath.Join(t.TempDir(), "info.json")
	m := module{
		infofile:     infofile,
		fs:           fs.New(),
		logger:       zap.NewNop().Sugar(),
		fileContents: make(map[string]string),
	}

	readContents := func() map[string]string {
		data, err := os.ReadFile(infofile)
		require.NoError(t, err)
		result := map[string]string{}
		require.NoError(t, json.Unmarshal(data, &result))
		return result
	}

	require.NoError(t, m.UpdateField("lsp-address", "127.0.0.1:1234"))
	require.NoError(t, m.UpdateField("output:0a1b2c3d", "/tmp/out.log"))
	assert.Equal(t, map[string]string{
		"lsp-address":     "127.0.0.1:1234",
		"output:0a1b2c3d": "/tmp/out.log",
	}, readContents())

	require.NoError(t, m.RemoveField("output:0a1b2c3d"))
	assert.Equal(t, map[string]string{"lsp-address": "127.0.0.1:1234"}, readContents())

	// absent key
	require.NoError(t, m.RemoveField("output:missing"))
}

func TestUpdateFieldWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockLsmuxFS(ctrl)
	fsMock.EXPECT().WriteFile("/tmp/info.json", gomock.Any()).Return(errors.New("sample"))

	m := module{
		infofile:     "/tmp/info.json",
		fs:           fsMock,
		logger:       zap.NewNop().Sugar(),
		fileContents: make(map[string]string),
	}
	assert.Error(t, m.UpdateField("key", "value"))
}

func TestOnStop(t *testing.T) {
	t.Run("file removed", func(t *testing.T) {
		infofile := filepath.Join(t.TempDir(), "info.json")
		require.NoError(t, os.WriteFile(infofile, []byte("{}"), 0644))

		m := module{
			infofile: infofile,
			fs:       fs.New(),
			logger:   zap.NewNop().Sugar(),
		}
		assert.NoError(t, m.OnStop(context.Background()))
		_, err := os.Stat(infofile)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("file never written", func(t *testing.T) {
		m := module{
			infofile: filepath.Join(t.TempDir(), "info.json"),
			fs:       fs.New(),
			logger:   zap.NewNop().Sugar(),
		}
		assert.NoError(t, m.OnStop(context.Background()))
	})

	t.Run("no file configured", func(t *testing.T) {
		m := module{logger: zap.NewNop().Sugar()}
		assert.NoError(t, m.OnStop(context.Background()))
	})
}
