package core

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
)

func TestNewSugaredLogger(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		expectError bool
	}{
		{
			name: "json production",
			yaml: "logging:\n  level: info\n  encoding: json\n",
		},
		{
			name: "console development",
			yaml: "logging:\n  level: debug\n  development: true\n  encoding: console\n",
		},
		{
			name:        "invalid level",
			yaml:        "logging:\n  level: loud\n",
			expectError: true,
		},
		{
			name:        "invalid shape",
			yaml:        "logging: [1, 2]\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := config.NewYAML(config.Source(strings.NewReader(tt.yaml)))
			require.NoError(t, err)

			logger, err := NewSugaredLogger(provider)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, NewLogger(logger))
		})
	}
}

func TestNewSugaredLoggerOutputPaths(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lsmux.log")
	provider, err := config.NewYAML(config.Static(map[string]interface{}{
		"logging": map[string]interface{}{
			"level":       "info",
			"outputPaths": []string{out},
		},
	}))
	require.NoError(t, err)

	logger, err := NewSugaredLogger(provider)
	require.NoError(t, err)
	logger.Infow("sample")
	assert.FileExists(t, out)
}
