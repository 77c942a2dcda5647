package executor

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStart(t *testing.T) {
	t.Run("logs and starts", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		var started *exec.Cmd
		e := NewExecutor(
			WithLogger(zap.New(core).Sugar()),
			WithStartFunc(func(cmd *exec.Cmd) error {
				started = cmd
				return nil
			}),
		)

		cmd := exec.Command("language-server", "--stdio")
		require.NoError(t, e.Start(cmd, []string{"A=B"}))
		assert.Equal(t, cmd, started)
		assert.Equal(t, []string{"A=B"}, cmd.Env)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "Exec", entry.Message)
		assert.Equal(t, []interface{}{"--stdio"}, entry.ContextMap()["Args"])
	})

	t.Run("keeps inherited env when nil", func(t *testing.T) {
		e := NewExecutor(WithStartFunc(func(cmd *exec.Cmd) error { return nil }))
		cmd := exec.Command("language-server")
		require.NoError(t, e.Start(cmd, nil))
		assert.Nil(t, cmd.Env)
	})

	t.Run("start failure", func(t *testing.T) {
		e := NewExecutor(WithStartFunc(func(cmd *exec.Cmd) error { return errors.New("sample") }))
		assert.Error(t, e.Start(exec.Command("language-server"), nil))
	})

	t.Run("default start func", func(t *testing.T) {
		e := NewExecutor()
		assert.Error(t, e.Start(exec.Command("definitely-not-a-real-binary-name"), nil))
	})
}
