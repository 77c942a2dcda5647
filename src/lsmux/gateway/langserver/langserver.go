// Package langserver spawns language server processes and speaks LSP to them over stdio.
package langserver

//go:generate mockgen -destination=langservermock/langserver_mock.go -package=langservermock . Launcher

import (
	"context"
	"encoding/json"
	stderr "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/internal/errors"
	"github.com/uber/lsmux/src/lsmux/internal/executor"
	"github.com/uber/lsmux/src/lsmux/internal/fs"
	"github.com/uber/lsmux/src/lsmux/internal/logfilewriter"
	"github.com/uber/lsmux/src/lsmux/internal/serverinfofile"
	"github.com/uber/lsmux/src/lsmux/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _exitTimeout = 5 * time.Second

// Module provides the Launcher to fx.
var Module = fx.Options(
	fx.Provide(New),
)

// Launcher builds connections to language servers.
type Launcher interface {
	// Launch returns an unstarted connection for the folder described by spec.
	Launch(ctx context.Context, spec entity.LaunchSpec) (entity.Connection, error)
}

// Params are inbound parameters to initialize a new Launcher.
type Params struct {
	fx.In

	Executor       executor.Executor
	FS             fs.LsmuxFS
	ServerInfoFile serverinfofile.ServerInfoFile
	Logger         *zap.SugaredLogger
}

type launcher struct {
	executor       executor.Executor
	fs             fs.LsmuxFS
	serverInfoFile serverinfofile.ServerInfoFile
	logger         *zap.SugaredLogger
}

// New creates a new Launcher.
func New(p Params) Launcher {
	return &launcher{
		executor:       p.Executor,
		fs:             p.FS,
		serverInfoFile: p.ServerInfoFile,
		logger:         p.Logger.Named("langserver"),
	}
}

func (l *launcher) Launch(ctx context.Context, spec entity.LaunchSpec) (entity.Connection, error) {
	if spec.BinaryPath == "" {
		return nil, fmt.Errorf("no language server binary for folder %q", spec.Folder.Key)
	}

	c := &connection{
		spec:   spec,
		logger: l.logger.With("folder", string(spec.Folder.Key), "prefix", string(spec.CommandPrefix)),
	}
	c.spawn = func(ctx context.Context) (*process, error) {
		return l.spawnProcess(c.logger, spec)
	}
	return c, nil
}

// process is a running server with its stdio wired as a single stream.
type process struct {
	rwc    io.ReadWriteCloser
	exited <-chan struct{}
	kill   func() error
	// cleanup releases resources tied to the process once it has exited.
	cleanup func() error
}

func (l *launcher) spawnProcess(logger *zap.SugaredLogger, spec entity.LaunchSpec) (*process, error) {
	cmd := exec.Command(spec.BinaryPath, spec.Args...)
	if dir, ok := mapper.FolderKeyToPath(spec.Folder.Key); ok {
		cmd.Dir = dir
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	// Stdout is a pipe we own so that cmd.Wait never closes it while the connection is still reading.
	stdout, stdoutWriter, err := os.Pipe()
	if err != nil {
		return nil, multierr.Append(err, stdin.Close())
	}
	cmd.Stdout = stdoutWriter

	output, err := logfilewriter.SetupOutputWriter(logfilewriter.Params{
		FS:             l.fs,
		ServerInfoFile: l.serverInfoFile,
	}, string(spec.CommandPrefix))
	if err != nil {
		logger.Warnw("unable to create output file, discarding server stderr", "error", err)
	} else {
		cmd.Stderr = output
	}

	startErr := l.executor.Start(cmd, nil)
	// The child holds its own copy of the write end.
	closeErr := stdoutWriter.Close()
	if startErr != nil {
		err = multierr.Combine(startErr, stdin.Close(), stdout.Close())
		if output != nil {
			err = multierr.Append(err, output.Close())
		}
		return nil, err
	}
	if closeErr != nil {
		logger.Debugw("unable to close stdout write end", "error", closeErr)
	}

	exited := make(chan struct{})
	go func() {
		defer close(exited)
		if err := cmd.Wait(); err != nil {
			logger.Infow("language server exited", "error", err)
		}
	}()

	return &process{
		rwc:    &stdio{ReadCloser: stdout, WriteCloser: stdin},
		exited: exited,
		kill:   cmd.Process.Kill,
		cleanup: func() error {
			if output == nil {
				return nil
			}
			return output.Close()
		},
	}, nil
}

type connection struct {
	spec   entity.LaunchSpec
	logger *zap.SugaredLogger
	spawn  func(ctx context.Context) (*process, error)

	mu      sync.Mutex
	proc    *process
	conn    jsonrpc2.Conn
	server  protocol.Server
	started bool
}

func (c *connection) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return nil
	}

	proc, err := c.spawn(ctx)
	if err != nil {
		return c.connectionError("start", err)
	}

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(proc.rwc))
	conn.Go(context.Background(), c.handleServerRequest)
	server := protocol.ServerDispatcher(conn, c.logger.Desugar())

	if err := c.handshake(ctx, server); err != nil {
		err = multierr.Append(err, c.teardown(conn, proc))
		return c.connectionError("start", err)
	}

	c.proc, c.conn, c.server = proc, conn, server
	c.started = true
	c.logger.Infow("language server started", "binary", c.spec.BinaryPath)
	return nil
}

func (c *connection) handshake(ctx context.Context, server protocol.Server) error {
	folder := mapper.FolderToWorkspaceFolder(c.spec.Folder)
	params := &protocol.InitializeParams{
		ProcessID:             int32(os.Getpid()),
		RootURI:               uri.URI(c.spec.Folder.Key),
		WorkspaceFolders:      []protocol.WorkspaceFolder{folder},
		InitializationOptions: c.spec.FolderSettings.InitializationOptions(c.spec.CommandPrefix),
	}
	if _, err := server.Initialize(ctx, params); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	if err := server.Initialized(ctx, &protocol.InitializedParams{}); err != nil {
		return fmt.Errorf("initialized: %w", err)
	}
	return nil
}

func (c *connection) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return nil
	}
	c.started = false

	var err error
	if shutdownErr := c.server.Shutdown(ctx); shutdownErr != nil {
		err = multierr.Append(err, fmt.Errorf("shutdown: %w", shutdownErr))
	}
	if exitErr := c.server.Exit(ctx); exitErr != nil {
		// The server may already be gone after shutdown.
		c.logger.Debugw("exit notification failed", "error", exitErr)
	}
	err = multierr.Append(err, c.teardown(c.conn, c.proc))

	c.conn, c.server, c.proc = nil, nil, nil
	if err != nil {
		return c.connectionError("stop", err)
	}
	c.logger.Infow("language server stopped")
	return nil
}

// teardown closes the stream and waits for the process, killing it if it does not exit in time.
func (c *connection) teardown(conn jsonrpc2.Conn, proc *process) error {
	err := conn.Close()

	timer := time.NewTimer(_exitTimeout)
	defer timer.Stop()
	select {
	case <-proc.exited:
	case <-timer.C:
		c.logger.Warnw("language server did not exit, killing", "timeout", _exitTimeout)
		err = multierr.Append(err, proc.kill())
		<-proc.exited
	}

	<-conn.Done()
	return multierr.Append(err, proc.cleanup())
}

func (c *connection) SendRequest(ctx context.Context, command string, args []string, result interface{}) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return c.connectionError("request", fmt.Errorf("connection is not started"))
	}

	arguments := make([]interface{}, 0, len(args))
	for _, arg := range args {
		arguments = append(arguments, arg)
	}
	params := &protocol.ExecuteCommandParams{
		Command:   command,
		Arguments: arguments,
	}

	_, err := conn.Call(ctx, protocol.MethodWorkspaceExecuteCommand, params, result)
	return err
}

// handleServerRequest serves requests and notifications initiated by the language server.
func (c *connection) handleServerRequest(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case protocol.MethodWindowLogMessage:
		var params protocol.LogMessageParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %w", jsonrpc2.ErrParse, err))
		}
		c.logger.Debugw("server log", "type", params.Type, "message", params.Message)
		return reply(ctx, nil, nil)
	case protocol.MethodWindowShowMessage:
		var params protocol.ShowMessageParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %w", jsonrpc2.ErrParse, err))
		}
		c.logger.Infow("server message", "type", params.Type, "message", params.Message)
		return reply(ctx, nil, nil)
	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (c *connection) connectionError(op string, err error) error {
	return &errors.ConnectionError{Folder: string(c.spec.Folder.Key), Op: op, Err: err}
}

// stdio joins a process's stdout and stdin into a single stream.
type stdio struct {
	io.ReadCloser
	io.WriteCloser
}

// Close closes both ends. Pipes already closed by the exiting process are not an error.
func (s *stdio) Close() error {
	return multierr.Combine(ignoreClosed(s.WriteCloser.Close()), ignoreClosed(s.ReadCloser.Close()))
}

func ignoreClosed(err error) error {
	if stderr.Is(err, os.ErrClosed) || stderr.Is(err, io.ErrClosedPipe) {
		return nil
	}
	return err
}
