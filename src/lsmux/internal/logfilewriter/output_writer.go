package logfilewriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/uber/lsmux/src/lsmux/internal/fs"
	"github.com/uber/lsmux/src/lsmux/internal/serverinfofile"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_fmtOutputKey = "output:%s"
	_logsDirName  = "lsmux"
)

// Params define the dependencies for SetupOutputWriter.
type Params struct {
	FS             fs.LsmuxFS
	ServerInfoFile serverinfofile.ServerInfoFile
}

// SetupOutputWriter creates a writer for human readable output of a single language server, backed by a temporary file.
// The file path is stored in the server info file under "output:<name>" so the editor can tail it.
// Closing the writer flushes it, removes the file and clears the info file entry.
func SetupOutputWriter(p Params, name string) (io.WriteCloser, error) {
	logsDirPath := filepath.Join(os.TempDir(), _logsDirName)
	if err := p.FS.MkdirAll(logsDirPath); err != nil {
		return nil, err
	}

	logFile, err := p.FS.TempFile(logsDirPath, name+"-*.log")
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(_fmtOutputKey, name)
	if err := p.ServerInfoFile.UpdateField(key, logFile.Name()); err != nil {
		logFile.Close()
		p.FS.Remove(logFile.Name())
		return nil, err
	}

	// Write via a logger for formatting, timestamp, and buffering.
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(logFile),
		zap.InfoLevel,
	)

	return &loggerWriter{
		logger:         zap.New(core).Sugar(),
		file:           logFile,
		key:            key,
		fs:             p.FS,
		serverInfoFile: p.ServerInfoFile,
	}, nil
}

type loggerWriter struct {
	logger         *zap.SugaredLogger
	file           *os.File
	key            string
	fs             fs.LsmuxFS
	serverInfoFile serverinfofile.ServerInfoFile
	closeOnce      sync.Once
	closeErr       error
}

// Write implements the io.Writer interface by sending data to the given logger.
func (o *loggerWriter) Write(p []byte) (n int, err error) {
	// Incoming data may contain multiple lines, including blank ones.
	lines := strings.Split(string(p), "\n")
	for _, line := range lines {
		if len(line) > 0 {
			o.logger.Info(line)
		}
	}

	return len(p), nil
}

// Close implements io.Closer. It is safe to call more than once.
func (o *loggerWriter) Close() error {
	o.closeOnce.Do(func() {
		// Sync may fail on some platforms for regular files; not actionable.
		_ = o.logger.Sync()
		o.closeErr = multierr.Combine(
			o.file.Close(),
			o.fs.Remove(o.file.Name()),
			o.serverInfoFile.RemoveField(o.key),
		)
	})
	return o.closeErr
}
