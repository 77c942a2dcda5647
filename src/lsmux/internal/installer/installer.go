// Package installer places the language server executable into the install directory.
package installer

//go:generate mockgen -destination=installermock/installer_mock.go -package=installermock . Installer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/internal/errors"
	"github.com/uber/lsmux/src/lsmux/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _executableMode = 0755

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Installer fetches or places the language server binary.
type Installer interface {
	// Install returns the path to the executable inside targetDir, placing it there if needed.
	Install(ctx context.Context, targetDir string) (string, error)
	// CleanupZips removes leftover archives from targetDir.
	CleanupZips(targetDir string) error
}

// Params are inbound parameters to initialize the Installer.
type Params struct {
	fx.In

	Config config.Provider
	FS     fs.LsmuxFS
	Logger *zap.SugaredLogger
}

type installer struct {
	binaryName string
	fs         fs.LsmuxFS
	logger     *zap.SugaredLogger
}

// New creates an Installer for the configured binary name.
func New(p Params) (Installer, error) {
	cfg := entity.LanguageServerConfig{}
	if err := p.Config.Get(entity.LanguageServerConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.LanguageServerConfigKey, err)
	}
	if cfg.BinaryName == "" {
		return nil, fmt.Errorf("missing field %q in config", entity.LanguageServerConfigKey+".binaryName")
	}

	return &installer{
		binaryName: cfg.BinaryName,
		fs:         p.FS,
		logger:     p.Logger.Named("installer"),
	}, nil
}

func (i *installer) Install(ctx context.Context, targetDir string) (string, error) {
	target := filepath.Join(targetDir, i.binaryName)
	exists, err := i.fs.FileExists(target)
	if err != nil {
		return "", &errors.InstallationError{Dir: targetDir, Err: err}
	}
	if exists {
		return target, nil
	}

	source, err := i.fs.LookPath(i.binaryName)
	if err != nil {
		return "", &errors.InstallationError{Dir: targetDir, Err: err}
	}

	if err := i.fs.MkdirAll(targetDir); err != nil {
		return "", &errors.InstallationError{Dir: targetDir, Err: err}
	}
	if err := i.fs.CopyFile(source, target, _executableMode); err != nil {
		return "", &errors.InstallationError{Dir: targetDir, Err: err}
	}

	i.logger.Infow("installed language server", zap.String("source", source), zap.String("target", target))
	return target, nil
}

func (i *installer) CleanupZips(targetDir string) error {
	matches, err := i.fs.Glob(filepath.Join(targetDir, "*.zip"))
	if err != nil {
		return err
	}

	var errs error
	for _, m := range matches {
		errs = multierr.Append(errs, i.fs.Remove(m))
	}
	return errs
}
