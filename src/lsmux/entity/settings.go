package entity

import (
	"github.com/uber/lsmux/src/lsmux/internal/errors"
)

// FoldersConfigKey is the key that contains per-folder configuration.
const FoldersConfigKey = "folders"

// LanguageServerConfigKey is the key that contains language server configuration.
const LanguageServerConfigKey = "languageServer"

// LanguageServerConfig contains the process-wide language server settings.
type LanguageServerConfig struct {
	PathToBinary string   `yaml:"pathToBinary"`
	Args         []string `yaml:"args"`
	External     bool     `yaml:"external"`
	InstallDir   string   `yaml:"installDir"`
	BinaryName   string   `yaml:"binaryName"`
}

// FolderSettings are folder-scoped settings. RootModules and ExcludeRootModules are mutually exclusive.
type FolderSettings struct {
	RootModules        []string `yaml:"rootModules"`
	ExcludeRootModules []string `yaml:"excludeRootModules"`
}

// Validate ensures that at most one of the mutually exclusive lists is set.
func (s FolderSettings) Validate(key FolderKey) error {
	if len(s.RootModules) > 0 && len(s.ExcludeRootModules) > 0 {
		return &errors.ConfigurationError{Folder: string(key)}
	}
	return nil
}

// InitializationOptions returns the options passed to the server for a session using prefix.
// Only one of the module lists is ever populated.
func (s FolderSettings) InitializationOptions(prefix CommandPrefix) InitializationOptions {
	opts := InitializationOptions{CommandPrefix: prefix}
	if len(s.RootModules) > 0 {
		opts.RootModulePaths = s.RootModules
	} else if len(s.ExcludeRootModules) > 0 {
		opts.ExcludeModulePaths = s.ExcludeRootModules
	}
	return opts
}
