package handler

import (
	"fmt"

	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/internal/serverinfofile"
	"go.uber.org/config"
)

const _fmtInfoFileKey = "%s-%s"

// Output the configured language server location so that editors can tell which binary their sessions will run.
// The install directory is only written when no explicit binary is configured.
func outputLanguageServerInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	var ls entity.LanguageServerConfig
	if err := cfg.Get(entity.LanguageServerConfigKey).Populate(&ls); err != nil {
		return fmt.Errorf("loading %s config: %w", entity.LanguageServerConfigKey, err)
	}

	fields := map[string]string{}
	if ls.PathToBinary != "" {
		fields["pathToBinary"] = ls.PathToBinary
	} else if ls.InstallDir != "" {
		fields["installDir"] = ls.InstallDir
	}

	for name, value := range fields {
		key := fmt.Sprintf(_fmtInfoFileKey, entity.LanguageServerConfigKey, name)
		if err := infofile.UpdateField(key, value); err != nil {
			return fmt.Errorf("outputting %q to info file: %w", key, err)
		}
	}
	return nil
}
