package mapper

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/model"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

const (
	_uriArgPrefix     = "uri="
	_fileSchemePrefix = uri.FileScheme + "://"
)

// SessionToModel maps a Session entity to its model equivalent.
func SessionToModel(s *entity.Session) *model.Session {
	return &model.Session{
		FolderKey:     string(s.Folder.Key),
		FolderName:    s.Folder.Name,
		CommandPrefix: string(s.CommandPrefix),
		Conn:          s.Conn,
		StartedAt:     s.StartedAt,
	}
}

// ModelToSession maps a model Session to its entity equivalent.
func ModelToSession(m *model.Session) (*entity.Session, error) {
	if m == nil {
		return nil, fmt.Errorf("nil session model")
	}
	return &entity.Session{
		Folder: entity.Folder{
			Key:  entity.FolderKey(m.FolderKey),
			Name: m.FolderName,
		},
		CommandPrefix: entity.CommandPrefix(m.CommandPrefix),
		Conn:          m.Conn,
		StartedAt:     m.StartedAt,
	}, nil
}

// SessionToInfo maps a Session entity to the summary returned to the editor.
func SessionToInfo(s *entity.Session) entity.SessionInfo {
	return entity.SessionInfo{
		Folder:        s.Folder.Key,
		CommandPrefix: s.CommandPrefix,
		StartedAt:     s.StartedAt,
	}
}

// NormalizeURI returns the canonical string form of a URI or absolute path, without a trailing slash.
// Only file URIs and absolute paths are rewritten. URIs of any other scheme, and relative strings, are opaque.
func NormalizeURI(raw string) string {
	if raw == "" {
		return ""
	}

	var normalized string
	switch {
	case strings.HasPrefix(raw, _fileSchemePrefix):
		normalized = string(uri.New(raw))
	case filepath.IsAbs(raw):
		normalized = string(uri.File(raw))
	default:
		normalized = raw
	}

	for strings.HasSuffix(normalized, "/") && !strings.HasSuffix(normalized, "//") {
		normalized = strings.TrimSuffix(normalized, "/")
	}
	return normalized
}

// FolderKeyFromURI normalizes a workspace folder URI into a FolderKey.
func FolderKeyFromURI(raw string) entity.FolderKey {
	return entity.FolderKey(NormalizeURI(raw))
}

// WorkspaceFolderToFolder maps a protocol.WorkspaceFolder to a Folder entity.
func WorkspaceFolderToFolder(f protocol.WorkspaceFolder) entity.Folder {
	return entity.Folder{
		Key:  FolderKeyFromURI(f.URI),
		Name: f.Name,
	}
}

// WorkspaceFoldersToFolders maps a list of protocol.WorkspaceFolder to Folder entities, dropping empty URIs.
func WorkspaceFoldersToFolders(folders []protocol.WorkspaceFolder) []entity.Folder {
	result := make([]entity.Folder, 0, len(folders))
	for _, f := range folders {
		if f.URI == "" {
			continue
		}
		result = append(result, WorkspaceFolderToFolder(f))
	}
	return result
}

// FolderToWorkspaceFolder maps a Folder entity to its protocol equivalent.
func FolderToWorkspaceFolder(f entity.Folder) protocol.WorkspaceFolder {
	return protocol.WorkspaceFolder{
		URI:  string(f.Key),
		Name: f.Name,
	}
}

// FoldersToKeys returns the keys of the given folders, preserving order.
func FoldersToKeys(folders []entity.Folder) []entity.FolderKey {
	keys := make([]entity.FolderKey, 0, len(folders))
	for _, f := range folders {
		keys = append(keys, f.Key)
	}
	return keys
}

// PrefixedCommand namespaces a server command with a session's command prefix.
func PrefixedCommand(prefix entity.CommandPrefix, serverCommand string) string {
	return fmt.Sprintf("%s.%s", prefix, serverCommand)
}

// URIArgument encodes a document URI as a command argument.
func URIArgument(documentURI string) string {
	return _uriArgPrefix + documentURI
}

// FolderContains reports whether documentKey is the folder itself or nested below it.
func FolderContains(folder entity.FolderKey, documentKey string) bool {
	f := string(folder)
	if documentKey == f {
		return true
	}
	return strings.HasPrefix(documentKey, strings.TrimRight(f, "/")+"/")
}

// FolderKeyToPath returns the local filesystem path of a file folder key.
// Keys with any other scheme have no local path.
func FolderKeyToPath(key entity.FolderKey) (string, bool) {
	if !strings.HasPrefix(string(key), _fileSchemePrefix) {
		return "", false
	}
	return uri.URI(key).Filename(), true
}
