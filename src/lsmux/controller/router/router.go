// Package router resolves which session owns a document.
package router

//go:generate mockgen -destination=routermock/router_mock.go -package=routermock . Controller

import (
	"context"
	"sort"

	"github.com/uber/lsmux/src/lsmux/controller/lifecycle"
	"github.com/uber/lsmux/src/lsmux/entity"
	"github.com/uber/lsmux/src/lsmux/internal/errors"
	"github.com/uber/lsmux/src/lsmux/mapper"
	"github.com/uber/lsmux/src/lsmux/repository/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Controller routes document scoped requests to sessions.
type Controller interface {
	// Resolve returns the session owning documentURI, or nil when no tracked folder with a session contains it.
	Resolve(ctx context.Context, documentURI string) (*entity.Session, error)
	// ExecuteCommand runs command, namespaced with the owning session's prefix, on the session owning documentURI.
	ExecuteCommand(ctx context.Context, documentURI string, command string, args []string) (*entity.ExecuteCommandResult, error)
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	Sessions  session.Repository
	Lifecycle lifecycle.Controller
	Logger    *zap.SugaredLogger
}

type controller struct {
	sessions  session.Repository
	lifecycle lifecycle.Controller
	logger    *zap.SugaredLogger
}

// New creates a new Controller.
func New(p Params) Controller {
	return &controller{
		sessions:  p.Sessions,
		lifecycle: p.Lifecycle,
		logger:    p.Logger.Named("router"),
	}
}

// Resolve checks the tracked folders that contain the document, most specific first, and
// returns the session of the first one that has a session. A nested folder without a session
// therefore falls back to its nearest ancestor.
func (c *controller) Resolve(ctx context.Context, documentURI string) (*entity.Session, error) {
	documentKey := mapper.NormalizeURI(documentURI)

	for _, folder := range sortBySpecificity(c.lifecycle.Folders()) {
		if !mapper.FolderContains(folder.Key, documentKey) {
			continue
		}
		s, err := c.sessions.Get(ctx, folder.Key)
		if errors.IsFolderNotFound(err) {
			continue
		} else if err != nil {
			return nil, err
		}
		return s, nil
	}

	c.logger.Debugw("no session owns document", "uri", documentURI)
	return nil, nil
}

func (c *controller) ExecuteCommand(ctx context.Context, documentURI string, command string, args []string) (*entity.ExecuteCommandResult, error) {
	s, err := c.Resolve(ctx, documentURI)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &errors.NoSessionError{URI: documentURI}
	}

	result := &entity.ExecuteCommandResult{CommandPrefix: s.CommandPrefix}
	if err := s.Conn.SendRequest(ctx, mapper.PrefixedCommand(s.CommandPrefix, command), args, &result.Result); err != nil {
		return nil, err
	}
	return result, nil
}

// sortBySpecificity orders folders with longer keys first. Ties are broken by key so the order is stable.
func sortBySpecificity(folders []entity.Folder) []entity.Folder {
	sort.Slice(folders, func(i, j int) bool {
		if len(folders[i].Key) != len(folders[j].Key) {
			return len(folders[i].Key) > len(folders[j].Key)
		}
		return folders[i].Key < folders[j].Key
	})
	return folders
}
