// Package status turns root module results into updates for the editor's status indicator.
package status

//go:generate mockgen -destination=statusmock/status_mock.go -package=statusmock . Controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/uber/lsmux/src/lsmux/controller/rootmodules"
	"github.com/uber/lsmux/src/lsmux/controller/router"
	"github.com/uber/lsmux/src/lsmux/entity"
	ideclient "github.com/uber/lsmux/src/lsmux/gateway/ide-client"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_colorDefault = "statusBar.foreground"
	_colorWarning = "statusBarItem.warningForeground"
	_colorError   = "statusBarItem.errorForeground"

	_textNeedsInit    = "$(refresh) Run init"
	_tooltipNeedsInit = "Root module requires initialization"
	_textFailed       = "$(error) Root modules"
)

// Controller refreshes the status indicator for a document.
type Controller interface {
	// Refresh queries the root modules of documentURI and publishes the resulting status.
	Refresh(ctx context.Context, documentURI string) (*entity.StatusUpdate, error)
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	Router      router.Controller
	RootModules rootmodules.Controller
	IdeGateway  ideclient.Gateway
	Logger      *zap.SugaredLogger
}

type controller struct {
	router      router.Controller
	rootModules rootmodules.Controller
	ideGateway  ideclient.Gateway
	logger      *zap.SugaredLogger
}

// New creates a new Controller.
func New(p Params) Controller {
	return &controller{
		router:      p.Router,
		rootModules: p.RootModules,
		ideGateway:  p.IdeGateway,
		logger:      p.Logger.Named("status"),
	}
}

// Refresh always publishes an update. Query failures are published and returned.
func (c *controller) Refresh(ctx context.Context, documentURI string) (*entity.StatusUpdate, error) {
	update, err := c.build(ctx, documentURI)
	if update != nil {
		if pubErr := c.ideGateway.PublishStatus(ctx, update); pubErr != nil {
			c.logger.Warnw("unable to publish status", "uri", documentURI, "error", pubErr)
		}
	}
	return update, err
}

func (c *controller) build(ctx context.Context, documentURI string) (*entity.StatusUpdate, error) {
	s, err := c.router.Resolve(ctx, documentURI)
	if err != nil {
		return failed(err), err
	}
	if s == nil {
		return &entity.StatusUpdate{}, nil
	}

	result, err := c.rootModules.Query(ctx, s, documentURI)
	if err != nil {
		return failed(err), err
	}
	if result.NeedsInit {
		return &entity.StatusUpdate{
			Text:    _textNeedsInit,
			Tooltip: _tooltipNeedsInit,
			Color:   _colorWarning,
		}, nil
	}

	uris := make([]string, 0, len(result.RootModules))
	for _, m := range result.RootModules {
		uris = append(uris, m.URI)
	}
	return &entity.StatusUpdate{
		Text:    "$(refresh) " + strings.Join(uris, ", "),
		Tooltip: fmt.Sprintf("Root modules for %s", documentURI),
		Color:   _colorDefault,
	}, nil
}

func failed(err error) *entity.StatusUpdate {
	return &entity.StatusUpdate{
		Text:    _textFailed,
		Tooltip: err.Error(),
		Color:   _colorError,
	}
}
