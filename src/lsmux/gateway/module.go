package gateway

import (
	ideclient "github.com/uber/lsmux/src/lsmux/gateway/ide-client"
	"github.com/uber/lsmux/src/lsmux/gateway/langserver"
	"go.uber.org/fx"
)

// Module provides the outbound gateways: language server processes and editor notifications.
var Module = fx.Options(
	langserver.Module,
	fx.Provide(ideclient.New),
)
