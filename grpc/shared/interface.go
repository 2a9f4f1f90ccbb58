package shared

import (
	"context"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"

	"github.com/streamweld/plugin-sdk/grpc/proto"
)

// Handshake is a common handshake that is shared by plugin and host.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "STREAMWELD_PLUGIN",
	MagicCookieValue: "streamweld datasource plugin",
}

// Datasource is the capability a streaming data-source plugin exposes to the
// host: version negotiation plus a start/stop-controlled stream of frames.
// It is implemented on the plugin side by plugin.DatasourceImpl and on the
// host side by DatasourcePluginClientWrapper.
type Datasource interface {
	// GetVersion returns the plugin's own semantic version.
	GetVersion() (string, error)
	// PushVersion hands the host's version to the plugin; the plugin rejects
	// it if it does not satisfy the plugin's host version constraint.
	PushVersion(versionNumber string) error
	// StartRecord begins a recording session. The returned channel is closed
	// when the session is cancelled - a clean end-of-stream, not an error.
	StartRecord() (<-chan *proto.Frame, error)
	// StopRecord signals the active session to stop. It does not wait for the
	// frame stream to drain. Calling it with no active session is a no-op.
	StopRecord() error
	// Stop terminates the active session and shuts the runtime down;
	// subsequent StartRecord calls fail.
	Stop() error
}

// DatasourceGRPCPlugin is the implementation of plugin.GRPCPlugin so we can serve/consume this.
type DatasourceGRPCPlugin struct {
	// GRPCPlugin must still implement the Plugin interface
	plugin.Plugin
	// Concrete implementation, written in Go. This is only used for plugins
	// that are written in Go.
	Impl Datasource
}

func (p *DatasourceGRPCPlugin) GRPCServer(broker *plugin.GRPCBroker, s *grpc.Server) error {
	proto.RegisterDatasourceServer(s, &DatasourcePluginServerWrapper{Impl: p.Impl})
	return nil
}

func (p *DatasourceGRPCPlugin) GRPCClient(ctx context.Context, broker *plugin.GRPCBroker, c *grpc.ClientConn) (interface{}, error) {
	return &DatasourcePluginClientWrapper{client: proto.NewDatasourceClient(c)}, nil
}
