package plugin

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
	"github.com/turbot/go-kit/helpers"
	"google.golang.org/grpc"

	"github.com/streamweld/plugin-sdk/grpc/shared"
	"github.com/streamweld/plugin-sdk/logging"
)

// ServeOpts are the configurations to serve a plugin.
type ServeOpts struct {
	// Datasource is the plugin implementation to expose.
	Datasource shared.Datasource
	// PluginName is the dispense key. If empty it is taken from the
	// datasource's Identifier.
	PluginName string
}

const PluginStartupFailureMessage = "Plugin startup failed: "

// Serve creates and starts the GRPC server which serves the plugin.
// It is called from the main function of the plugin and blocks until the
// host closes the connection.
func Serve(opts *ServeOpts) error {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("%s%s", PluginStartupFailureMessage, helpers.ToError(r).Error())
			// write to stdout so the plugin manager can extract the error message
			fmt.Println(msg)
		}
	}()

	name := opts.PluginName
	if name == "" {
		if identified, ok := opts.Datasource.(interface{ Identifier() string }); ok {
			name = identified.Identifier()
		}
	}
	if name == "" {
		return fmt.Errorf("serve opts must provide a plugin name")
	}

	// initialize logger
	logging.Initialize(name)

	slog.Info("serving datasource plugin", "plugin", name)

	if _, found := os.LookupEnv("STREAMWELD_PPROF"); found {
		setupPprof()
	}

	pluginMap := map[string]plugin.Plugin{
		name: &shared.DatasourceGRPCPlugin{Impl: opts.Datasource},
	}
	plugin.Serve(&plugin.ServeConfig{
		Plugins:         pluginMap,
		GRPCServer:      newGRPCServer,
		HandshakeConfig: shared.Handshake,
		// disable server logging
		Logger: hclog.New(&hclog.LoggerOptions{Level: hclog.Off}),
	})
	return nil
}

func newGRPCServer(options []grpc.ServerOption) *grpc.Server {
	return grpc.NewServer(options...)
}

func setupPprof() {
	go func() {
		listener, err := net.Listen("tcp", "localhost:0")
		if err != nil {
			slog.Error("error starting pprof", "error", err)
			return
		}
		slog.Info("pprof listening", "address", listener.Addr())
		if err := http.Serve(listener, nil); err != nil {
			slog.Error("pprof server failed", "error", err)
		}
	}()
}
