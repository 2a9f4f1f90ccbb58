package grpc

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/streamweld/plugin-sdk/grpc/shared"
)

// PluginClient is the client object used by hosts of the plugin
type PluginClient struct {
	shared.DatasourcePluginClientWrapper
	Name   string
	Client *plugin.Client
}

func NewPluginClient(client *plugin.Client, pluginName string) (*PluginClient, error) {
	// connect via GRPC
	rpcClient, err := client.Client()
	if err != nil {
		return nil, err
	}

	// request the plugin
	raw, err := rpcClient.Dispense(pluginName)
	if err != nil {
		return nil, err
	}
	// we should have a stub plugin now
	res := &PluginClient{
		DatasourcePluginClientWrapper: *(raw.(*shared.DatasourcePluginClientWrapper)),
		Name:                          pluginName,
		Client:                        client,
	}
	return res, nil
}

// NewPluginClientFromPath launches the plugin binary at pluginPath and
// dispenses a datasource client for it.
func NewPluginClientFromPath(pluginPath, pluginName string) (*PluginClient, error) {
	// create the plugin map
	pluginMap := map[string]plugin.Plugin{
		pluginName: &shared.DatasourceGRPCPlugin{},
	}
	// discard client logging - the plugin itself logs to stderr under the
	// host's control
	logger := hclog.New(&hclog.LoggerOptions{Name: "plugin", Output: io.Discard})

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  shared.Handshake,
		Plugins:          pluginMap,
		Cmd:              exec.Command(pluginPath),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Logger:           logger,
	})
	res, err := NewPluginClient(client, pluginName)
	if err != nil {
		client.Kill()
		return nil, err
	}
	return res, nil
}

// Negotiate reads the plugin's version and pushes the host version for the
// plugin to validate against its constraint. It returns the plugin version;
// a rejection surfaces as an error from the plugin.
func (c *PluginClient) Negotiate(hostVersion string) (string, error) {
	pluginVersion, err := c.GetVersion()
	if err != nil {
		return "", fmt.Errorf("failed to read plugin version: %w", err)
	}
	if err := c.PushVersion(hostVersion); err != nil {
		return pluginVersion, fmt.Errorf("plugin %s rejected host version %s: %w", c.Name, hostVersion, err)
	}
	return pluginVersion, nil
}

// Exited returned whether the underlying client has exited, i.e. the plugin has terminated
func (c *PluginClient) Exited() bool {
	return c.Client.Exited()
}

// Kill ends the plugin process
func (c *PluginClient) Kill() {
	c.Client.Kill()
}
