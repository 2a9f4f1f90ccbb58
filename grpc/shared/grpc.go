package shared

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/streamweld/plugin-sdk/grpc/proto"
)

// DatasourcePluginClientWrapper is an implementation of Datasource that talks over GRPC.
type DatasourcePluginClientWrapper struct{ client proto.DatasourceClient }

func (c *DatasourcePluginClientWrapper) GetVersion() (string, error) {
	resp, err := c.client.GetVersion(context.Background(), &proto.Empty{})
	if err != nil {
		return "", err
	}
	return resp.Version, nil
}

func (c *DatasourcePluginClientWrapper) PushVersion(versionNumber string) error {
	_, err := c.client.PushVersion(context.Background(), &proto.VersionNumber{Version: versionNumber})
	return err
}

// StartRecord opens the frame stream and pumps it into a channel. The first
// receive happens synchronously so that a refusal (already recording, runtime
// stopped) surfaces here as an error rather than on the channel.
func (c *DatasourcePluginClientWrapper) StartRecord() (<-chan *proto.Frame, error) {
	stream, err := c.client.StartRecord(context.Background(), &proto.Empty{})
	if err != nil {
		return nil, err
	}

	frameChan := make(chan *proto.Frame)

	first, err := stream.Recv()
	if errors.Is(err, io.EOF) {
		// stream closed cleanly before any frame was produced
		close(frameChan)
		return frameChan, nil
	}
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(frameChan)
		frameChan <- first
		for {
			frame, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				slog.Error("frame stream receive failed", "error", err)
				return
			}
			frameChan <- frame
		}
	}()
	return frameChan, nil
}

func (c *DatasourcePluginClientWrapper) StopRecord() error {
	_, err := c.client.StopRecord(context.Background(), &proto.Empty{})
	return err
}

func (c *DatasourcePluginClientWrapper) Stop() error {
	_, err := c.client.Stop(context.Background(), &proto.Empty{})
	return err
}

// DatasourcePluginServerWrapper is the gRPC server that DatasourcePluginClientWrapper talks to.
type DatasourcePluginServerWrapper struct {
	proto.UnimplementedDatasourceServer
	// This is the real implementation
	Impl Datasource
}

// StartRecord pumps the implementation's frame channel into the stream.
// Stream context cancellation (host gone, connection dropped) is treated as
// an implicit StopRecord so the producing session never outlives its consumer.
func (s *DatasourcePluginServerWrapper) StartRecord(_ *proto.Empty, stream proto.Datasource_StartRecordServer) error {
	frameChan, err := s.Impl.StartRecord()
	if err != nil {
		return err
	}
	for {
		select {
		case frame, ok := <-frameChan:
			if !ok {
				// channel closed - clean end-of-stream
				return nil
			}
			if err := stream.Send(frame); err != nil {
				_ = s.Impl.StopRecord()
				return err
			}
		case <-stream.Context().Done():
			_ = s.Impl.StopRecord()
			if errors.Is(stream.Context().Err(), context.Canceled) {
				return nil
			}
			return stream.Context().Err()
		}
	}
}

func (s *DatasourcePluginServerWrapper) StopRecord(_ context.Context, _ *proto.Empty) (*proto.Empty, error) {
	err := s.Impl.StopRecord()
	return &proto.Empty{}, err
}

func (s *DatasourcePluginServerWrapper) Stop(_ context.Context, _ *proto.Empty) (*proto.Empty, error) {
	err := s.Impl.Stop()
	return &proto.Empty{}, err
}

func (s *DatasourcePluginServerWrapper) PushVersion(_ context.Context, req *proto.VersionNumber) (*proto.Empty, error) {
	err := s.Impl.PushVersion(req.Version)
	return &proto.Empty{}, err
}

func (s *DatasourcePluginServerWrapper) GetVersion(_ context.Context, _ *proto.Empty) (*proto.VersionNumber, error) {
	v, err := s.Impl.GetVersion()
	return &proto.VersionNumber{Version: v}, err
}
