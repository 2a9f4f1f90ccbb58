package plugin

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamweld/plugin-sdk/grpc/proto"
)

func staticProducer(payload string) FrameProducer {
	return func() ([]byte, error) {
		return []byte(payload), nil
	}
}

// recvFrame reads one frame or fails the test after the timeout
func recvFrame(t *testing.T, frames <-chan *proto.Frame, timeout time.Duration) (*proto.Frame, bool) {
	t.Helper()
	select {
	case frame, ok := <-frames:
		return frame, ok
	case <-time.After(timeout):
		t.Fatal("timed out waiting for frame")
		return nil, false
	}
}

func TestOpenFrameChannel_EmitsFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	before := time.Now().UnixMilli()
	frames := OpenFrameChannel(ctx, staticProducer("payload"), "test-source", "application/json", 2*time.Millisecond)

	for i := 0; i < 3; i++ {
		frame, ok := recvFrame(t, frames, time.Second)
		require.True(t, ok)
		assert.Equal(t, "test-source", frame.Source)
		assert.Equal(t, "application/json", frame.Type)
		assert.Equal(t, []byte("payload"), frame.Payload)
		assert.GreaterOrEqual(t, frame.Timestamp, before)
	}
}

func TestOpenFrameChannel_CancelClosesStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	frames := OpenFrameChannel(ctx, staticProducer("p"), "src", "application/json", 2*time.Millisecond)

	_, ok := recvFrame(t, frames, time.Second)
	require.True(t, ok)

	cancel()

	// the channel must close; at most one in-flight frame may still arrive first
	deadline := time.After(time.Second)
	received := 0
	for {
		select {
		case _, ok := <-frames:
			if !ok {
				assert.LessOrEqual(t, received, 1)
				return
			}
			received++
		case <-deadline:
			t.Fatal("stream did not close after cancellation")
		}
	}
}

func TestOpenFrameChannel_CancelInterruptsWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// a long interval: cancellation must not wait for the next tick
	frames := OpenFrameChannel(ctx, staticProducer("p"), "src", "application/json", time.Hour)

	_, ok := recvFrame(t, frames, time.Second)
	require.True(t, ok)

	start := time.Now()
	cancel()

	_, ok = recvFrame(t, frames, time.Second)
	assert.False(t, ok, "expected closed channel")
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestOpenFrameChannel_UnpacedEmission(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := OpenFrameChannel(ctx, staticProducer("p"), "src", "application/json", 0)

	start := time.Now()
	for i := 0; i < 20; i++ {
		_, ok := recvFrame(t, frames, time.Second)
		require.True(t, ok)
	}
	// 20 unpaced frames must arrive far faster than any pacing would allow
	assert.Less(t, time.Since(start), time.Second)
}

func TestOpenFrameChannel_ProducerErrorSkipsEmission(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	producer := func() ([]byte, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("sensor not ready")
		}
		return []byte("ok"), nil
	}

	frames := OpenFrameChannel(ctx, producer, "src", "application/json", time.Millisecond)

	frame, ok := recvFrame(t, frames, time.Second)
	require.True(t, ok)
	assert.Equal(t, []byte("ok"), frame.Payload)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}
