package plugin

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/streamweld/plugin-sdk/context_values"
	"github.com/streamweld/plugin-sdk/grpc/proto"
)

// FrameProducer builds one frame payload per emission. It is called once per
// tick on the producing goroutine and must not retain the returned slice.
type FrameProducer func() ([]byte, error)

// OpenFrameChannel starts a producing goroutine emitting frames until ctx is
// cancelled, at which point the returned channel is closed. Emission is paced
// by interval; the wait is interruptible so cancellation is observed promptly,
// not at the next tick boundary. A zero interval emits without delay.
//
// No new emission begins once cancellation has been observed. A frame already
// handed to the channel may still be in flight.
func OpenFrameChannel(ctx context.Context, producer FrameProducer, source, mediaType string, interval time.Duration) <-chan *proto.Frame {
	return openFrameChannel(ctx, producer, source, mediaType, interval, nil)
}

func openFrameChannel(ctx context.Context, producer FrameProducer, source, mediaType string, interval time.Duration, onClose func()) <-chan *proto.Frame {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	// burst of 1 - the first frame is emitted immediately, the rest paced
	limiter := rate.NewLimiter(limit, 1)

	frameChan := make(chan *proto.Frame)
	go func() {
		// deferred in this order so onClose has run by the time readers
		// observe the close
		defer close(frameChan)
		if onClose != nil {
			defer onClose()
		}

		sessionId, _ := context_values.SessionIdFromContext(ctx)
		for {
			// wait out the inter-frame interval; returns early on cancellation
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			payload, err := producer()
			if err != nil {
				// the stream never errors mid-flight; skip this emission
				slog.Warn("frame producer failed, skipping emission", "session", sessionId, "error", err)
				continue
			}
			select {
			case frameChan <- proto.NewFrame(source, mediaType, payload):
			case <-ctx.Done():
				return
			}
		}
	}()
	return frameChan
}
