package plugin

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/streamweld/plugin-sdk/context_values"
)

type SessionState int32

const (
	SessionIdle SessionState = iota
	SessionRecording
	SessionStopped
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionRecording:
		return "recording"
	case SessionStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// RecordingSession coordinates a single frame-producing run. Its context is
// the cancellation signal: cancelled exactly once, by Stop, and polled by the
// frame channel between emissions. A stopped session is terminal - starting
// again means creating a new session.
type RecordingSession struct {
	id     string
	state  atomic.Int32
	ctx    context.Context
	cancel context.CancelFunc
}

func NewRecordingSession() *RecordingSession {
	s := &RecordingSession{
		id: uuid.NewString(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.ctx = context_values.WithSessionId(ctx, s.id)
	s.cancel = cancel
	return s
}

func (s *RecordingSession) Id() string {
	return s.id
}

// Context carries the session id and is cancelled when the session stops.
func (s *RecordingSession) Context() context.Context {
	return s.ctx
}

func (s *RecordingSession) State() SessionState {
	return SessionState(s.state.Load())
}

// Start moves the session from idle to recording. It returns false if the
// session has already been started or stopped.
func (s *RecordingSession) Start() bool {
	return s.state.CompareAndSwap(int32(SessionIdle), int32(SessionRecording))
}

// Stop signals cancellation and marks the session stopped. It does not wait
// for the producer to exit and is safe to call any number of times, from any
// state.
func (s *RecordingSession) Stop() {
	s.cancel()
	s.state.Store(int32(SessionStopped))
}
