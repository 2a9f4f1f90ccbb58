package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streamweld/plugin-sdk/context_values"
)

func TestRecordingSession_Lifecycle(t *testing.T) {
	s := NewRecordingSession()
	assert.Equal(t, SessionIdle, s.State())
	assert.NotEmpty(t, s.Id())

	assert.True(t, s.Start())
	assert.Equal(t, SessionRecording, s.State())

	// starting a running session is refused
	assert.False(t, s.Start())

	s.Stop()
	assert.Equal(t, SessionStopped, s.State())

	// stopped is terminal
	assert.False(t, s.Start())
	assert.Equal(t, SessionStopped, s.State())
}

func TestRecordingSession_StopSignalsContext(t *testing.T) {
	s := NewRecordingSession()
	s.Start()

	select {
	case <-s.Context().Done():
		t.Fatal("context cancelled before Stop")
	default:
	}

	s.Stop()

	select {
	case <-s.Context().Done():
	default:
		t.Fatal("context not cancelled after Stop")
	}
}

func TestRecordingSession_StopIsIdempotent(t *testing.T) {
	s := NewRecordingSession()

	// stop from idle is fine
	s.Stop()
	s.Stop()
	assert.Equal(t, SessionStopped, s.State())
}

func TestRecordingSession_ContextCarriesId(t *testing.T) {
	s := NewRecordingSession()
	id, err := context_values.SessionIdFromContext(s.Context())
	assert.NoError(t, err)
	assert.Equal(t, s.Id(), id)
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "idle", SessionIdle.String())
	assert.Equal(t, "recording", SessionRecording.String())
	assert.Equal(t, "stopped", SessionStopped.String())
}
