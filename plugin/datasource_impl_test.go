package plugin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamweld/plugin-sdk/config"
	"github.com/streamweld/plugin-sdk/grpc/proto"
	"github.com/streamweld/plugin-sdk/version"
)

func testDatasource(t *testing.T, interval time.Duration) *DatasourceImpl {
	t.Helper()
	ds, err := NewDatasource(&config.DatasourceConfig{
		Name:           "test-datasource",
		Version:        "0.3.1",
		HostConstraint: "0.2.0",
		Interval:       interval,
	}, staticProducer("payload"))
	require.NoError(t, err)
	return ds
}

// drain reads frames until the channel closes, failing the test if it does
// not close within the timeout. Returns the number of frames read.
func drain(t *testing.T, frames <-chan *proto.Frame, timeout time.Duration) int {
	t.Helper()
	count := 0
	deadline := time.After(timeout)
	for {
		select {
		case _, ok := <-frames:
			if !ok {
				return count
			}
			count++
		case <-deadline:
			t.Fatal("frame stream did not close")
		}
	}
}

func TestNewDatasource_Validation(t *testing.T) {
	tests := []struct {
		name     string
		config   *config.DatasourceConfig
		producer FrameProducer
	}{
		{
			name:     "nil producer",
			config:   &config.DatasourceConfig{Name: "d", Version: "0.1.0", HostConstraint: "0.2.0"},
			producer: nil,
		},
		{
			name:     "missing name",
			config:   &config.DatasourceConfig{Version: "0.1.0", HostConstraint: "0.2.0"},
			producer: staticProducer("p"),
		},
		{
			name:     "malformed version",
			config:   &config.DatasourceConfig{Name: "d", Version: "not-a-version", HostConstraint: "0.2.0"},
			producer: staticProducer("p"),
		},
		{
			name:     "malformed constraint",
			config:   &config.DatasourceConfig{Name: "d", Version: "0.1.0", HostConstraint: "!!!"},
			producer: staticProducer("p"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDatasource(tt.config, tt.producer)
			assert.Error(t, err)
		})
	}
}

func TestDatasourceImpl_VersionNegotiation(t *testing.T) {
	ds := testDatasource(t, time.Millisecond)

	v, err := ds.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.3.1", v)

	assert.NoError(t, ds.PushVersion("0.2.0"))
	assert.ErrorIs(t, ds.PushVersion("9.9.9"), version.ErrVersionRejected)

	// a rejection does not stop the runtime
	assert.NoError(t, ds.PushVersion("0.2.0"))
}

func TestDatasourceImpl_GetVersionOnZeroValue(t *testing.T) {
	var ds DatasourceImpl
	_, err := ds.GetVersion()
	assert.ErrorIs(t, err, ErrPluginVersionNotSet)
}

func TestDatasourceImpl_StartRecordWhileRecording(t *testing.T) {
	ds := testDatasource(t, time.Millisecond)

	frames, err := ds.StartRecord()
	require.NoError(t, err)

	// a second start must not create a second live producer
	_, err = ds.StartRecord()
	assert.ErrorIs(t, err, ErrAlreadyRecording)

	require.NoError(t, ds.StopRecord())
	drain(t, frames, time.Second)
}

func TestDatasourceImpl_StopRecordEndsStream(t *testing.T) {
	ds := testDatasource(t, 2*time.Millisecond)

	frames, err := ds.StartRecord()
	require.NoError(t, err)

	collected := 0
	for collected < 3 {
		frame, ok := recvFrame(t, frames, time.Second)
		require.True(t, ok)
		assert.Equal(t, "test-datasource", frame.Source)
		collected++
	}

	require.NoError(t, ds.StopRecord())
	collected += drain(t, frames, time.Second)

	assert.GreaterOrEqual(t, collected, 3)
}

func TestDatasourceImpl_StopRecordIsIdempotent(t *testing.T) {
	ds := testDatasource(t, time.Millisecond)

	// stop with no session is a no-op
	assert.NoError(t, ds.StopRecord())

	frames, err := ds.StartRecord()
	require.NoError(t, err)

	assert.NoError(t, ds.StopRecord())
	assert.NoError(t, ds.StopRecord())
	drain(t, frames, time.Second)

	// stop on an already-stopped session is still a no-op
	assert.NoError(t, ds.StopRecord())
}

func TestDatasourceImpl_RestartAfterStopRecord(t *testing.T) {
	ds := testDatasource(t, time.Millisecond)

	frames, err := ds.StartRecord()
	require.NoError(t, err)
	require.NoError(t, ds.StopRecord())
	// once the stream has closed the producer slot is free again
	drain(t, frames, time.Second)

	frames, err = ds.StartRecord()
	require.NoError(t, err)

	_, ok := recvFrame(t, frames, time.Second)
	assert.True(t, ok)

	require.NoError(t, ds.StopRecord())
	drain(t, frames, time.Second)
}

func TestDatasourceImpl_StopLatchesRuntime(t *testing.T) {
	ds := testDatasource(t, time.Millisecond)

	frames, err := ds.StartRecord()
	require.NoError(t, err)

	require.NoError(t, ds.Stop())
	drain(t, frames, time.Second)

	_, err = ds.StartRecord()
	assert.ErrorIs(t, err, ErrRuntimeStopped)

	// stop remains idempotent after shutdown
	assert.NoError(t, ds.Stop())
	assert.NoError(t, ds.StopRecord())
}

func TestDatasourceImpl_StopWithoutSession(t *testing.T) {
	ds := testDatasource(t, time.Millisecond)

	assert.NoError(t, ds.Stop())

	_, err := ds.StartRecord()
	assert.ErrorIs(t, err, ErrRuntimeStopped)
}
