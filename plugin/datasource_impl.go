package plugin

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	goversion "github.com/hashicorp/go-version"
	"golang.org/x/sync/semaphore"

	"github.com/streamweld/plugin-sdk/config"
	"github.com/streamweld/plugin-sdk/grpc/proto"
	"github.com/streamweld/plugin-sdk/version"
)

// DatasourceImpl is the runtime behind a datasource plugin: it owns the
// plugin's identity and host version constraint, dispatches the five
// datasource operations, and holds at most one recording session at a time.
// It implements shared.Datasource. Create it via NewDatasource.
type DatasourceImpl struct {
	name       string
	version    *goversion.Version
	negotiator *version.Negotiator
	producer   FrameProducer
	mediaType  string
	interval   time.Duration

	// guards session and stopped
	mu      sync.Mutex
	session *RecordingSession
	stopped bool
	// caps live frame producers at one, including a producer still winding
	// down after its session was stopped
	producerSlot *semaphore.Weighted
}

func NewDatasource(cfg *config.DatasourceConfig, producer FrameProducer) (*DatasourceImpl, error) {
	if producer == nil {
		return nil, errors.New("datasource requires a frame producer")
	}
	cfg.ApplyDefaults()
	if validationErrors := cfg.Validate(); len(validationErrors) > 0 {
		return nil, config.ValidationError(validationErrors)
	}
	v, err := version.Parse(cfg.Version)
	if err != nil {
		return nil, err
	}
	negotiator, err := version.NewNegotiator(cfg.HostConstraint)
	if err != nil {
		return nil, err
	}
	return &DatasourceImpl{
		name:         cfg.Name,
		version:      v,
		negotiator:   negotiator,
		producer:     producer,
		mediaType:    cfg.MediaType,
		interval:     cfg.Interval,
		producerSlot: semaphore.NewWeighted(1),
	}, nil
}

// Identifier returns the plugin name
func (p *DatasourceImpl) Identifier() string {
	return p.name
}

// GetVersion returns the plugin's own version. It always succeeds on a
// datasource built via NewDatasource.
func (p *DatasourceImpl) GetVersion() (string, error) {
	if p.version == nil {
		return "", ErrPluginVersionNotSet
	}
	return p.version.Original(), nil
}

// PushVersion validates the host's version against the plugin's constraint.
// A failure wraps version.ErrVersionRejected; the runtime keeps serving.
func (p *DatasourceImpl) PushVersion(versionNumber string) error {
	return p.negotiator.Check(versionNumber)
}

// StartRecord creates a new recording session and returns its frame stream.
// It fails with ErrAlreadyRecording while a session is recording (or its
// producer is still winding down) and with ErrRuntimeStopped after Stop.
func (p *DatasourceImpl) StartRecord() (<-chan *proto.Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return nil, ErrRuntimeStopped
	}
	if p.session != nil && p.session.State() == SessionRecording {
		return nil, ErrAlreadyRecording
	}
	if !p.producerSlot.TryAcquire(1) {
		// a previous producer has not yet observed cancellation
		return nil, ErrAlreadyRecording
	}

	session := NewRecordingSession()
	session.Start()
	p.session = session

	frameChan := openFrameChannel(session.Context(), p.producer, p.name, p.mediaType, p.interval, func() {
		// the producer has exited - the session is over, however it ended
		session.Stop()
		p.producerSlot.Release(1)
	})

	slog.Info("recording started", "session", session.Id(), "interval", p.interval)
	return frameChan, nil
}

// StopRecord signals the active session to stop and returns without waiting
// for the stream to drain. With no active session it is a no-op.
func (p *DatasourceImpl) StopRecord() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return nil
	}
	p.session.Stop()
	slog.Info("recording stopped", "session", p.session.Id())
	return nil
}

// Stop terminates the active session and latches the runtime shut: all
// subsequent StartRecord calls fail with ErrRuntimeStopped.
func (p *DatasourceImpl) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopped = true
	if p.session != nil {
		p.session.Stop()
	}
	slog.Info("datasource runtime stopped", "plugin", p.name)
	return nil
}
