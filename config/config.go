package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultMediaType is used when a datasource does not declare how its
	// payloads are encoded.
	DefaultMediaType = "application/json"
	// DefaultInterval is the pacing between frame emissions. An explicit
	// zero interval means unpaced - frames are emitted as fast as the
	// consumer drains them.
	DefaultInterval = time.Second
)

// DatasourceConfig is the construction-time configuration of a datasource
// plugin. Name, Version and HostConstraint are required and immutable for the
// process lifetime.
type DatasourceConfig struct {
	// Name identifies the plugin; it is stamped on every emitted frame.
	Name string
	// Version is the plugin's own semantic version, reported by GetVersion.
	Version string
	// HostConstraint is the version range the host must satisfy
	// (hashicorp/go-version constraint syntax).
	HostConstraint string
	// MediaType describes the payload encoding, e.g. "application/json".
	MediaType string
	// Interval is the pacing between frame emissions. Leave zero and set
	// Unpaced to emit without delay; leave both unset for DefaultInterval.
	Interval time.Duration
	// Unpaced disambiguates an unset Interval from an intentional zero one.
	Unpaced bool
}

func (c *DatasourceConfig) Validate() []string {
	var validationErrors []string
	if c.Name == "" {
		validationErrors = append(validationErrors, "datasource config must specify a name")
	}
	if c.Version == "" {
		validationErrors = append(validationErrors, "datasource config must specify a version")
	}
	if c.HostConstraint == "" {
		validationErrors = append(validationErrors, "datasource config must specify a host version constraint")
	}
	if c.Interval < 0 {
		validationErrors = append(validationErrors, "datasource config interval must not be negative")
	}
	if c.Interval != 0 && c.Unpaced {
		validationErrors = append(validationErrors, "datasource config cannot set both an interval and unpaced")
	}
	return validationErrors
}

// ApplyDefaults fills in MediaType and Interval when unset.
func (c *DatasourceConfig) ApplyDefaults() {
	if c.MediaType == "" {
		c.MediaType = DefaultMediaType
	}
	if c.Interval == 0 && !c.Unpaced {
		c.Interval = DefaultInterval
	}
}

// ValidationError flattens the validation failures into a single error.
func ValidationError(validationErrors []string) error {
	return fmt.Errorf("invalid datasource config: %s", strings.Join(validationErrors, ", "))
}
