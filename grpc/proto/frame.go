package proto

import "time"

// NewFrame builds a frame stamped with the current wall-clock time.
// The returned frame is owned by the caller until it is handed to the
// transport - it must not be mutated after emission.
func NewFrame(source, mediaType string, payload []byte) *Frame {
	return &Frame{
		Source:    source,
		Type:      mediaType,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}
}
