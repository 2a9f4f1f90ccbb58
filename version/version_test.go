package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiator_Check(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		version    string
		wantErr    bool
		rejected   bool
	}{
		{
			name:       "bare constraint accepts the exact version",
			constraint: "0.2.0",
			version:    "0.2.0",
		},
		{
			name:       "bare constraint rejects a different version",
			constraint: "0.2.0",
			version:    "9.9.9",
			wantErr:    true,
			rejected:   true,
		},
		{
			name:       "bare constraint rejects a newer patch",
			constraint: "0.2.0",
			version:    "0.2.1",
			wantErr:    true,
			rejected:   true,
		},
		{
			name:       "minimum bound accepts a later version",
			constraint: ">= 0.2.0",
			version:    "0.3.1",
		},
		{
			name:       "minimum bound rejects an earlier version",
			constraint: ">= 0.2.0",
			version:    "0.1.9",
			wantErr:    true,
			rejected:   true,
		},
		{
			name:       "pessimistic constraint accepts within range",
			constraint: "~> 0.2",
			version:    "0.2.5",
		},
		{
			name:       "range accepts version inside bounds",
			constraint: ">= 1.0, < 2.0",
			version:    "1.5.0",
		},
		{
			name:       "range rejects version outside bounds",
			constraint: ">= 1.0, < 2.0",
			version:    "2.1.0",
			wantErr:    true,
			rejected:   true,
		},
		{
			name:       "malformed version is an error but not a rejection",
			constraint: "0.2.0",
			version:    "not-a-version",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNegotiator(tt.constraint)
			require.NoError(t, err)

			err = n.Check(tt.version)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.rejected, errors.Is(err, ErrVersionRejected))
		})
	}
}

func TestNegotiator_CheckIsDeterministic(t *testing.T) {
	n, err := NewNegotiator(">= 0.2.0")
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.NoError(t, n.Check("0.2.0"))
		assert.ErrorIs(t, n.Check("0.1.0"), ErrVersionRejected)
	}
}

func TestNewNegotiator_InvalidConstraint(t *testing.T) {
	_, err := NewNegotiator("not a constraint")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	v, err := Parse("0.3.1")
	require.NoError(t, err)
	assert.Equal(t, "0.3.1", v.Original())

	_, err = Parse("bogus")
	assert.Error(t, err)
}
