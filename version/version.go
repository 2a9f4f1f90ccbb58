package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// ErrVersionRejected is returned by Check when the candidate version does not
// satisfy the host constraint. Callers should test with errors.Is.
var ErrVersionRejected = fmt.Errorf("version does not satisfy constraint")

// Negotiator validates versions against a fixed constraint. It is immutable
// once constructed and safe for concurrent use.
//
// Constraint syntax is that of hashicorp/go-version: a bare version string
// ("0.2.0") means exact equality, ranges need explicit operators
// (">= 0.2.0", "~> 0.2"). Checking is deterministic and side-effect free.
type Negotiator struct {
	constraint goversion.Constraints
}

func NewNegotiator(constraintStr string) (*Negotiator, error) {
	constraint, err := goversion.NewConstraint(constraintStr)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", constraintStr, err)
	}
	return &Negotiator{constraint: constraint}, nil
}

// Check returns nil if versionStr satisfies the constraint, an error wrapping
// ErrVersionRejected if it does not, and a parse error for malformed input.
func (n *Negotiator) Check(versionStr string) error {
	v, err := goversion.NewVersion(versionStr)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", versionStr, err)
	}
	if !n.constraint.Check(v) {
		return fmt.Errorf("version %s does not satisfy constraint %s: %w", v, n.constraint, ErrVersionRejected)
	}
	return nil
}

// Constraint returns the constraint string the negotiator was built with.
func (n *Negotiator) Constraint() string {
	return n.constraint.String()
}

// Parse validates a semantic version string.
func Parse(versionStr string) (*goversion.Version, error) {
	return goversion.NewVersion(versionStr)
}
