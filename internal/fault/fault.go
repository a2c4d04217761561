// Package fault defines the recoverable error taxonomy shared by the
// workflow engine and its callers. Every engine failure wraps one of the
// sentinel markers so callers can classify without parsing messages.
package fault

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Validation marks missing or malformed input fields.
	Validation = errors.New("validation error")
	// Precondition marks an unsatisfied stage gate.
	Precondition = errors.New("precondition error")
	// Authorization marks an action the acting role may not perform.
	Authorization = errors.New("authorization error")
)

// Wrap tags a failure detail with the provided marker while keeping the
// action context in the message. The marker should be one of the exported
// sentinel errors above.
func Wrap(marker error, action, detail string) error {
	if marker == nil {
		marker = Validation
	}
	parts := make([]string, 0, 2)
	if action = strings.TrimSpace(action); action != "" {
		parts = append(parts, action)
	}
	if detail = strings.TrimSpace(detail); detail != "" {
		parts = append(parts, detail)
	}
	if len(parts) == 0 {
		return marker
	}
	return fmt.Errorf("%w: %s", marker, strings.Join(parts, ": "))
}

// Kind returns the taxonomy name of an error, or an empty string for
// errors outside the taxonomy.
func Kind(err error) string {
	switch {
	case errors.Is(err, Validation):
		return "validation"
	case errors.Is(err, Precondition):
		return "precondition"
	case errors.Is(err, Authorization):
		return "authorization"
	default:
		return ""
	}
}
