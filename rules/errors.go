package rules

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFoodPlacementExhausted is returned when rejection sampling did not find
// a free cell within the configured number of attempts. The arena recovers by
// leaving the board without food and trying again on the next tick.
var ErrFoodPlacementExhausted = errors.New("rules: food placement attempts exhausted")

// ConfigurationError is returned by CreateArena when the configuration
// cannot produce a playable arena.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("rules: invalid %s: %s", e.Field, e.Reason)
}

// IsConfigurationError reports whether err, or its cause, is a ConfigurationError.
func IsConfigurationError(err error) bool {
	_, ok := errors.Cause(err).(*ConfigurationError)
	return ok
}
