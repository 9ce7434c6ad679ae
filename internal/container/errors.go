package container

import "fmt"

// ConfigurationError reports a programming fault in the container wiring:
// resolving a name that was never registered, a registration that would
// introduce a dependency cycle, or an accessor asking for the wrong type.
// It is raised immediately and is never retried.
type ConfigurationError struct {
	// Resource is the name of the resource the fault concerns.
	Resource string

	// Reason describes the wiring fault.
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("container configuration error for resource %q: %s", e.Resource, e.Reason)
}

// NewConfigurationError creates a ConfigurationError for the named resource.
func NewConfigurationError(resource, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Resource: resource,
		Reason:   fmt.Sprintf(format, args...),
	}
}
