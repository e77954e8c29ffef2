package platform

import (
	"errors"
	"fmt"
)

var ErrPlatformResource = errors.New("platform resource unavailable")

type Resource string

const (
	ResourceVideo    Resource = "video subsystem"
	ResourceWindow   Resource = "window"
	ResourceRenderer Resource = "renderer"
)

// ResourceError reports that the platform could not provide a resource. Detail
// carries the backend's last error string.
type ResourceError struct {
	Backend  string
	Resource Resource
	Detail   string
}

func (e *ResourceError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s creation failed", e.Backend, e.Resource)
	}
	return fmt.Sprintf("%s: %s creation failed: %s", e.Backend, e.Resource, e.Detail)
}

func (e *ResourceError) Is(target error) bool {
	return target == ErrPlatformResource
}

// NewResourceError builds a ResourceError from the platform's current
// diagnostic, falling back to cause when the platform reports nothing.
func NewResourceError(p Platform, res Resource, cause error) *ResourceError {
	detail := p.LastError()
	if detail == "" && cause != nil {
		detail = cause.Error()
	}
	return &ResourceError{Backend: p.Name(), Resource: res, Detail: detail}
}
