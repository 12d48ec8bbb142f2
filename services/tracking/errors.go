package tracking

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when the device has no positioning capability.
// Fatal for tracking; the publish loop stops after surfacing it once.
var ErrUnsupported = errors.New("positioning is not supported on this device")

// AcquisitionError wraps a transient position read failure (permission
// denied, timeout, temporarily unavailable). The loop continues.
type AcquisitionError struct {
	Cause error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("failed to acquire position: %v", e.Cause)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Cause
}

// PublishError wraps a transport or server failure while publishing a
// position. Recorded as the session's last error; the loop continues.
type PublishError struct {
	Cause error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish position: %v", e.Cause)
}

func (e *PublishError) Unwrap() error {
	return e.Cause
}
