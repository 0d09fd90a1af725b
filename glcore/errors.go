package glcore

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when no driver implementation exists for the
// current platform.
var ErrUnsupported = errors.New("glcore: driver not supported on this platform")

// ErrorCode is a driver error flag.
type ErrorCode uint32

// Error codes, numerically identical to the OpenGL error enums.
const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

// String returns the enum name.
func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "NO_ERROR"
	case InvalidEnum:
		return "INVALID_ENUM"
	case InvalidValue:
		return "INVALID_VALUE"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("0x%04X", uint32(c))
	}
}

// DriverError is an error flag raised by the driver.
type DriverError struct {
	// Op names the call that raised the error when the driver knows it.
	Op   string
	Code ErrorCode
}

func (e *DriverError) Error() string {
	if e.Op == "" {
		return "glcore: driver error " + e.Code.String()
	}
	return fmt.Sprintf("glcore: %s: %s", e.Op, e.Code)
}

// NewDriverError returns nil for NoError and a *DriverError otherwise.
func NewDriverError(op string, code ErrorCode) error {
	if code == NoError {
		return nil
	}
	return &DriverError{Op: op, Code: code}
}

// IsOutOfMemory reports whether err is a driver OUT_OF_MEMORY error.
func IsOutOfMemory(err error) bool {
	var de *DriverError
	return errors.As(err, &de) && de.Code == OutOfMemory
}
