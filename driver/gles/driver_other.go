//go:build !linux

package gles

import (
	"unsafe"

	"github.com/gogpu/glmesh/glcore"
)

// ProcAddressFunc resolves an OpenGL entry point by name.
type ProcAddressFunc = func(name string) unsafe.Pointer

// Driver is unavailable on this platform.
type Driver struct {
	glcore.Driver
}

// New returns glcore.ErrUnsupported.
func New(ProcAddressFunc) (*Driver, error) {
	return nil, glcore.ErrUnsupported
}
