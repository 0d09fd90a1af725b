// Package glcore defines the driver contract shared by glmesh and its drivers.
//
// The graphics driver's "currently bound object" state is global to a
// rendering context. glcore makes that context an explicit value: every
// resource operation in glmesh takes a [Driver], so binding state flows
// through an argument instead of an ambient global and can be replaced by
// an in-memory implementation in tests.
//
// # Architecture
//
//	               +-----------------+
//	               |     glmesh      |
//	               | (Buffer, Layout,|
//	               |  ShaderProgram) |
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               |  glcore.Driver  |
//	               +--------+--------+
//	                        |
//	         +--------------+--------------+
//	         |                             |
//	+--------v--------+          +--------v--------+
//	|   driver/gles   |          |   driver/mock   |
//	| (OpenGL 3.3 via |          |   (in-memory    |
//	| gogpu/wgpu gl)  |          |   GL state)     |
//	+-----------------+          +-----------------+
//
// Handles are process-local integers assigned by the driver. The zero
// [Handle] means "no object": binding it detaches the active object of
// that kind.
package glcore
