// Package mock provides an in-memory glcore.Driver for tests.
//
// The mock models the parts of OpenGL 3.3 core state glmesh relies on:
// object names, buffer and vertex array bindings (the element buffer
// binding lives in the bound vertex array), per-slot attribute state, the
// current program, and latched error flags. Shader sources are checked by
// a small GLSL front end ([CheckGLSL], [CheckLink]) so malformed sources
// fail the way a real driver would.
//
// Every call is recorded, every draw is captured with the state it used,
// and failures can be injected with [Driver.InjectError] and
// [Driver.FailGen].
package mock
