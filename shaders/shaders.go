// Package shaders holds the default shader sources, embedded at build time.
package shaders

import "embed"

// File names inside FS.
const (
	VertexFile   = "default.vert"
	FragmentFile = "default.frag"
	WGSLFile     = "default.wgsl"
)

// FS contains the default GLSL 330 core stages and their WGSL equivalent.
//
//go:embed default.vert default.frag default.wgsl
var FS embed.FS

//go:embed default.vert
var Vertex string

//go:embed default.frag
var Fragment string

//go:embed default.wgsl
var WGSL string
