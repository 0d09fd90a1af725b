package gles

import (
	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/gles/gl"
)

// glUnsignedInt2101010Rev is missing from the gl constant table.
const glUnsignedInt2101010Rev = 0x8368

func bufferTarget(t glcore.BufferTarget) uint32 {
	switch t {
	case glcore.TargetArray:
		return gl.ARRAY_BUFFER
	case glcore.TargetElementArray:
		return gl.ELEMENT_ARRAY_BUFFER
	default:
		return 0
	}
}

// shaderType returns 0 for stages a 3.3 core context cannot compile.
func shaderType(s gputypes.ShaderStage) uint32 {
	switch s {
	case gputypes.ShaderStageVertex:
		return gl.VERTEX_SHADER
	case gputypes.ShaderStageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

// vertexType converts a vertex format to the size, type and normalized
// arguments of glVertexAttribPointer. ok is false for unknown formats.
func vertexType(f gputypes.VertexFormat) (size int32, typ uint32, normalized, ok bool) {
	info := glcore.DescribeFormat(f)
	switch info.Scalar {
	case glcore.ScalarUint8:
		typ = gl.UNSIGNED_BYTE
	case glcore.ScalarSint8:
		typ = gl.BYTE
	case glcore.ScalarUint16:
		typ = gl.UNSIGNED_SHORT
	case glcore.ScalarSint16:
		typ = gl.SHORT
	case glcore.ScalarFloat16:
		typ = gl.HALF_FLOAT
	case glcore.ScalarFloat32:
		typ = gl.FLOAT
	case glcore.ScalarUint32:
		typ = gl.UNSIGNED_INT
	case glcore.ScalarSint32:
		typ = gl.INT
	case glcore.ScalarPacked1010102:
		typ = glUnsignedInt2101010Rev
	default:
		return 0, 0, false, false
	}
	return int32(info.Components), typ, info.Normalized, true
}

func primitiveMode(t gputypes.PrimitiveTopology) uint32 {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return gl.POINTS
	case gputypes.PrimitiveTopologyLineList:
		return gl.LINES
	case gputypes.PrimitiveTopologyLineStrip:
		return gl.LINE_STRIP
	case gputypes.PrimitiveTopologyTriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

func indexType(f gputypes.IndexFormat) uint32 {
	switch f {
	case gputypes.IndexFormatUint16:
		return gl.UNSIGNED_SHORT
	case gputypes.IndexFormatUint32:
		return gl.UNSIGNED_INT
	default:
		return 0
	}
}
