package gles

import (
	"testing"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/gles/gl"
)

func TestBufferTarget(t *testing.T) {
	if got := bufferTarget(glcore.TargetArray); got != gl.ARRAY_BUFFER {
		t.Errorf("TargetArray = %#x, want ARRAY_BUFFER", got)
	}
	if got := bufferTarget(glcore.TargetElementArray); got != gl.ELEMENT_ARRAY_BUFFER {
		t.Errorf("TargetElementArray = %#x, want ELEMENT_ARRAY_BUFFER", got)
	}
}

func TestShaderType(t *testing.T) {
	tests := []struct {
		stage gputypes.ShaderStage
		want  uint32
	}{
		{gputypes.ShaderStageVertex, gl.VERTEX_SHADER},
		{gputypes.ShaderStageFragment, gl.FRAGMENT_SHADER},
		{gputypes.ShaderStageCompute, 0},
		{gputypes.ShaderStageNone, 0},
	}
	for _, tt := range tests {
		if got := shaderType(tt.stage); got != tt.want {
			t.Errorf("shaderType(%v) = %#x, want %#x", tt.stage, got, tt.want)
		}
	}
}

func TestVertexType(t *testing.T) {
	tests := []struct {
		format     gputypes.VertexFormat
		size       int32
		typ        uint32
		normalized bool
	}{
		{gputypes.VertexFormatFloat32x3, 3, gl.FLOAT, false},
		{gputypes.VertexFormatFloat32, 1, gl.FLOAT, false},
		{gputypes.VertexFormatFloat16x2, 2, gl.HALF_FLOAT, false},
		{gputypes.VertexFormatUnorm8x4, 4, gl.UNSIGNED_BYTE, true},
		{gputypes.VertexFormatSnorm16x2, 2, gl.SHORT, true},
		{gputypes.VertexFormatUint32x2, 2, gl.UNSIGNED_INT, false},
		{gputypes.VertexFormatSint8x2, 2, gl.BYTE, false},
		{gputypes.VertexFormatUnorm1010102, 4, glUnsignedInt2101010Rev, true},
	}
	for _, tt := range tests {
		size, typ, normalized, ok := vertexType(tt.format)
		if !ok || size != tt.size || typ != tt.typ || normalized != tt.normalized {
			t.Errorf("vertexType(%v) = (%d, %#x, %v, %v), want (%d, %#x, %v, true)",
				tt.format, size, typ, normalized, ok, tt.size, tt.typ, tt.normalized)
		}
	}
	if _, _, _, ok := vertexType(gputypes.VertexFormat(0xFFFF)); ok {
		t.Error("unknown format reported ok")
	}
}

func TestPrimitiveMode(t *testing.T) {
	tests := []struct {
		topology gputypes.PrimitiveTopology
		want     uint32
	}{
		{gputypes.PrimitiveTopologyTriangleList, gl.TRIANGLES},
		{gputypes.PrimitiveTopologyTriangleStrip, gl.TRIANGLE_STRIP},
		{gputypes.PrimitiveTopologyLineList, gl.LINES},
		{gputypes.PrimitiveTopologyLineStrip, gl.LINE_STRIP},
		{gputypes.PrimitiveTopologyPointList, gl.POINTS},
	}
	for _, tt := range tests {
		if got := primitiveMode(tt.topology); got != tt.want {
			t.Errorf("primitiveMode(%v) = %#x, want %#x", tt.topology, got, tt.want)
		}
	}
}

func TestIndexType(t *testing.T) {
	if got := indexType(gputypes.IndexFormatUint32); got != gl.UNSIGNED_INT {
		t.Errorf("Uint32 = %#x, want UNSIGNED_INT", got)
	}
	if got := indexType(gputypes.IndexFormatUint16); got != gl.UNSIGNED_SHORT {
		t.Errorf("Uint16 = %#x, want UNSIGNED_SHORT", got)
	}
	if got := indexType(gputypes.IndexFormatUndefined); got != 0 {
		t.Errorf("Undefined = %#x, want 0", got)
	}
}

func TestErrorCodesMatchGL(t *testing.T) {
	pairs := map[glcore.ErrorCode]uint32{
		glcore.NoError:          gl.NO_ERROR,
		glcore.InvalidEnum:      gl.INVALID_ENUM,
		glcore.InvalidValue:     gl.INVALID_VALUE,
		glcore.InvalidOperation: gl.INVALID_OPERATION,
		glcore.OutOfMemory:      gl.OUT_OF_MEMORY,
	}
	for code, want := range pairs {
		if uint32(code) != want {
			t.Errorf("%v = %#x, want %#x", code, uint32(code), want)
		}
	}
}
