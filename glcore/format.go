package glcore

import "github.com/gogpu/gputypes"

// ScalarType is the component type of a vertex attribute.
type ScalarType uint8

// Scalar types.
const (
	ScalarUnknown ScalarType = iota
	ScalarUint8
	ScalarSint8
	ScalarUint16
	ScalarSint16
	ScalarFloat16
	ScalarFloat32
	ScalarUint32
	ScalarSint32
	ScalarPacked1010102
)

// FormatInfo describes how a vertex format is fetched by the driver.
type FormatInfo struct {
	Components int
	Scalar     ScalarType
	// Normalized integer formats are mapped to [0,1] or [-1,1] on fetch.
	Normalized bool
}

// DescribeFormat returns the fetch description of f. Components is zero
// for undefined or unknown formats.
func DescribeFormat(f gputypes.VertexFormat) FormatInfo {
	switch f {
	case gputypes.VertexFormatUint8x2:
		return FormatInfo{2, ScalarUint8, false}
	case gputypes.VertexFormatUint8x4:
		return FormatInfo{4, ScalarUint8, false}
	case gputypes.VertexFormatSint8x2:
		return FormatInfo{2, ScalarSint8, false}
	case gputypes.VertexFormatSint8x4:
		return FormatInfo{4, ScalarSint8, false}
	case gputypes.VertexFormatUnorm8x2:
		return FormatInfo{2, ScalarUint8, true}
	case gputypes.VertexFormatUnorm8x4:
		return FormatInfo{4, ScalarUint8, true}
	case gputypes.VertexFormatSnorm8x2:
		return FormatInfo{2, ScalarSint8, true}
	case gputypes.VertexFormatSnorm8x4:
		return FormatInfo{4, ScalarSint8, true}
	case gputypes.VertexFormatUint16x2:
		return FormatInfo{2, ScalarUint16, false}
	case gputypes.VertexFormatUint16x4:
		return FormatInfo{4, ScalarUint16, false}
	case gputypes.VertexFormatSint16x2:
		return FormatInfo{2, ScalarSint16, false}
	case gputypes.VertexFormatSint16x4:
		return FormatInfo{4, ScalarSint16, false}
	case gputypes.VertexFormatUnorm16x2:
		return FormatInfo{2, ScalarUint16, true}
	case gputypes.VertexFormatUnorm16x4:
		return FormatInfo{4, ScalarUint16, true}
	case gputypes.VertexFormatSnorm16x2:
		return FormatInfo{2, ScalarSint16, true}
	case gputypes.VertexFormatSnorm16x4:
		return FormatInfo{4, ScalarSint16, true}
	case gputypes.VertexFormatFloat16x2:
		return FormatInfo{2, ScalarFloat16, false}
	case gputypes.VertexFormatFloat16x4:
		return FormatInfo{4, ScalarFloat16, false}
	case gputypes.VertexFormatFloat32:
		return FormatInfo{1, ScalarFloat32, false}
	case gputypes.VertexFormatFloat32x2:
		return FormatInfo{2, ScalarFloat32, false}
	case gputypes.VertexFormatFloat32x3:
		return FormatInfo{3, ScalarFloat32, false}
	case gputypes.VertexFormatFloat32x4:
		return FormatInfo{4, ScalarFloat32, false}
	case gputypes.VertexFormatUint32:
		return FormatInfo{1, ScalarUint32, false}
	case gputypes.VertexFormatUint32x2:
		return FormatInfo{2, ScalarUint32, false}
	case gputypes.VertexFormatUint32x3:
		return FormatInfo{3, ScalarUint32, false}
	case gputypes.VertexFormatUint32x4:
		return FormatInfo{4, ScalarUint32, false}
	case gputypes.VertexFormatSint32:
		return FormatInfo{1, ScalarSint32, false}
	case gputypes.VertexFormatSint32x2:
		return FormatInfo{2, ScalarSint32, false}
	case gputypes.VertexFormatSint32x3:
		return FormatInfo{3, ScalarSint32, false}
	case gputypes.VertexFormatSint32x4:
		return FormatInfo{4, ScalarSint32, false}
	case gputypes.VertexFormatUnorm1010102:
		return FormatInfo{4, ScalarPacked1010102, true}
	default:
		return FormatInfo{}
	}
}
