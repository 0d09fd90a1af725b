package glcore

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDescribeFormat(t *testing.T) {
	tests := []struct {
		format gputypes.VertexFormat
		want   FormatInfo
	}{
		{gputypes.VertexFormatFloat32x3, FormatInfo{3, ScalarFloat32, false}},
		{gputypes.VertexFormatFloat32, FormatInfo{1, ScalarFloat32, false}},
		{gputypes.VertexFormatUnorm8x4, FormatInfo{4, ScalarUint8, true}},
		{gputypes.VertexFormatSint16x2, FormatInfo{2, ScalarSint16, false}},
		{gputypes.VertexFormatUndefined, FormatInfo{}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := DescribeFormat(tt.format); got != tt.want {
				t.Errorf("DescribeFormat(%v) = %+v, want %+v", tt.format, got, tt.want)
			}
		})
	}
}

// Every format gputypes can size must also be describable.
func TestDescribeFormatCoversSizedFormats(t *testing.T) {
	for f := gputypes.VertexFormatUint8x2; f <= gputypes.VertexFormatUnorm1010102; f++ {
		if f.Size() == 0 {
			continue
		}
		if DescribeFormat(f).Components == 0 {
			t.Errorf("DescribeFormat(%v) has no components", f)
		}
	}
}
