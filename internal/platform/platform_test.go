package platform

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gpucontext"
)

var _ gpucontext.WindowProvider = (*Headless)(nil)

func TestAvailable(t *testing.T) {
	names := Available()
	if !slices.Contains(names, HeadlessName) {
		t.Fatalf("Available() = %v, want it to contain %q", names, HeadlessName)
	}
	if !slices.IsSorted(names) {
		t.Errorf("Available() = %v, not sorted", names)
	}
	if d := Default(); !slices.Contains(names, d) {
		t.Errorf("Default() = %q, not registered", d)
	}
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open("vulkan", Options{Width: 1, Height: 1})
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("err = %v, want ErrUnknown", err)
	}
}

func TestHeadless(t *testing.T) {
	p, err := Open(HeadlessName, Options{Width: 640, Height: 480, Title: "t"})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(p.Close)

	h, ok := p.(*Headless)
	if !ok {
		t.Fatalf("Open returned %T", p)
	}
	if p.Name() != HeadlessName {
		t.Errorf("Name() = %q", p.Name())
	}
	if w, ht := p.Size(); w != 640 || ht != 480 {
		t.Errorf("Size() = %dx%d", w, ht)
	}
	if p.ScaleFactor() != 1 {
		t.Errorf("ScaleFactor() = %v", p.ScaleFactor())
	}
	if p.Driver() != h.Mock() {
		t.Error("Driver() is not the mock driver")
	}

	h.SetFrameLimit(3)
	frames := 0
	for !p.ShouldClose() {
		p.PollEvents()
		p.SwapBuffers()
		frames++
		if frames > 10 {
			t.Fatal("frame limit ignored")
		}
	}
	if frames != 3 || h.Swaps() != 3 {
		t.Errorf("frames = %d, swaps = %d, want 3", frames, h.Swaps())
	}

	h.Resize(100, 50)
	if w, ht := p.Size(); w != 100 || ht != 50 {
		t.Errorf("Size() after Resize = %dx%d", w, ht)
	}
	if w, ht := p.FramebufferSize(); w != 100 || ht != 50 {
		t.Errorf("FramebufferSize() after Resize = %dx%d", w, ht)
	}
}

func TestHeadlessClose(t *testing.T) {
	h := NewHeadless(Options{Width: 1, Height: 1})
	h.SetFrameLimit(0)
	if h.ShouldClose() {
		t.Fatal("ShouldClose before any frame")
	}
	h.Close()
	if !h.ShouldClose() {
		t.Error("ShouldClose false after Close")
	}
}
