package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/tally"
)

// mockBackend records what it receives.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	viewport   Viewport
	fills      []*tally.Path
	strokes    []tally.Stroke
	texts      []tally.Point
	beginErr   error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(vp Viewport) error {
	b.beginCalls++
	b.viewport = vp
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) FillPath(p *tally.Path, _ tally.RGBA) {
	b.fills = append(b.fills, p)
}

func (b *mockBackend) StrokePath(_ *tally.Path, s tally.Stroke, _ tally.RGBA) {
	b.strokes = append(b.strokes, s)
}

func (b *mockBackend) DrawText(_ string, at tally.Point, _ tally.Font, _ tally.RGBA) {
	b.texts = append(b.texts, at)
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]registration)
	byExt = make(map[string]string)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend {
		return newMockBackend("test")
	})

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
	if !IsRegistered("test") {
		t.Error("IsRegistered(test) = false")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewBackend("pdf")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewBackend(pdf) error = %v, want ErrUnknownBackend", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	assertPanics := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		fn()
	}

	assertPanics("nil factory", func() { Register("nil", nil) })
	Register("dup", func() Backend { return newMockBackend("dup") })
	assertPanics("duplicate", func() {
		Register("dup", func() Backend { return newMockBackend("dup") })
	})
	assertPanics("MustBackend", func() { MustBackend("missing") })

	Register("png", func() Backend { return newMockBackend("png") }, ".png")
	assertPanics("duplicate extension", func() {
		Register("png2", func() Backend { return newMockBackend("png2") }, "PNG")
	})
}

func TestBackendFor(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("raster", func() Backend { return newMockBackend("raster") }, ".png")
	Register("svg", func() Backend { return newMockBackend("svg") }, "svg", ".SVGZ")

	tests := []struct {
		path string
		want string
	}{
		{"out/legend.png", "raster"},
		{"map.SVG", "svg"},
		{"map.svgz", "svg"},
	}
	for _, tt := range tests {
		got, err := BackendFor(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("BackendFor(%q) = %q, %v, want %q", tt.path, got, err, tt.want)
		}
	}
	for _, path := range []string{"legend.pdf", "legend"} {
		if _, err := BackendFor(path); !errors.Is(err, ErrUnknownBackend) {
			t.Errorf("BackendFor(%q) error = %v, want ErrUnknownBackend", path, err)
		}
	}

	if got := Extensions("svg"); len(got) != 2 || got[0] != ".svg" || got[1] != ".svgz" {
		t.Errorf("Extensions(svg) = %v, want [.svg .svgz]", got)
	}
	Unregister("svg")
	if _, err := BackendFor("map.svg"); err == nil {
		t.Error("BackendFor(map.svg) after Unregister = nil error")
	}
}

func TestBackendsSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, name := range []string{"svg", "raster", "pdf"} {
		Register(name, func() Backend { return newMockBackend(name) })
	}
	got := Backends()
	want := []string{"pdf", "raster", "svg"}
	if len(got) != len(want) {
		t.Fatalf("Backends() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Backends()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	Unregister("pdf")
	if IsRegistered("pdf") {
		t.Error("IsRegistered(pdf) after Unregister = true")
	}
}
