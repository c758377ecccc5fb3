package viz

import (
	"strings"
	"testing"

	"github.com/elin-r/xtal/internal/geometry"
)

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	empty := c.String()
	if strings.ContainsRune(empty, ' ') {
		t.Error("empty canvas should render braille blanks, not spaces")
	}

	c.Set(0, 0)
	if c.String() == empty {
		t.Error("Set did not change output")
	}

	// Out of range is a no-op.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(999, 999)

	c.Clear()
	if c.String() != empty {
		t.Error("Clear did not reset")
	}
}

func TestCanvas_Line(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 19, 39)
	if c.String() == NewCanvas(10, 10).String() {
		t.Error("Line drew nothing")
	}
}

func TestCamera_ProjectCenter(t *testing.T) {
	cam := NewCamera()
	sw, sh := 80, 96
	x, y, _, ok := cam.Project(geometry.Vec3{}, sw, sh)
	if !ok {
		t.Fatal("origin not visible")
	}
	if x != sw/2 || y != sh/2 {
		t.Errorf("origin projected to (%d,%d), want screen center (%d,%d)", x, y, sw/2, sh/2)
	}
}

func TestCamera_ProjectBehindViewer(t *testing.T) {
	cam := NewCamera()
	cam.RotX, cam.RotY, cam.RotZ = 0, 0, 0
	_, _, _, ok := cam.Project(geometry.Vec3{Z: cam.Distance + 1}, 80, 96)
	if ok {
		t.Error("point behind the near plane should be culled")
	}
}

func TestDrawEdges(t *testing.T) {
	c := NewCanvas(20, 10)
	cam := NewCamera()
	wf := geometry.WireframeFor(geometry.SolidFor(geometry.Cube))
	DrawEdges(c, cam, wf.Edges)
	if c.String() == NewCanvas(20, 10).String() {
		t.Error("cube rendered to an empty canvas")
	}
}

func TestThemes(t *testing.T) {
	if got := GetTheme("quartz").Name; got != "quartz" {
		t.Errorf("GetTheme = %s", got)
	}
	if got := GetTheme("unknown").Name; got != ThemeAmethyst.Name {
		t.Errorf("unknown theme fallback = %s", got)
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}
