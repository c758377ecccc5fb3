// Package gui is the native raylib shell: a windowed 3D view of the active
// point group with orbiting camera, symmetry-element markers and the animated
// ghost copy.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/elin-r/xtal/internal/anim"
	"github.com/elin-r/xtal/internal/geometry"
	"github.com/elin-r/xtal/internal/overlay"
	"github.com/elin-r/xtal/internal/scene"
	"github.com/elin-r/xtal/internal/symmetry"
)

// Theme colors
var (
	colBg     = rl.NewColor(12, 10, 18, 255)
	colSolid  = rl.NewColor(190, 170, 255, 255)
	colGhost  = rl.NewColor(255, 215, 64, 220)
	colAxis   = rl.NewColor(105, 240, 174, 255)
	colRoto   = rl.NewColor(255, 138, 101, 255)
	colPlane  = rl.NewColor(79, 195, 247, 160)
	colCenter = rl.NewColor(255, 255, 255, 255)
	colText   = rl.NewColor(220, 215, 235, 255)
	colMuted  = rl.NewColor(110, 105, 130, 255)
)

type App struct {
	Session     *scene.Session
	Groups      []symmetry.PointGroup
	GroupIdx    int
	OpCursor    int
	Camera      rl.Camera3D
	Yaw, Pitch  float64
	Dist        float64
	Paused      bool
	ShowMarkers bool
}

func NewApp(startGroup string) (*App, error) {
	groups := symmetry.All()
	idx := 0
	for i, g := range groups {
		if g.ID == startGroup {
			idx = i
		}
	}
	session, err := scene.New(groups[idx].ID)
	if err != nil {
		return nil, err
	}
	a := &App{
		Session:     session,
		Groups:      groups,
		GroupIdx:    idx,
		Yaw:         0.7,
		Pitch:       0.45,
		Dist:        5.5,
		ShowMarkers: true,
	}
	a.Camera = rl.NewCamera3D(
		rl.NewVector3(0, 0, float32(a.Dist)),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
	a.updateCamera()
	return a, nil
}

// Run opens the window on the given group id (empty for the default) and
// blocks until it is closed.
func Run(startGroup string) error {
	if startGroup == "" {
		startGroup = "m-3m"
	}
	app, err := NewApp(startGroup)
	if err != nil {
		return err
	}
	rl.InitWindow(1280, 720, "xtal")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
	return nil
}

func (a *App) updateCamera() {
	a.Camera.Position = rl.NewVector3(
		float32(a.Dist*math.Cos(a.Pitch)*math.Sin(a.Yaw)),
		float32(a.Dist*math.Sin(a.Pitch)),
		float32(a.Dist*math.Cos(a.Pitch)*math.Cos(a.Yaw)),
	)
}

func (a *App) selectGroup(idx int) {
	n := len(a.Groups)
	idx = ((idx % n) + n) % n
	if err := a.Session.SelectPointGroup(a.Groups[idx].ID); err != nil {
		return
	}
	a.GroupIdx = idx
	a.OpCursor = 0
}

func (a *App) Update() {
	switch {
	case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyH):
		a.selectGroup(a.GroupIdx - 1)
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyL):
		a.selectGroup(a.GroupIdx + 1)
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyK):
		a.moveCursor(-1)
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyJ):
		a.moveCursor(1)
	case rl.IsKeyPressed(rl.KeyEnter):
		ops := a.Session.Group().Operations
		if len(ops) > 0 {
			op := ops[a.OpCursor]
			a.Session.SetActiveOperation(&op)
		}
	case rl.IsKeyPressed(rl.KeyEscape):
		a.Session.SetActiveOperation(nil)
	case rl.IsKeyPressed(rl.KeySpace):
		a.Paused = !a.Paused
	case rl.IsKeyPressed(rl.KeyM):
		a.ShowMarkers = !a.ShowMarkers
	}

	dt := float64(rl.GetFrameTime())
	if rl.IsKeyDown(rl.KeyA) {
		a.Yaw -= 1.5 * dt
	}
	if rl.IsKeyDown(rl.KeyD) {
		a.Yaw += 1.5 * dt
	}
	if rl.IsKeyDown(rl.KeyW) {
		a.Pitch = math.Min(1.4, a.Pitch+1.5*dt)
	}
	if rl.IsKeyDown(rl.KeyS) {
		a.Pitch = math.Max(-1.4, a.Pitch-1.5*dt)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Dist = math.Min(20, math.Max(2, a.Dist-float64(wheel)*0.5))
	}
	a.updateCamera()

	if !a.Paused {
		a.Session.Tick(dt)
	}
}

func (a *App) moveCursor(dir int) {
	ops := a.Session.Group().Operations
	if len(ops) == 0 {
		return
	}
	a.OpCursor = ((a.OpCursor+dir)%len(ops) + len(ops)) % len(ops)
}

func rlVec(v geometry.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func drawWireframe(wf *geometry.Wireframe, col rl.Color) {
	for _, e := range wf.Edges {
		rl.DrawLine3D(rlVec(e.Start), rlVec(e.End), col)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)
	rl.BeginMode3D(a.Camera)

	rl.DrawGrid(10, 0.5)

	wf := geometry.WireframeFor(a.Session.Solid())
	drawWireframe(wf, colSolid)

	if a.ShowMarkers {
		a.drawMarkers()
	}

	if tr, ok := a.Session.GhostTransform(); ok {
		drawWireframe(wf.Transformed(tr), colGhost)
	}

	rl.EndMode3D()
	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawMarkers() {
	for _, m := range a.Session.Markers() {
		switch m.Kind {
		case overlay.MarkerAxis:
			col := colAxis
			if m.Rotoinversion {
				col = colRoto
			}
			rl.DrawLine3D(rlVec(m.Start), rlVec(m.End), col)
			rl.DrawSphere(rlVec(m.End), 0.04, col)
			rl.DrawSphere(rlVec(m.Start), 0.04, col)
		case overlay.MarkerPlane:
			for i := range m.Corners {
				rl.DrawLine3D(rlVec(m.Corners[i]), rlVec(m.Corners[(i+1)%4]), colPlane)
			}
			rl.DrawLine3D(rlVec(m.Corners[0]), rlVec(m.Corners[2]), colPlane)
			rl.DrawLine3D(rlVec(m.Corners[1]), rlVec(m.Corners[3]), colPlane)
		case overlay.MarkerCenter:
			rl.DrawSphere(rl.NewVector3(0, 0, 0), 0.06, colCenter)
		}
	}
}

func (a *App) drawHUD() {
	g := a.Session.Group()
	rl.DrawText(fmt.Sprintf("%s  (%s)  %s", g.ID, g.Schoenflies, g.System), 20, 20, 24, colText)
	rl.DrawText(fmt.Sprintf("%s - e.g. %s", g.Name, g.Example), 20, 50, 18, colMuted)

	y := int32(90)
	if len(g.Operations) == 0 {
		rl.DrawText("no operations to animate", 20, y, 18, colMuted)
	}
	activeOp, animating := a.Session.ActiveOperation()
	for i, op := range g.Operations {
		col := colMuted
		prefix := "  "
		if i == a.OpCursor {
			col = colText
			prefix = "> "
		}
		label := op.Label()
		if animating && op == activeOp {
			label += "  *"
			col = colGhost
		}
		rl.DrawText(prefix+label, 20, y, 18, col)
		y += 24
	}

	if animating {
		t := anim.Phase(a.Session.Elapsed())
		rl.DrawText(fmt.Sprintf("t = %.2f", t), 20, y+10, 18, colGhost)
	}

	rl.DrawText("arrows: group/op  enter: animate  esc: stop  space: pause  m: markers  wasd: orbit", 20, 690, 16, colMuted)
	rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), 1210, 20, 16, colMuted)
}
