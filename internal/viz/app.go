package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/elin-r/xtal/internal/anim"
	"github.com/elin-r/xtal/internal/config"
	"github.com/elin-r/xtal/internal/geometry"
	"github.com/elin-r/xtal/internal/overlay"
	"github.com/elin-r/xtal/internal/scene"
	"github.com/elin-r/xtal/internal/symmetry"
)

const (
	canvasWidth   = 56
	canvasHeight  = 22
	curveCapacity = 90
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Width(12)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)

type TickMsg time.Time

// App is the bubbletea model for the interactive visualizer.
type App struct {
	session  *scene.Session
	systems  []string
	sysIdx   int
	groups   []symmetry.PointGroup
	groupIdx int
	opCursor int

	canvas *Canvas
	cam    *Camera
	fps    int

	paused     bool
	presetIdx  int
	showAxes   bool
	showPlanes bool
	showCenter bool
	showHelp   bool

	curve []float64
}

// NewApp builds the TUI from a config, starting on the configured group (or
// the first group of the configured system filter).
func NewApp(cfg *config.Config) (App, error) {
	systems := []string{"All"}
	for _, s := range symmetry.Systems() {
		systems = append(systems, string(s))
	}
	sysIdx := 0
	for i, s := range systems {
		if s == cfg.System {
			sysIdx = i
		}
	}
	groups := symmetry.BySystem(systems[sysIdx])
	groupIdx := 0
	for i, g := range groups {
		if g.ID == cfg.Group {
			groupIdx = i
		}
	}
	session, err := scene.New(groups[groupIdx].ID)
	if err != nil {
		return App{}, err
	}
	SetTheme(cfg.Theme)
	cam := NewCamera()
	cam.RotX, cam.RotY = cfg.Camera.RotX, cfg.Camera.RotY
	if cfg.Camera.Zoom > 0 {
		cam.Zoom = cfg.Camera.Zoom
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return App{
		session:    session,
		systems:    systems,
		sysIdx:     sysIdx,
		groups:     groups,
		groupIdx:   groupIdx,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		cam:        cam,
		fps:        fps,
		presetIdx:  -1,
		showAxes:   cfg.ShowAxes,
		showPlanes: cfg.ShowPlanes,
		showCenter: cfg.ShowCenter,
		curve:      make([]float64, 0, curveCapacity),
	}, nil
}

func (a App) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a App) Init() tea.Cmd { return a.tickCmd() }

// Update handles input events and advances the animation clock.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case " ":
			a.paused = !a.paused
		case "left", "h":
			a.selectGroup(a.groupIdx - 1)
		case "right", "l":
			a.selectGroup(a.groupIdx + 1)
		case "up", "k":
			a.moveCursor(-1)
		case "down", "j":
			a.moveCursor(1)
		case "enter":
			a.activateCursor()
		case "esc":
			a.session.SetActiveOperation(nil)
			a.curve = a.curve[:0]
		case "s":
			a.cycleSystem()
		case "c":
			a.cyclePreset()
		case "a":
			a.showAxes = !a.showAxes
		case "p":
			a.showPlanes = !a.showPlanes
		case "i":
			a.showCenter = !a.showCenter
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "x":
			a.cam.RotateX(0.1)
		case "X":
			a.cam.RotateX(-0.1)
		case "y":
			a.cam.RotateY(0.1)
		case "Y":
			a.cam.RotateY(-0.1)
		case "z":
			a.cam.RotateZ(0.1)
		case "Z":
			a.cam.RotateZ(-0.1)
		case "+", "=":
			a.cam.ZoomIn()
		case "-", "_":
			a.cam.ZoomOut()
		case "?":
			a.showHelp = !a.showHelp
		}
	case TickMsg:
		if !a.paused {
			a.session.Tick(1.0 / float64(a.fps))
		}
		a.sampleCurve()
		return a, a.tickCmd()
	}
	return a, nil
}

func (a *App) selectGroup(idx int) {
	n := len(a.groups)
	if n == 0 {
		return
	}
	idx = ((idx % n) + n) % n
	if err := a.session.SelectPointGroup(a.groups[idx].ID); err != nil {
		return
	}
	a.groupIdx = idx
	a.opCursor = 0
	a.curve = a.curve[:0]
}

func (a *App) cycleSystem() {
	a.sysIdx = (a.sysIdx + 1) % len(a.systems)
	a.groups = symmetry.BySystem(a.systems[a.sysIdx])
	a.groupIdx = -1 // force reselect
	a.selectGroup(0)
}

// cyclePreset snaps the camera to the next named viewpoint.
func (a *App) cyclePreset() {
	names := config.ListPresets()
	a.presetIdx = (a.presetIdx + 1) % len(names)
	cam := config.GetPreset(names[a.presetIdx])
	a.cam.RotX, a.cam.RotY, a.cam.RotZ = cam.RotX, cam.RotY, 0
	a.cam.Zoom = cam.Zoom
}

func (a *App) moveCursor(dir int) {
	ops := a.session.Group().Operations
	if len(ops) == 0 {
		return
	}
	a.opCursor = ((a.opCursor+dir)%len(ops) + len(ops)) % len(ops)
}

func (a *App) activateCursor() {
	ops := a.session.Group().Operations
	if len(ops) == 0 {
		return
	}
	op := ops[a.opCursor]
	a.session.SetActiveOperation(&op)
	a.curve = a.curve[:0]
}

// sampleCurve records the animated quantity once per frame: the swept angle
// in degrees for rotations, the scale factor for mirrors and inversion.
func (a *App) sampleCurve() {
	op, ok := a.session.ActiveOperation()
	if !ok {
		return
	}
	t := anim.Phase(a.session.Elapsed())
	var v float64
	if op.Kind == symmetry.OpRotation {
		v = 360.0 / float64(op.Order) * t
	} else {
		v = 1 - 2*t
	}
	a.curve = append(a.curve, v)
	if len(a.curve) > curveCapacity {
		a.curve = a.curve[1:]
	}
}

// draw renders the solid, the requested markers and the ghost copy.
func (a *App) draw() {
	a.canvas.Clear()
	wf := geometry.WireframeFor(a.session.Solid())
	DrawEdges(a.canvas, a.cam, wf.Edges)
	DrawEdges(a.canvas, a.cam, a.markerEdges())
	if tr, ok := a.session.GhostTransform(); ok {
		DrawEdges(a.canvas, a.cam, wf.Transformed(tr).Edges)
	}
}

// markerEdges converts the static markers into drawable line segments.
func (a *App) markerEdges() []geometry.Edge {
	var edges []geometry.Edge
	for _, m := range a.session.Markers() {
		switch m.Kind {
		case overlay.MarkerAxis:
			if !a.showAxes {
				continue
			}
			edges = append(edges, geometry.Edge{Start: m.Start, End: m.End})
		case overlay.MarkerPlane:
			if !a.showPlanes {
				continue
			}
			for i := range m.Corners {
				edges = append(edges, geometry.Edge{Start: m.Corners[i], End: m.Corners[(i+1)%4]})
			}
			edges = append(edges,
				geometry.Edge{Start: m.Corners[0], End: m.Corners[2]},
				geometry.Edge{Start: m.Corners[1], End: m.Corners[3]})
		case overlay.MarkerCenter:
			if !a.showCenter {
				continue
			}
			const r = 0.12
			edges = append(edges,
				geometry.Edge{Start: geometry.Vec3{X: -r}, End: geometry.Vec3{X: r}},
				geometry.Edge{Start: geometry.Vec3{Y: -r}, End: geometry.Vec3{Y: r}},
				geometry.Edge{Start: geometry.Vec3{Z: -r}, End: geometry.Vec3{Z: r}})
		}
	}
	return edges
}

// View renders the TUI interface.
func (a App) View() string {
	a.draw()

	th := CurrentTheme
	header := lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	value := lipgloss.NewStyle().Foreground(th.Text)
	label := labelStyle.Foreground(th.Muted)
	active := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(th.Muted)
	warn := lipgloss.NewStyle().Foreground(th.Warning).Bold(true)

	g := a.session.Group()
	var s strings.Builder
	s.WriteString(headerStyle.Inherit(header).Render(fmt.Sprintf("%s  ·  %s", g.ID, g.Schoenflies)) + "\n")
	s.WriteString(label.Render("System") + value.Render(string(g.System)) + "\n")
	s.WriteString(label.Render("Class") + value.Render(g.Name) + "\n")
	s.WriteString(label.Render("Example") + value.Render(g.Example) + "\n")
	s.WriteString(label.Render("Filter") + value.Render(a.systems[a.sysIdx]) + "\n")
	s.WriteString("\n" + muted.Render(g.Description) + "\n")

	s.WriteString("\nOPERATIONS\n")
	if len(g.Operations) == 0 {
		s.WriteString(muted.Render("  no operations to animate") + "\n")
	}
	activeOp, animating := a.session.ActiveOperation()
	for i, op := range g.Operations {
		line := op.Label()
		mark := "  "
		if animating && op == activeOp {
			mark = "* "
		}
		if i == a.opCursor {
			s.WriteString(active.Render("> "+mark+line) + "\n")
		} else {
			s.WriteString(value.Render("  "+mark+line) + "\n")
		}
	}

	s.WriteString("\n")
	if animating {
		t := anim.Phase(a.session.Elapsed())
		status := active.Render(fmt.Sprintf("ANIMATING %s  t=%.2f", activeOp.Label(), t))
		if a.paused {
			status = warn.Render("PAUSED") + " " + status
		}
		s.WriteString(status + "\n")
		if len(a.curve) > 1 {
			caption := "scale s(t)"
			if activeOp.Kind == symmetry.OpRotation {
				caption = fmt.Sprintf("angle, deg (max %.0f)", 360.0/float64(activeOp.Order))
			}
			chart := asciigraph.Plot(a.curve, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption(caption))
			s.WriteString(chart + "\n")
		}
	} else {
		s.WriteString(muted.Render("IDLE  enter: animate selected") + "\n")
	}

	s.WriteString(helpStyle.Inherit(muted).Render("←→:Group ↑↓:Op ⏎:Animate Esc:Stop S:System\nA/P/I:Markers T:Theme C:View XYZ:Orbit +-:Zoom ?:Help Q:Quit"))

	canvasView := canvasStyle.Render(lipgloss.NewStyle().Foreground(th.Secondary).Render(a.canvas.String()))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if a.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔════════════════════════════════════════╗
║           KEYBOARD SHORTCUTS           ║
╠════════════════════════════════════════╣
║  Left/Right - Previous/next group      ║
║  S          - Cycle crystal system     ║
║  Up/Down    - Select operation         ║
║  Enter      - Animate selected op      ║
║  Esc        - Stop animation           ║
║  Space      - Pause/resume clock       ║
║  A / P / I  - Toggle axes/planes/center║
║  X/Y/Z      - Orbit camera (shift:rev) ║
║  C          - Cycle camera viewpoints  ║
║  + / -      - Zoom in/out              ║
║  T          - Cycle themes             ║
║  ?          - Toggle this help         ║
║  Q          - Quit                     ║
╚════════════════════════════════════════╝`

// RunInteractive starts the TUI with the given config.
func RunInteractive(cfg *config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app)
	_, err = p.Run()
	return err
}
