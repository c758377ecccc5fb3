package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/elin-r/xtal/internal/anim"
	"github.com/elin-r/xtal/internal/config"
	"github.com/elin-r/xtal/internal/gui"
	"github.com/elin-r/xtal/internal/symmetry"
	"github.com/elin-r/xtal/internal/viz"
)

var (
	configFile   string
	groupFlag    string
	systemFlag   string
	themeFlag    string
	cameraFlag   string
	fpsFlag      int
	formatFlag   string
	exportAll    bool
	curveSamples int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xtal",
		Short: "interactive visualizer for the 32 crystallographic point groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(loadConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&groupFlag, "group", "", "point group id")
	rootCmd.PersistentFlags().StringVar(&systemFlag, "system", "", "crystal system filter")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "color theme")
	rootCmd.PersistentFlags().StringVar(&cameraFlag, "camera", "", "camera preset: "+strings.Join(config.ListPresets(), ", "))
	rootCmd.PersistentFlags().IntVar(&fpsFlag, "fps", 0, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list [system]",
		Short: "list point groups, optionally filtered by crystal system",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listGroups,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show one point group in detail",
		Args:  cobra.ExactArgs(1),
		RunE:  showGroup,
	}

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list the seven crystal systems",
		RunE:  listSystems,
	}

	curveCmd := &cobra.Command{
		Use:   "curve [id] [op-index]",
		Short: "plot an operation's animation curve over one loop",
		Args:  cobra.ExactArgs(2),
		RunE:  plotCurve,
	}
	curveCmd.Flags().IntVar(&curveSamples, "samples", 80, "samples across the loop")

	exportCmd := &cobra.Command{
		Use:   "export [id]",
		Short: "export catalog entries to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportGroups,
	}
	exportCmd.Flags().StringVar(&formatFlag, "format", "json", "output format: json or yaml")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export the full 32-entry catalog")

	tuiCmd := &cobra.Command{
		Use:   "tui [id]",
		Short: "terminal visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if len(args) > 0 {
				cfg.Group = args[0]
			}
			return viz.RunInteractive(cfg)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui [id]",
		Short: "native 3D window visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := ""
			if len(args) > 0 {
				start = args[0]
			} else if groupFlag != "" {
				start = groupFlag
			}
			return gui.Run(start)
		},
	}

	rootCmd.AddCommand(listCmd, showCmd, systemsCmd, curveCmd, exportCmd, tuiCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: defaults, then the config file
// (explicit path or ~/.xtal.yaml when present), then CLI flags on top.
func loadConfig() *config.Config {
	cfg := config.DefaultConfig()
	path := configFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".xtal.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if loaded, err := config.Load(path); err == nil {
			cfg = loaded
		} else {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	if groupFlag != "" {
		cfg.Group = groupFlag
	}
	if systemFlag != "" {
		cfg.System = systemFlag
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if fpsFlag > 0 {
		cfg.FPS = fpsFlag
	}
	if cameraFlag != "" {
		if cam := config.GetPreset(cameraFlag); cam != nil {
			cfg.Camera = *cam
		} else {
			fmt.Fprintf(os.Stderr, "warning: unknown camera preset %q (have: %s)\n",
				cameraFlag, strings.Join(config.ListPresets(), ", "))
		}
	}
	return cfg
}

func listGroups(cmd *cobra.Command, args []string) error {
	system := "All"
	if len(args) > 0 {
		system = args[0]
	}
	groups := symmetry.BySystem(system)
	if len(groups) == 0 {
		return fmt.Errorf("unknown crystal system: %s", system)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCHOENFLIES\tSYSTEM\tCLASS\tOPS\tEXAMPLE")
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			g.ID, g.Schoenflies, g.System, g.Name, len(g.Operations), g.Example)
	}
	return w.Flush()
}

func showGroup(cmd *cobra.Command, args []string) error {
	g, err := symmetry.Lookup(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", g.ID, g.Schoenflies)
	fmt.Printf("system:      %s\n", g.System)
	fmt.Printf("class:       %s\n", g.Name)
	fmt.Printf("example:     %s\n", g.Example)
	fmt.Printf("solid:       %s\n", g.Geometry)
	fmt.Printf("description: %s\n", g.Description)

	fmt.Println("\noperations:")
	if len(g.Operations) == 0 {
		fmt.Println("  (identity only)")
	}
	for i, op := range g.Operations {
		switch op.Kind {
		case symmetry.OpRotation:
			fmt.Printf("  [%d] %s about [%g %g %g]\n", i, op.Label(), op.Axis.X, op.Axis.Y, op.Axis.Z)
		case symmetry.OpMirror:
			fmt.Printf("  [%d] %s with normal [%g %g %g]\n", i, op.Label(), op.Normal.X, op.Normal.Y, op.Normal.Z)
		case symmetry.OpInversion:
			fmt.Printf("  [%d] %s at origin\n", i, op.Label())
		}
	}

	fmt.Printf("\nrotations: %d  mirrors: %d  inversion: %v\n",
		len(g.Rotations()), len(g.Mirrors()), g.HasInversion())
	return nil
}

func listSystems(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYSTEM\tGROUPS")
	for _, s := range symmetry.Systems() {
		fmt.Fprintf(w, "%s\t%d\n", s, len(symmetry.BySystem(string(s))))
	}
	return w.Flush()
}

func plotCurve(cmd *cobra.Command, args []string) error {
	g, err := symmetry.Lookup(args[0])
	if err != nil {
		return err
	}
	if len(g.Operations) == 0 {
		return fmt.Errorf("%s has no operations to animate", g.ID)
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("op-index must be a number, got %q", args[1])
	}
	if idx < 0 || idx >= len(g.Operations) {
		return fmt.Errorf("operation index out of range for %s (0..%d)", g.ID, len(g.Operations)-1)
	}
	if curveSamples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", curveSamples)
	}
	op := g.Operations[idx]

	data := make([]float64, curveSamples)
	for i := range data {
		elapsed := anim.Period * float64(i) / float64(curveSamples)
		t := anim.Phase(elapsed)
		if op.Kind == symmetry.OpRotation {
			data[i] = 360.0 / float64(op.Order) * t
		} else {
			data[i] = 1 - 2*t
		}
	}

	caption := fmt.Sprintf("%s: scale s(t) over one loop", op.Label())
	if op.Kind == symmetry.OpRotation {
		caption = fmt.Sprintf("%s: swept angle, deg (one step = %.1f)", op.Label(), 360.0/float64(op.Order))
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	))

	if op.Kind != symmetry.OpRotation {
		mid := anim.Ghost(op, anim.Period/2)
		fmt.Printf("\nscale at mid-loop: (%g, %g, %g)\n",
			round3(mid.Scale.X), round3(mid.Scale.Y), round3(mid.Scale.Z))
	}
	return nil
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

type opExport struct {
	Kind          string    `json:"kind" yaml:"kind"`
	Order         int       `json:"order,omitempty" yaml:"order,omitempty"`
	Axis          []float64 `json:"axis,omitempty" yaml:"axis,omitempty,flow"`
	Rotoinversion bool      `json:"rotoinversion,omitempty" yaml:"rotoinversion,omitempty"`
	Normal        []float64 `json:"normal,omitempty" yaml:"normal,omitempty,flow"`
}

type groupExport struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Schoenflies string     `json:"schoenflies" yaml:"schoenflies"`
	System      string     `json:"system" yaml:"system"`
	Description string     `json:"description" yaml:"description"`
	Example     string     `json:"example" yaml:"example"`
	Geometry    string     `json:"geometry" yaml:"geometry"`
	Operations  []opExport `json:"operations" yaml:"operations"`
}

func toExport(g symmetry.PointGroup) groupExport {
	out := groupExport{
		ID:          g.ID,
		Name:        g.Name,
		Schoenflies: g.Schoenflies,
		System:      string(g.System),
		Description: g.Description,
		Example:     g.Example,
		Geometry:    string(g.Geometry),
		Operations:  make([]opExport, 0, len(g.Operations)),
	}
	for _, op := range g.Operations {
		e := opExport{Kind: op.Kind.String()}
		switch op.Kind {
		case symmetry.OpRotation:
			e.Order = op.Order
			e.Axis = []float64{op.Axis.X, op.Axis.Y, op.Axis.Z}
			e.Rotoinversion = op.Rotoinversion
		case symmetry.OpMirror:
			e.Normal = []float64{op.Normal.X, op.Normal.Y, op.Normal.Z}
		}
		out.Operations = append(out.Operations, e)
	}
	return out
}

func exportGroups(cmd *cobra.Command, args []string) error {
	var entries []groupExport
	switch {
	case exportAll:
		for _, g := range symmetry.All() {
			entries = append(entries, toExport(g))
		}
	case len(args) == 1:
		g, err := symmetry.Lookup(args[0])
		if err != nil {
			return err
		}
		entries = append(entries, toExport(g))
	default:
		return fmt.Errorf("give a point group id or --all")
	}

	switch formatFlag {
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unknown format: %s", formatFlag)
	}
}
