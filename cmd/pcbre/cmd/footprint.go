package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"pcb-reveng/internal/component"
	"pcb-reveng/internal/library"
	"pcb-reveng/pkg/geometry"
)

// geometryFlags selects a preset or spells out passive geometry directly.
type geometryFlags struct {
	preset     string
	sym        string
	body       string
	pinD       float64
	bodyCorner string
	pinCorner  string
}

func (g *geometryFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&g.preset, "preset", "", "footprint preset name")
	f.StringVar(&g.sym, "sym", "resistor", "symbol type (resistor, capacitor, capacitor_polarized, inductor, diode)")
	f.StringVar(&g.body, "body", "chip", "body type (chip, smd_cap, th_axial, th_radial, th_flipped_cap)")
	f.Float64Var(&g.pinD, "pin-d", 0, "center-to-pin distance")
	f.StringVar(&g.bodyCorner, "body-corner", "0,0", "body half-extents x,y")
	f.StringVar(&g.pinCorner, "pin-corner", "0,0", "pad half-extents x,y")
}

// resolve returns the chosen preset, or one built from the explicit flags.
func (g *geometryFlags) resolve(lib *library.Library) (*library.Preset, error) {
	if g.preset != "" {
		p := lib.Get(g.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", g.preset)
		}
		return p, nil
	}

	sym, err := component.ParsePassiveSymType(g.sym)
	if err != nil {
		return nil, err
	}
	body, err := component.ParsePassive2BodyType(g.body)
	if err != nil {
		return nil, err
	}
	bodyCorner, err := parsePoint(g.bodyCorner)
	if err != nil {
		return nil, err
	}
	pinCorner, err := parsePoint(g.pinCorner)
	if err != nil {
		return nil, err
	}
	return &library.Preset{
		Name:       "custom",
		SymType:    sym,
		BodyType:   body,
		PinD:       g.pinD,
		BodyCorner: bodyCorner,
		PinCorner:  pinCorner,
	}, nil
}

func newFootprintCmd(e *env) *cobra.Command {
	g := &geometryFlags{}
	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Show the pads and local bounds of a two-terminal footprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := g.resolve(e.lib)
			if err != nil {
				return err
			}
			c := p.Build(nil, geometry.Point2D{}, 0, component.SideTop)
			printComponent(cmd.OutOrStdout(), p.Name, c)
			return nil
		},
	}
	g.register(cmd)
	return cmd
}

func newPresetsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List footprint presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range e.lib.Names() {
				p := e.lib.Get(name)
				fmt.Fprintf(out, "%-14s %-20s %-15s pin_d=%g\n", p.Name, p.SymType, p.BodyType, p.PinD)
			}
			return nil
		},
	}
}

func printComponent(out io.Writer, label string, c *component.Passive2Component) {
	fmt.Fprintf(out, "%s: %s/%s\n", label, c.SymType(), c.BodyType())
	fmt.Fprintf(out, "  at (%g, %g) theta %.1f° side %s, on %s side(s)\n",
		c.Center.X, c.Center.Y, c.Theta*180/math.Pi, c.Side, c.OnSides())
	for _, pad := range c.Pads() {
		kind := "smd"
		if pad.ThroughHole {
			kind = "th"
		}
		fmt.Fprintf(out, "  pad %s: offset (%g, %g) size %g x %g %s\n",
			pad.Name, pad.RelCenter.X, pad.RelCenter.Y, pad.Width, pad.Height, kind)
	}
	bb := c.ThetaBBox()
	fmt.Fprintf(out, "  bbox: %g x %g\n", bb.Width, bb.Height)
}
