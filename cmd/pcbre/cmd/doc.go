package cmd

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pcb-reveng/internal/component"
	"pcb-reveng/internal/document"
	"pcb-reveng/internal/project"
)

func newDocCmd(e *env) *cobra.Command {
	docCmd := &cobra.Command{
		Use:   "doc",
		Short: "Project document operations",
		Long:  `Commands for project documents (.pcbj JSON, .pcbm msgpack)`,
	}
	docCmd.AddCommand(newDocNewCmd(e))
	docCmd.AddCommand(newDocAddCmd(e))
	docCmd.AddCommand(newDocShowCmd(e))
	docCmd.AddCommand(newDocConvertCmd(e))
	return docCmd
}

func newDocNewCmd(e *env) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create an empty project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.withExtension(args[0])
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			p := project.New(name)
			if err := p.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", path, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "project name (default: file name)")
	return cmd
}

func newDocAddCmd(e *env) *cobra.Command {
	g := &geometryFlags{}
	var at, side string
	var thetaDeg float64

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Place a two-terminal component in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.withExtension(args[0])
			p, err := project.Load(path)
			if err != nil {
				return err
			}
			preset, err := g.resolve(e.lib)
			if err != nil {
				return err
			}
			center, err := parsePoint(at)
			if err != nil {
				return err
			}
			s, err := component.ParseSide(side)
			if err != nil {
				return err
			}

			c := preset.Build(p, center, thetaDeg*math.Pi/180, s)
			p.AddComponent(c)
			if err := p.Save(path); err != nil {
				return err
			}
			printComponent(cmd.OutOrStdout(), fmt.Sprintf("%s%d", c.SymType().Designator(), p.Count()), c)
			return nil
		},
	}
	g.register(cmd)
	cmd.Flags().StringVar(&at, "at", "0,0", "center x,y")
	cmd.Flags().Float64Var(&thetaDeg, "theta", 0, "rotation in degrees")
	cmd.Flags().StringVar(&side, "side", "top", "board side (top, bottom)")
	return cmd
}

func newDocShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a project's stackup and components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Load(e.withExtension(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", p.Name, p.ID)
			fmt.Fprintf(out, "Modified: %s\n", p.Modified.Format("2006-01-02 15:04:05"))
			for i, l := range p.Stackup.Layers() {
				fmt.Fprintf(out, "Layer %d: %s\n", i, l.Name)
			}
			for i, c := range p.Components {
				pc, ok := c.(*component.Passive2Component)
				if !ok {
					fmt.Fprintf(out, "#%d: %T\n", i+1, c)
					continue
				}
				printComponent(out, fmt.Sprintf("#%d %s", i+1, pc.SymType().Designator()), pc)
			}
			return nil
		},
	}
}

func newDocConvertCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode a document; the encoding follows each file's extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := e.withExtension(args[0])
			doc, err := document.Load(in)
			if err != nil {
				return err
			}
			// Decode every component before writing so corrupt input is not propagated.
			if _, err := project.FromDocument(doc); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			if err := document.Save(args[1], doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d components)\n", args[1], len(doc.Components))
			return nil
		},
	}
}
