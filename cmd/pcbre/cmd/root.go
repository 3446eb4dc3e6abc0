// Package cmd implements the pcbre command-line tool.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pcb-reveng/internal/document"
	"pcb-reveng/internal/library"
	"pcb-reveng/internal/prefs"
	"pcb-reveng/internal/version"
	"pcb-reveng/pkg/geometry"
)

// env is the state shared by every subcommand once the root has run.
type env struct {
	prefsPath string
	verbose   bool

	prefs *prefs.Prefs
	lib   *library.Library
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "pcbre",
		Short: "pcbre - two-terminal component footprints and project documents",
		Long: `pcbre derives pad geometry for two-terminal (passive) components and
reads and writes project documents.

Examples:
  pcbre presets                                     # List footprint presets
  pcbre footprint --preset 0805                     # Show pads and bounds
  pcbre doc new board.pcbj                          # Create an empty project
  pcbre doc add board.pcbj --preset 0805 --at 1000,2000 --theta 90
  pcbre doc show board.pcbj
  pcbre doc convert board.pcbj board.pcbm           # JSON -> msgpack`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd.Flags().Changed("verbose"))
		},
	}
	root.PersistentFlags().StringVar(&e.prefsPath, "prefs", prefs.DefaultPath(), "preferences file")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newPresetsCmd(e))
	root.AddCommand(newFootprintCmd(e))
	root.AddCommand(newDocCmd(e))
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads preferences and the preset library. The verbose preference
// applies unless --verbose was given explicitly.
func (e *env) setup(verboseFlagSet bool) error {
	e.prefs = prefs.LoadFrom(e.prefsPath)
	if !verboseFlagSet {
		e.verbose = e.prefs.Bool(prefs.KeyVerbose, e.verbose)
	}
	if e.verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	e.lib = library.Default()

	if path := e.prefs.String(prefs.KeyLibraryPath); path != "" {
		extra, err := library.LoadFile(path)
		if err != nil {
			return fmt.Errorf("preset library: %w", err)
		}
		e.lib.Merge(extra)
	}
	return nil
}

// defaultEncoding is used when a file name carries no known extension.
func (e *env) defaultEncoding() document.Encoding {
	enc, err := document.ParseEncoding(e.prefs.StringWithFallback(prefs.KeyDocumentEncoding, "json"))
	if err != nil {
		log.Printf("[Prefs] %v, using json", err)
		return document.EncodingJSON
	}
	return enc
}

// withExtension appends the default encoding's extension when path has none.
func (e *env) withExtension(path string) string {
	if _, err := document.EncodingForPath(path); err == nil {
		return path
	}
	if e.defaultEncoding() == document.EncodingMsgpack {
		return path + document.ExtMsgpack
	}
	return path + document.ExtJSON
}

func parsePoint(s string) (geometry.Point2D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Point2D{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geometry.Point2D{X: x, Y: y}, nil
}
