/*
 * main.go, part of polygen.
 *
 * Copyright 2026 The polygen authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//polygen loads a monomer fragment, infers its bonds and renders the part
//of it that lies within a distance of the origin, as seen from a viewing
//direction. It can also list and check the monomer library.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	chem "github.com/polygen/polygen"
	"github.com/polygen/polygen/catalog"
	"github.com/polygen/polygen/chemgraph"
	"github.com/polygen/polygen/chemplot"
	"github.com/polygen/polygen/config"
	"github.com/polygen/polygen/histo"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("polygen failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	config      string
	cutoff      string
	phi, theta  float64
	factor      float64
	png         string
	json        string
	export      string
	list        string
	check       bool
	limit       int
	writeConfig string
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	o := new(options)
	fs := flag.NewFlagSet("polygen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	fs.StringVar(&o.cutoff, "cutoff", "", "render distance from the origin, in Angstrom, or \"inf\"")
	fs.Float64Var(&o.phi, "phi", 0, "azimuthal viewing angle, in degrees [-180, 180]")
	fs.Float64Var(&o.theta, "theta", 90, "polar viewing angle, in degrees [0, 180]")
	fs.Float64Var(&o.factor, "factor", chem.DefaultBondFactor, "bond tolerance factor")
	fs.StringVar(&o.png, "png", "", "write a picture of the rendered atoms to this file (png, svg, pdf)")
	fs.StringVar(&o.json, "json", "", "write the rendered atoms and bonds as JSON to this file (- for stdout)")
	fs.StringVar(&o.export, "export", "", "write the loaded molecule as XYZ to this file")
	fs.StringVar(&o.list, "list", "", "list the monomers of a category (Diacids, Diols, AminoAcids or all)")
	fs.BoolVar(&o.check, "check", false, "load every monomer in the library and report it")
	fs.IntVar(&o.limit, "j", 4, "monomers loaded at the same time by -check")
	fs.StringVar(&o.writeConfig, "write-config", "", "write the effective configuration to this file and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: polygen [flags] file.xyz\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return o, fs, nil
}

//effective applies the flags given in the command line on top of the configuration.
func effective(o *options, fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(o.config)
	if err != nil {
		return nil, err
	}
	var ferr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cutoff":
			c, err := parseCutoff(o.cutoff)
			if err != nil {
				ferr = err
			}
			cfg.Render.Distance = c
		case "phi":
			cfg.Render.Phi = o.phi
		case "theta":
			cfg.Render.Theta = o.theta
		case "factor":
			cfg.BondFactor = o.factor
		case "png":
			cfg.Output.PNG = o.png
		case "json":
			cfg.Output.JSON = o.json
		}
	})
	if ferr != nil {
		return nil, ferr
	}
	return cfg, cfg.Validate()
}

func parseCutoff(s string) (float64, error) {
	if strings.EqualFold(s, "none") {
		return math.Inf(1), nil
	}
	c, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cutoff %q: %w", s, err)
	}
	return c, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	o, fs, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := effective(o, fs)
	if err != nil {
		return err
	}
	switch {
	case o.writeConfig != "":
		if err := config.Save(o.writeConfig, cfg); err != nil {
			return err
		}
		slog.Info("configuration written", "path", o.writeConfig)
		return nil
	case o.list != "":
		return list(stdout, cfg, o.list)
	case o.check:
		return check(ctx, stdout, cfg, o.limit)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one XYZ file, got %d arguments", fs.NArg())
	}
	return show(stdout, cfg, fs.Arg(0), o.export)
}

func list(out io.Writer, cfg *config.Config, category string) error {
	cat := catalog.New(cfg.MonomerDir)
	var entries []catalog.Entry
	var err error
	if strings.EqualFold(category, "all") {
		entries, err = cat.All()
	} else {
		var c catalog.Category
		if c, err = catalog.ParseCategory(category); err != nil {
			return err
		}
		entries, err = cat.List(c)
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%-10s %s\n", e.Category, e.Name)
	}
	return nil
}

func check(ctx context.Context, out io.Writer, cfg *config.Config, limit int) error {
	reports, err := catalog.New(cfg.MonomerDir).Check(ctx, limit, cfg.BondFactor)
	if err != nil {
		return err
	}
	for _, r := range reports {
		fmt.Fprintln(out, r)
		if r.Fragments != 1 {
			slog.Warn("monomer is not a single fragment", "monomer", r.Name, "fragments", r.Fragments)
		}
	}
	slog.Info("library checked", "dir", cfg.MonomerDir, "monomers", len(reports))
	return nil
}

func show(out io.Writer, cfg *config.Config, path, export string) error {
	viewer := chem.NewViewer()
	if err := cfg.Apply(viewer); err != nil {
		return err
	}
	if err := viewer.Load(path); err != nil {
		return err
	}
	mol, _ := viewer.Molecule()
	bonds := viewer.Bonds()
	slog.Info("molecule loaded", "name", mol.Name, "atoms", mol.Len(), "bonds", bonds.Len())
	set, err := viewer.Render()
	if err != nil {
		return err
	}
	top := chemgraph.New(mol, bonds)
	fmt.Fprintf(out, "%s: %s\n", mol.Name, mol.Comment)
	fmt.Fprintf(out, "atoms: %d bonds: %d fragments: %d\n", mol.Len(), bonds.Len(), len(top.Fragments()))
	fmt.Fprintf(out, "rendered within %v A: %d atoms, %d bonds\n", set.Cutoff, set.Len(), set.Bonds.Len())
	fmt.Fprintln(out, histo.Report(mol, bonds))
	if export != "" {
		if err := chem.SaveMolecule(export, mol); err != nil {
			return err
		}
		slog.Info("molecule exported", "path", export)
	}
	if cfg.Output.JSON != "" {
		if err := writeJSON(out, cfg.Output.JSON, set); err != nil {
			return err
		}
	}
	if cfg.Output.PNG != "" {
		phi, theta := viewer.Angles()
		p, err := chemplot.Plot(set, chemplot.View{Phi: phi, Theta: theta}, mol.Name)
		if err != nil {
			return err
		}
		if err := chemplot.Save(p, cfg.Output.WidthCm, cfg.Output.PNG); err != nil {
			return err
		}
		slog.Info("picture written", "path", cfg.Output.PNG)
	}
	return nil
}

func writeJSON(stdout io.Writer, path string, set *chem.RenderSet) error {
	if path == "-" {
		return set.Send(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := set.Send(f); err != nil {
		f.Close()
		return err
	}
	slog.Info("render set written", "path", path)
	return f.Close()
}
