/*
 * catalog.go, part of polygen.
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

//Package catalog lists the monomer fragments available to build a polymer.
//Monomers are XYZ files kept in one directory per category under a root
//directory. A file name uses underscores where the monomer name has spaces,
//so "Ethylene_glycol.xyz" is shown as "Ethylene glycol".
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/polygen/polygen"
	"github.com/polygen/polygen/chemgraph"
	"golang.org/x/sync/errgroup"
)

//Category is a kind of monomer. Its value is the name of its directory.
type Category string

const (
	Diacids    Category = "Diacids"
	Diols      Category = "Diols"
	AminoAcids Category = "AminoAcids"
)

//ErrUnknownCategory is returned for a category not in Categories.
var ErrUnknownCategory = errors.New("unknown monomer category")

//Categories returns all the monomer categories, in the order they are offered to the user.
func Categories() []Category {
	return []Category{Diacids, Diols, AminoAcids}
}

//ParseCategory returns the category with the given name, ignoring case.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("polygen/catalog: %w: %q", ErrUnknownCategory, name)
}

//Entry is a monomer file.
type Entry struct {
	Category Category
	Name     string //display name
	Path     string
}

//Catalog is a monomer library rooted at a directory.
type Catalog struct {
	Root string
}

//New returns a catalog for the library in root.
func New(root string) *Catalog {
	return &Catalog{Root: root}
}

//isMonomerFile returns true for the file names that hold monomers.
func isMonomerFile(name string) bool {
	l := strings.ToLower(name)
	for _, ext := range []string{".xyz", ".xyz.gz", ".xyz.zst", ".xyz.zstd"} {
		if strings.HasSuffix(l, ext) && len(l) > len(ext) {
			return true
		}
	}
	return false
}

//DisplayName returns the name shown for the monomer file fname.
func DisplayName(fname string) string {
	return strings.ReplaceAll(chem.MoleculeName(fname), "_", " ")
}

//FileName returns the name of the uncompressed XYZ file for a displayed monomer name.
func FileName(display string) string {
	return strings.ReplaceAll(display, " ", "_") + ".xyz"
}

//List returns the monomers of a category, sorted by file name. Files that
//are not monomers are ignored.
func (C *Catalog) List(cat Category) ([]Entry, error) {
	if _, err := ParseCategory(string(cat)); err != nil {
		return nil, err
	}
	dir := filepath.Join(C.Root, string(cat))
	files, err := os.ReadDir(dir) //sorted by file name
	if err != nil {
		return nil, fmt.Errorf("polygen/catalog: can't list %s: %w", cat, err)
	}
	ret := make([]Entry, 0, len(files))
	for _, f := range files {
		if !isMonomerFile(f.Name()) {
			continue
		}
		if f.IsDir() {
			log.Printf("polygen/catalog: skipping directory %s in %s", f.Name(), dir)
			continue
		}
		ret = append(ret, Entry{Category: cat, Name: DisplayName(f.Name()), Path: filepath.Join(dir, f.Name())})
	}
	return ret, nil
}

//All returns the monomers of every category. A missing category directory is
//logged and skipped.
func (C *Catalog) All() ([]Entry, error) {
	ret := make([]Entry, 0)
	for _, c := range Categories() {
		e, err := C.List(c)
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("polygen/catalog: no %s in %s", c, C.Root)
			continue
		}
		if err != nil {
			return nil, err
		}
		ret = append(ret, e...)
	}
	return ret, nil
}

//Find returns the monomer of category cat with the display name name.
func (C *Catalog) Find(cat Category, name string) (Entry, error) {
	entries, err := C.List(cat)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("polygen/catalog: no monomer %q in %s: %w", name, cat, os.ErrNotExist)
}

//Load reads the molecule of the entry.
func (E Entry) Load() (*chem.Molecule, error) {
	return chem.LoadMolecule(E.Path)
}

//Report holds the result of loading a monomer.
type Report struct {
	Entry
	Atoms     int
	Bonds     int
	Fragments int
}

func (R Report) String() string {
	return fmt.Sprintf("%-10s %-20s atoms: %3d bonds: %3d fragments: %d", R.Category, R.Name, R.Atoms, R.Bonds, R.Fragments)
}

//Check loads every monomer in the catalog, with at most limit loads at the same time,
//and infers its bonds with factor. A limit smaller than 1 means no limit.
//It returns a report per monomer, in catalog order, or the first error found.
//A monomer split in more than one fragment is reported, but it is not an error.
func (C *Catalog) Check(ctx context.Context, limit int, factor float64) ([]Report, error) {
	entries, err := C.All()
	if err != nil {
		return nil, err
	}
	reports := make([]Report, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mol, err := e.Load()
			if err != nil {
				return fmt.Errorf("polygen/catalog: %s %q: %w", e.Category, e.Name, err)
			}
			bonds := chem.InferBondsFactor(mol, factor)
			top := chemgraph.New(mol, bonds)
			reports[i] = Report{Entry: e, Atoms: mol.Len(), Bonds: bonds.Len(), Fragments: len(top.Fragments())}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
