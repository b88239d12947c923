/*
 * files.go, part of polygen.
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

package chem

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//XYZ family

//LoadMolecule reads the XYZ file path and returns the molecule in it.
//Files ending in .gz or .zst are decompressed on the fly.
//On error, no molecule is returned.
func LoadMolecule(path string) (*Molecule, error) {
	xyzfile, err := os.Open(path)
	if err != nil {
		e := newError(nil, "can't open file", "LoadMolecule")
		if errors.Is(err, fs.ErrNotExist) {
			e.kind = ErrFileNotFound
		}
		e.cause = err
		return nil, e.inFile(path, 0)
	}
	defer xyzfile.Close()
	r, err := decompressor(path, bufio.NewReader(xyzfile))
	if err != nil {
		e := newError(nil, "can't decompress file", "LoadMolecule")
		e.cause = err
		return nil, e.inFile(path, 0)
	}
	defer r.Close()
	mol, err := ReadXYZ(r, path)
	if err != nil {
		return nil, errDecorate(err, "LoadMolecule")
	}
	mol.Name = MoleculeName(path)
	return mol, nil
}

//decompressor picks a reader for the file based on its extension, in the
//same way the trajectory readers do.
func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case ".gz":
		return gzip.NewReader(r)
	default:
		return io.NopCloser(r), nil
	}
}

//MoleculeName returns the name of the file path without directories,
//compression extension or the .xyz extension.
func MoleculeName(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".gz", ".zst", ".zstd", ".xyz"} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
		}
	}
	return name
}

//ReadXYZ reads a molecule in XYZ format from r. name is only used
//in error messages. The first line must contain the number of atoms, N,
//the second is a comment, and the next N lines are the atom records.
//Blank lines at the end of the input are ignored. Each record contains
//one element symbol and 3 coordinates, in any order: tokens that
//parse as numbers are assigned to x, y and z, in that order.
func ReadXYZ(r io.Reader, name string) (*Molecule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		e := newError(nil, "can't read input", "ReadXYZ")
		e.cause = err
		return nil, e.inFile(name, 0)
	}
	lines := strings.Split(string(data), "\n")
	for i, v := range lines {
		lines[i] = strings.TrimSuffix(v, "\r")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, newError(ErrMalformedRecord, "empty file, expected the number of atoms", "ReadXYZ").inFile(name, 1)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || natoms < 0 {
		msg := fmt.Sprintf("expected the number of atoms, got %q", strings.TrimSpace(lines[0]))
		return nil, newError(ErrMalformedRecord, msg, "ReadXYZ").inFile(name, 1)
	}
	mol := NewMolecule(name, make([]*Atom, 0, natoms))
	if len(lines) > 1 {
		mol.Comment = strings.TrimSpace(lines[1])
	}
	var records []string
	if len(lines) > 2 {
		records = lines[2:]
	}
	if len(records) != natoms {
		msg := fmt.Sprintf("the header declares %d atoms, but there are %d atom records", natoms, len(records))
		return nil, newError(ErrAtomCountMismatch, msg, "ReadXYZ").inFile(name, 0)
	}
	for i, line := range records {
		at, err := parseXYZRecord(line)
		if err != nil {
			err.Decorate("ReadXYZ")
			return nil, err.inFile(name, i+3)
		}
		mol.Atoms = append(mol.Atoms, at)
	}
	return mol, nil
}

//parseXYZRecord classifies each field of line: fields that fail to parse
//as numbers are taken as the element symbol. This only works because
//no symbol in the vocabulary looks like a number.
func parseXYZRecord(line string) (*Atom, *CError) {
	fields := strings.Fields(line)
	coords := make([]float64, 0, 3)
	symbols := make([]string, 0, 1)
	for _, f := range fields {
		c, err := strconv.ParseFloat(f, 64)
		if err != nil {
			symbols = append(symbols, f)
			continue
		}
		coords = append(coords, c)
	}
	switch {
	case len(symbols) == 0:
		return nil, newError(ErrMalformedRecord, "no element symbol in record", "parseXYZRecord")
	case len(symbols) > 1:
		msg := fmt.Sprintf("%d non-numeric fields in record (%s), expected one element symbol", len(symbols), strings.Join(symbols, ", "))
		return nil, newError(ErrMalformedRecord, msg, "parseXYZRecord")
	case len(coords) != 3:
		msg := fmt.Sprintf("expected 3 coordinates in record, found %d", len(coords))
		return nil, newError(ErrMalformedRecord, msg, "parseXYZRecord")
	}
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, newError(ErrMalformedRecord, "non-finite coordinate in record", "parseXYZRecord")
		}
	}
	el, ok := ElementBySymbol(symbols[0])
	if !ok {
		return nil, newError(ErrUnknownElement, fmt.Sprintf("%q", symbols[0]), "parseXYZRecord")
	}
	at := &Atom{Element: el}
	at.Pos.X, at.Pos.Y, at.Pos.Z = coords[0], coords[1], coords[2]
	return at, nil
}

//WriteXYZ writes mol to out in XYZ format. The output can be read back with ReadXYZ.
func WriteXYZ(out io.Writer, mol *Molecule) error {
	w := bufio.NewWriter(out)
	comment := strings.ReplaceAll(mol.Comment, "\n", " ")
	if _, err := fmt.Fprintf(w, "%d\n%s\n", mol.Len(), comment); err != nil {
		return err
	}
	for _, at := range mol.Atoms {
		_, err := fmt.Fprintf(w, "%-2s %16.10f %16.10f %16.10f\n", at.Element.Symbol, at.Pos.X, at.Pos.Y, at.Pos.Z)
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

//SaveMolecule writes mol as an XYZ file with the name path. If the file exists it will be overwritten.
func SaveMolecule(path string, mol *Molecule) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteXYZ(out, mol); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
