/*
 * catalog_test.go, part of polygen.
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

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/polygen/polygen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const library = "../XYZ"

func TestNames(t *testing.T) {
	assert.Equal(t, "Ethylene glycol", DisplayName("Ethylene_glycol.xyz"))
	assert.Equal(t, "Succinic acid", DisplayName("dir/Succinic_acid.xyz.zst"))
	assert.Equal(t, "Ethylene_glycol.xyz", FileName("Ethylene glycol"))
	assert.True(t, isMonomerFile("Glycine.xyz"))
	assert.True(t, isMonomerFile("Glycine.XYZ.gz"))
	assert.False(t, isMonomerFile(".xyz"))
	assert.False(t, isMonomerFile("README.md"))
	c, err := ParseCategory("aminoacids")
	require.NoError(t, err)
	assert.Equal(t, AminoAcids, c)
	_, err = ParseCategory("Polyesters")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestList(t *testing.T) {
	cat := New(library)
	aa, err := cat.List(AminoAcids)
	require.NoError(t, err)
	require.Len(t, aa, 2)
	assert.Equal(t, "Alanine", aa[0].Name)
	assert.Equal(t, "Glycine", aa[1].Name)
	assert.Equal(t, filepath.Join(library, "AminoAcids", "Glycine.xyz"), aa[1].Path)

	diacids, err := cat.List(Diacids)
	require.NoError(t, err)
	assert.Equal(t, []string{"Oxalic acid", "Succinic acid"}, []string{diacids[0].Name, diacids[1].Name})

	all, err := cat.All()
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, Diacids, all[0].Category)
	assert.Equal(t, AminoAcids, all[4].Category)

	_, err = cat.List("Polyesters")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestFind(t *testing.T) {
	cat := New(library)
	e, err := cat.Find(Diols, "Ethylene glycol")
	require.NoError(t, err)
	mol, err := e.Load()
	require.NoError(t, err)
	assert.Equal(t, 10, mol.Len())
	_, err = cat.Find(Diols, "Glycerol")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck(t *testing.T) {
	reports, err := New(library).Check(context.Background(), 2, chem.DefaultBondFactor)
	require.NoError(t, err)
	require.Len(t, reports, 5)
	for _, r := range reports {
		assert.Equal(t, 1, r.Fragments, "%s should be a single fragment", r.Name)
		assert.Equal(t, r.Atoms-1, r.Bonds, "%s", r.Name)
	}
	assert.Equal(t, "Oxalic acid", reports[0].Name)
	assert.Equal(t, 8, reports[0].Atoms)
}

//Check fails on a broken monomer, and a missing category is skipped.
func TestCheckBroken(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, string(Diols))
	require.NoError(t, os.Mkdir(dir, 0755))
	good, err := os.ReadFile(filepath.Join(library, "Diols", "Ethylene_glycol.xyz"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Ethylene_glycol.xyz"), good, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a monomer"), 0644))

	reports, err := New(root).Check(context.Background(), 0, chem.DefaultBondFactor)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.xyz"), []byte("3\n\nC 0 0 0\n"), 0644))
	_, err = New(root).Check(context.Background(), 1, chem.DefaultBondFactor)
	assert.ErrorIs(t, err, chem.ErrAtomCountMismatch)
}

func TestCheckCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(library).Check(ctx, 1, chem.DefaultBondFactor)
	assert.ErrorIs(t, err, context.Canceled)
}
