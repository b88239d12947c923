/*
 * json.go, part of polygen.
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
	"encoding/json"
	"fmt"
	"io"
	"math"
)

//JSONAtom is a ready-to-serialize container for a rendered atom.
type JSONAtom struct {
	Index  int        `json:"index"`
	Symbol string     `json:"symbol"`
	Coords [3]float64 `json:"coords"`
	Radius float64    `json:"radius"`
	Color  string     `json:"color"`
}

//JSONBond is a ready-to-serialize container for a rendered bond.
type JSONBond struct {
	At1    int     `json:"at1"`
	At2    int     `json:"at2"`
	Length float64 `json:"length"`
}

type jsonRenderSet struct {
	Cutoff *float64   `json:"cutoff"` //null means no cutoff, as JSON has no infinity.
	Atoms  []JSONAtom `json:"atoms"`
	Bonds  []JSONBond `json:"bonds"`
}

//MarshalJSON implements json.Marshaler.
func (R *RenderSet) MarshalJSON() ([]byte, error) {
	out := jsonRenderSet{Atoms: make([]JSONAtom, len(R.Atoms)), Bonds: make([]JSONBond, len(R.Bonds))}
	if !math.IsInf(R.Cutoff, 1) {
		c := R.Cutoff
		out.Cutoff = &c
	}
	for i, at := range R.Atoms {
		c := at.Element.Color
		out.Atoms[i] = JSONAtom{
			Index:  R.Indices[i],
			Symbol: at.Element.Symbol,
			Coords: [3]float64{at.Pos.X, at.Pos.Y, at.Pos.Z},
			Radius: at.Element.Radius,
			Color:  fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		}
	}
	for i, b := range R.Bonds {
		out.Bonds[i] = JSONBond{At1: b.At1, At2: b.At2, Length: b.Dist}
	}
	return json.Marshal(out)
}

//Send encodes the set as JSON and writes it to out.
func (R *RenderSet) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(R); err != nil {
		return fmt.Errorf("polygen: can't encode render set: %w", err)
	}
	return nil
}
