/*
 * atomicdata.go, part of polygen.
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
	"image/color"
	"sort"
	"strings"
)

//Element holds the fixed data for a chemical element known to polygen.
//Radius is the display radius in Angstrom. It is also the radius used
//to infer bonds.
type Element struct {
	Symbol string
	Name   string
	Radius float64
	Color  color.RGBA
}

//The vocabulary is closed: only the elements that appear in the
//monomer fragments are present. "X" is the placeholder element.
//Keys are lowercase symbols.
var elements = map[string]*Element{
	"c": {Symbol: "C", Name: "carbon", Radius: 0.732, Color: color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}},
	"h": {Symbol: "H", Name: "hydrogen", Radius: 0.315, Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	"o": {Symbol: "O", Name: "oxygen", Radius: 0.660, Color: color.RGBA{R: 0xff, G: 0x0d, B: 0x0d, A: 0xff}},
	"n": {Symbol: "N", Name: "nitrogen", Radius: 0.710, Color: color.RGBA{R: 0x30, G: 0x50, B: 0xf8, A: 0xff}},
	"x": {Symbol: "X", Name: "none", Radius: 0.100, Color: color.RGBA{R: 0xff, G: 0x14, B: 0x93, A: 0xff}},
}

//ElementBySymbol returns the element with the given symbol. The comparison
//is case-insensitive. The second value is false if the symbol is not
//in the vocabulary.
func ElementBySymbol(symbol string) (*Element, bool) {
	e, ok := elements[strings.ToLower(symbol)]
	return e, ok
}

//Elements returns all the known elements, sorted by symbol.
func Elements() []*Element {
	ret := make([]*Element, 0, len(elements))
	for _, v := range elements {
		ret = append(ret, v)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Symbol < ret[j].Symbol })
	return ret
}

//Is returns true if symbol names the element E, ignoring case.
func (E *Element) Is(symbol string) bool {
	return strings.EqualFold(E.Symbol, symbol)
}

func (E *Element) String() string {
	return E.Symbol
}
