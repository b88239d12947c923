package histo

import (
	"fmt"
	"math"
	"sort"
	"strings"

	chem "github.com/polygen/polygen"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//BondLengths returns a histogram of the lengths of bonds, with the given dividers.
func BondLengths(bonds chem.Bonds, dividers []float64) *Data {
	return NewData(dividers, bonds.Lengths())
}

//PairKey returns the name of the kind of bond between the atoms with the given
//symbols, with the symbols sorted, so C-H and H-C are the same.
func PairKey(s1, s2 string) string {
	if s2 < s1 {
		s1, s2 = s2, s1
	}
	return s1 + "-" + s2
}

//BondPairs returns one bond-length histogram for each kind of bond
//in bonds, keyed by PairKey. All histograms have the same dividers.
//The IDs of the histograms follow the alphabetical order of their keys.
func BondPairs(mol chem.Atomer, bonds chem.Bonds, dividers []float64) map[string]*Data {
	lengths, keys := byPair(mol, bonds)
	ret := make(map[string]*Data, len(keys))
	for i, k := range keys {
		ret[k] = NewData(dividers, lengths[k], i)
	}
	return ret
}

//byPair groups the bond lengths by kind of bond. keys are sorted.
func byPair(mol chem.Atomer, bonds chem.Bonds) (map[string][]float64, []string) {
	lengths := make(map[string][]float64)
	for _, b := range bonds {
		k := PairKey(mol.Atom(b.At1).Symbol(), mol.Atom(b.At2).Symbol())
		lengths[k] = append(lengths[k], b.Dist)
	}
	keys := make([]string, 0, len(lengths))
	for k := range lengths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return lengths, keys
}

//Summary holds simple statistics for a set of values.
type Summary struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

//Summarize returns the statistics for values. For no values, all
//the fields but N are NaN. For one value, StdDev is 0.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Max: nan, Mean: nan, StdDev: nan}
	}
	s := Summary{N: len(values), Min: floats.Min(values), Max: floats.Max(values)}
	if len(values) == 1 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	return s
}

func (S Summary) String() string {
	return fmt.Sprintf("n: %d min: %.4f max: %.4f mean: %.4f stddev: %.4f", S.N, S.Min, S.Max, S.Mean, S.StdDev)
}

//Report returns a table with the summary of the lengths of each kind of bond, one per line.
func Report(mol chem.Atomer, bonds chem.Bonds) string {
	lengths, keys := byPair(mol, bonds)
	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, fmt.Sprintf("%-5s %s", "all", Summarize(bonds.Lengths())))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%-5s %s", k, Summarize(lengths[k])))
	}
	return strings.Join(lines, "\n")
}
