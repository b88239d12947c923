package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. The bins are defined by the dividers: bin i
//holds the values v with dividers[i] <= v < dividers[i+1]. Values
//outside the dividers are counted in the total, but not in any bin.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

type jsonData struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("polygen/histo: %d dividers can't hold %d bins", len(a.Dividers), len(a.Histo))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
//If an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1. Panics if there are less than 2 dividers or they are not sorted.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("polygen/histo.NewData: at least 2 sorted dividers are needed")
	}
	d := new(Data)
	//a copy, so nobody changes it from outside
	d.dividers = append([]float64(nil), dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//Dividers returns a copy of the dividers of the histogram.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		//the index of the first divider larger than v, so v is in the bin before.
		i := sort.Search(len(D.dividers), func(i int) bool { return D.dividers[i] > v })
		if i == 0 || i > last {
			continue
		}
		D.histo[i-1]++
	}
	D.total += len(point)
	//if it was normalized, we return it to that state
	if norma {
		D.Normalize()
	}
}

//Total returns the number of data points added to the histogram,
//including those that fell outside the bins.
func (D *Data) Total() int {
	return D.total
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize divides each bin by the total number of data points.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize goes back to counts.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

//View returns the bins of the histogram. Changes in the returned slice
//are reflected in the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

//Sum returns the sum of all the bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the contents of the histogram with the histogram of rawdata.
//rawdata is not modified.
func (D *Data) ReHisto(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	D.total = len(data)
	//stat.Histogram panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:maxi]
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
	D.normalized = false
}
