package chemgraph

import (
	"fmt"
	"math"
	"sort"

	chem "github.com/polygen/polygen"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a graph node. Its ID is the index of the atom in the molecule.
type Atom struct {
	*chem.Atom
	Index int
}

func (A *Atom) ID() int64 {
	return int64(A.Index)
}

// Bond is a weighted graph edge. The weight is the bond length.
type Bond struct {
	chem.Bond
	At1, At2 *Atom
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

func (B *Bond) Weight() float64 {
	return B.Dist
}

// Bonds are not directional, so the reversed edge is the same bond
// seen from the other side. The receiver is not modified.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1}
}

// Topology is the bond graph of a molecule. It implements gonum's
// graph.WeightedUndirected through the embedded graph.
type Topology struct {
	*simple.WeightedUndirectedGraph
	atoms []*Atom
}

// New builds the bond graph for mol. Every atom is a node, even if it has no bonds.
// Panics if a bond refers to an atom that is not in mol.
func New(mol chem.Atomer, bonds chem.Bonds) *Topology {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	ats := make([]*Atom, mol.Len())
	for i := range ats {
		ats[i] = &Atom{Atom: mol.Atom(i), Index: i}
		g.AddNode(ats[i])
	}
	for i, b := range bonds {
		if b.At1 < 0 || b.At2 >= len(ats) || b.At1 == b.At2 {
			panic(fmt.Sprintf("chemgraph.New: Bond %d (%v) has at least one non-existent atom", i, b))
		}
		g.SetWeightedEdge(&Bond{Bond: b, At1: ats[b.At1], At2: ats[b.At2]})
	}
	return &Topology{WeightedUndirectedGraph: g, atoms: ats}
}

// Len returns the number of atoms in the graph.
func (T *Topology) Len() int {
	return len(T.atoms)
}

// Degree returns the number of bonds of atom i.
func (T *Topology) Degree(i int) int {
	return T.From(int64(i)).Len()
}

// Neighbors returns the indexes of the atoms bonded to atom i, in increasing order.
func (T *Topology) Neighbors(i int) []int {
	return sortedIDs(graph.NodesOf(T.From(int64(i))))
}

// Fragments returns the connected components of the molecule, as sets of
// atom indexes. Each fragment is sorted, and fragments are sorted by their first atom.
func (T *Topology) Fragments() [][]int {
	cc := topo.ConnectedComponents(T.WeightedUndirectedGraph)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ret = append(ret, sortedIDs(c))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// Path returns the atoms in the shortest bond path between atoms i and j, both
// included, and its length in Angstrom, measured along the bonds. If the atoms
// are not connected, or either is not in the topology, it returns nil and +Inf.
func (T *Topology) Path(i, j int) ([]int, float64) {
	if T.Node(int64(i)) == nil || T.Node(int64(j)) == nil {
		return nil, math.Inf(1)
	}
	sh := path.DijkstraFrom(T.Node(int64(i)), T.WeightedUndirectedGraph)
	nodes, length := sh.To(int64(j))
	if len(nodes) == 0 {
		return nil, math.Inf(1)
	}
	ret := make([]int, len(nodes))
	for k, n := range nodes {
		ret[k] = int(n.ID())
	}
	return ret, length
}

func sortedIDs(nodes []graph.Node) []int {
	ret := make([]int, len(nodes))
	for i, n := range nodes {
		ret[i] = int(n.ID())
	}
	sort.Ints(ret)
	return ret
}
