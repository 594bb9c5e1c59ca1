package onesum

import "github.com/katalvlaran/unimod/matrix"

// unlabeled marks a node not yet reached by the search.
const unlabeled = -1

// incidenceGraph is the bipartite row/column graph of a matrix's support.
// Nodes [0, numRows) are rows, [numRows, numNodes) are columns; the
// neighbors of node v are adjacency[adjacencyStart[v]:adjacencyStart[v+1]].
type incidenceGraph struct {
	numRows        int
	numNodes       int
	adjacencyStart []int // len numNodes+1
	adjacency      []int // len 2*edges
}

// newIncidenceGraph builds the graph with one edge per entry whose value is
// non-zero.
//
// Implementation:
//   - Stage 1: count the degree of every node.
//   - Stage 2: prefix-sum the degrees into adjacencyStart.
//   - Stage 3: fill; each endpoint writes at adjacencyStart[v+1]-degree[v]
//     and decrements degree[v], so every node's slots fill front to back in
//     entry order and all degrees end at zero.
//
// Complexity: Time O(rows + cols + nnz), Space O(rows + cols + nnz).
func newIncidenceGraph[T matrix.Value](m *matrix.Sparse[T]) *incidenceGraph {
	numNodes := m.NumRows + m.NumColumns
	g := &incidenceGraph{
		numRows:        m.NumRows,
		numNodes:       numNodes,
		adjacencyStart: make([]int, numNodes+1),
	}
	degree := make([]int, numNodes)

	// Stage 1: degrees.
	for row := 0; row < m.NumRows; row++ {
		begin, end := m.RowRange(row)
		for e := begin; e < end; e++ {
			if m.EntryValue[e] != 0 {
				degree[row]++
				degree[m.NumRows+m.EntryColumn[e]]++
			}
		}
	}

	// Stage 2: ranges.
	for v := 0; v < numNodes; v++ {
		g.adjacencyStart[v+1] = g.adjacencyStart[v] + degree[v]
	}
	g.adjacency = make([]int, g.adjacencyStart[numNodes])

	// Stage 3: fill.
	for row := 0; row < m.NumRows; row++ {
		begin, end := m.RowRange(row)
		for e := begin; e < end; e++ {
			if m.EntryValue[e] == 0 {
				continue
			}
			columnNode := m.NumRows + m.EntryColumn[e]
			g.adjacency[g.adjacencyStart[row+1]-degree[row]] = columnNode
			degree[row]--
			g.adjacency[g.adjacencyStart[columnNode+1]-degree[columnNode]] = row
			degree[columnNode]--
		}
	}

	return g
}

// neighbors returns the adjacency slice of node v.
func (g *incidenceGraph) neighbors(v int) []int {
	return g.adjacency[g.adjacencyStart[v]:g.adjacencyStart[v+1]]
}

// degree returns the number of non-zero entries incident to node v.
func (g *incidenceGraph) degree(v int) int {
	return g.adjacencyStart[v+1] - g.adjacencyStart[v]
}

// isRow reports whether node v stands for a row.
func (g *incidenceGraph) isRow(v int) bool { return v < g.numRows }

// labeling assigns every node a component and a local index.
type labeling struct {
	numComponents int
	component     []int // per node: component id
	order         []int // per node: local row/column index inside its component

	// per component tallies
	rows     []int
	columns  []int
	nonzeros []int
}

// label finds connected components by iterative depth-first search.
//
// Seeds are taken in increasing node id. A newly reached node receives the
// current component id and the next sequence number of its kind (row or
// column), starting at 0 in each component. The explicit stack holds each
// node at most once, so numNodes slots suffice.
//
// Complexity: Time O(nodes + edges), Space O(nodes).
func (g *incidenceGraph) label() *labeling {
	lab := &labeling{
		component: make([]int, g.numNodes),
		order:     make([]int, g.numNodes),
	}
	for v := range lab.component {
		lab.component[v] = unlabeled
	}
	stack := make([]int, g.numNodes)

	for seed := 0; seed < g.numNodes; seed++ {
		if lab.component[seed] != unlabeled {
			continue
		}
		id := lab.numComponents
		nextRow, nextColumn := 0, 0
		visit := func(v int) {
			lab.component[v] = id
			if g.isRow(v) {
				lab.order[v] = nextRow
				nextRow++
			} else {
				lab.order[v] = nextColumn
				nextColumn++
			}
		}

		visit(seed)
		stack[0] = seed
		top := 1
		for top > 0 {
			top--
			v := stack[top]
			for _, w := range g.neighbors(v) {
				if lab.component[w] == unlabeled {
					visit(w)
					stack[top] = w
					top++
				}
			}
		}
		lab.numComponents++
	}

	lab.tally(g)

	return lab
}

// tally counts rows, columns and nonzeros per component. Nonzeros are
// counted once, from the row endpoint of each edge.
func (lab *labeling) tally(g *incidenceGraph) {
	lab.rows = make([]int, lab.numComponents)
	lab.columns = make([]int, lab.numComponents)
	lab.nonzeros = make([]int, lab.numComponents)
	for v := 0; v < g.numNodes; v++ {
		c := lab.component[v]
		if g.isRow(v) {
			lab.rows[c]++
			lab.nonzeros[c] += g.degree(v)
		} else {
			lab.columns[c]++
		}
	}
}

// renumberByOriginal replaces discovery numbers by ascending original index
// within each component and kind.
func (lab *labeling) renumberByOriginal(g *incidenceGraph) {
	nextRow := make([]int, lab.numComponents)
	nextColumn := make([]int, lab.numComponents)
	for v := 0; v < g.numNodes; v++ {
		c := lab.component[v]
		if g.isRow(v) {
			lab.order[v] = nextRow[c]
			nextRow[c]++
		} else {
			lab.order[v] = nextColumn[c]
			nextColumn[c]++
		}
	}
}
