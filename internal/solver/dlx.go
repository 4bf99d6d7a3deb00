package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for Sudoku.
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v
// candidates). Columns:
//
//	0..80    -> cell (r,c) filled
//	81..161  -> row r has number v
//	162..242 -> col c has number v
//	243..323 -> box b has number v, b = (r/3)*3 + (c/3)
//
// The links are flat index slices rather than pointer nodes; node 0 is
// the root, nodes 1..324 are column heads, row nodes follow.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	gridSize   = 9
	gridCells  = gridSize * gridSize // 81
	dlxCols    = 4 * gridCells       // 324
	dlxRows    = gridCells * gridSize
	dlxHeaders = dlxCols + 1 // root + column heads
)

type dlxMatrix struct {
	left, right, up, down []int
	head                  []int // row node -> its column head
	rowID                 []int // row node -> 0..728 candidate id
	count                 []int // column head -> active nodes in column
	sol                   []int
	nodes                 int
}

func candidateID(r, c, v int) int {
	return (r*gridSize+c)*gridSize + (v - 1)
}

func decodeCandidate(id int) (r, c int, v uint8) {
	cell := id / gridSize
	return cell / gridSize, cell % gridSize, uint8(id%gridSize) + 1
}

func candidateColumns(r, c, v int) [4]int {
	box := (r/3)*3 + c/3
	return [4]int{
		r*gridSize + c,
		gridCells + r*gridSize + (v - 1),
		2*gridCells + c*gridSize + (v - 1),
		3*gridCells + box*gridSize + (v - 1),
	}
}

func newMatrix() *dlxMatrix {
	n := dlxHeaders + dlxRows*4
	m := &dlxMatrix{
		left:  make([]int, n),
		right: make([]int, n),
		up:    make([]int, n),
		down:  make([]int, n),
		head:  make([]int, n),
		rowID: make([]int, n),
		count: make([]int, dlxHeaders),
		sol:   make([]int, 0, gridCells),
	}
	// root and heads form the horizontal header ring
	for i := 0; i < dlxHeaders; i++ {
		m.right[i] = (i + 1) % dlxHeaders
		m.left[i] = (i + dlxCols) % dlxHeaders
		m.up[i] = i
		m.down[i] = i
	}
	next := dlxHeaders
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			for v := 1; v <= gridSize; v++ {
				id := candidateID(r, c, v)
				first := -1
				for _, col := range candidateColumns(r, c, v) {
					h := col + 1
					nd := next
					next++
					// append at the bottom of the column
					m.up[nd] = m.up[h]
					m.down[nd] = h
					m.down[m.up[h]] = nd
					m.up[h] = nd
					m.head[nd] = h
					m.rowID[nd] = id
					m.count[h]++
					// 4-node horizontal ring for the candidate
					if first < 0 {
						first = nd
						m.left[nd] = nd
						m.right[nd] = nd
					} else {
						m.left[nd] = m.left[first]
						m.right[nd] = first
						m.right[m.left[first]] = nd
						m.left[first] = nd
					}
				}
			}
		}
	}
	return m
}

func (m *dlxMatrix) cover(h int) {
	m.right[m.left[h]] = m.right[h]
	m.left[m.right[h]] = m.left[h]
	for i := m.down[h]; i != h; i = m.down[i] {
		for j := m.right[i]; j != i; j = m.right[j] {
			m.down[m.up[j]] = m.down[j]
			m.up[m.down[j]] = m.up[j]
			m.count[m.head[j]]--
		}
	}
}

func (m *dlxMatrix) uncover(h int) {
	for i := m.up[h]; i != h; i = m.up[i] {
		for j := m.left[i]; j != i; j = m.left[j] {
			m.count[m.head[j]]++
			m.down[m.up[j]] = j
			m.up[m.down[j]] = j
		}
	}
	m.right[m.left[h]] = h
	m.left[m.right[h]] = h
}

// chooseColumn picks the uncovered column with the fewest candidates.
func (m *dlxMatrix) chooseColumn() int {
	best, bestCount := -1, int(^uint(0)>>1)
	for h := m.right[0]; h != 0; h = m.right[h] {
		if m.count[h] < bestCount {
			best, bestCount = h, m.count[h]
			if bestCount == 0 {
				break
			}
		}
	}
	return best
}

// applyGiven selects the candidate row for a fixed cell by covering its
// columns. Givens must already be mutually consistent.
func (m *dlxMatrix) applyGiven(r, c int, v uint8) {
	for _, col := range candidateColumns(r, c, int(v)) {
		m.cover(col + 1)
	}
}

// search explores selections until found reaches limit. Returns true to
// stop unwinding; when it stops on a full solution, m.sol holds the
// chosen candidate rows.
func (m *dlxMatrix) search(ctx context.Context, limit int, found *int) bool {
	if ctx.Err() != nil {
		return true
	}
	if m.right[0] == 0 {
		*found++
		return *found >= limit
	}
	h := m.chooseColumn()
	if h < 0 || m.count[h] == 0 {
		return false
	}
	m.cover(h)
	for i := m.down[h]; i != h; i = m.down[i] {
		m.nodes++
		m.sol = append(m.sol, m.rowID[i])
		for j := m.right[i]; j != i; j = m.right[j] {
			m.cover(m.head[j])
		}
		stop := m.search(ctx, limit, found)
		for j := m.left[i]; j != i; j = m.left[j] {
			m.uncover(m.head[j])
		}
		if stop {
			m.uncover(h)
			return true
		}
		m.sol = m.sol[:len(m.sol)-1]
	}
	m.uncover(h)
	return false
}

func (m *dlxMatrix) loadGivens(grid *[9][9]uint8) bool {
	if !givensConsistent(grid) {
		return false
	}
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			if v := grid[r][c]; v != 0 {
				m.applyGiven(r, c, v)
			}
		}
	}
	return true
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	m := newMatrix()
	if !m.loadGivens(&grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}
	found := 0
	m.search(ctx, 1, &found)
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if found < 1 {
		return nil, st, ErrUnsolvable
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	for _, id := range m.sol {
		r, c, v := decodeCandidate(id)
		out.Values[r][c] = v
	}
	return out, st, nil
}

func (s *DLXSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit <= 0 {
		limit = DefaultCountLimit
	}
	grid := b.Values
	m := newMatrix()
	if !m.loadGivens(&grid) {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	found := 0
	m.search(ctx, limit, &found)
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return found, st, err
	}
	return found, st, nil
}
