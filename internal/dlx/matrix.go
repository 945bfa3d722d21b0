package dlx

// Matrix is the toroidal mesh built by a caller-supplied reduction: a root
// sentinel linking every constraint column still uncovered, plus the
// option cells threaded through them. Builders construct a Matrix
// column-by-column and then option-by-option; Search only ever touches
// Root afterward.
type Matrix struct {
	Root *Column
}

// NewMatrix allocates an empty root sentinel with no columns yet. The root
// is its own Column, per the design note that a header's Column field
// points to itself so cover/uncover never need a separate root type.
func NewMatrix() *Matrix {
	root := &Column{Name: "root"}
	root.Left = &root.Node
	root.Right = &root.Node
	root.Column = root
	return &Matrix{Root: root}
}

// AddColumn appends a new, empty constraint column to the root's ring, so
// columns surface in the order they were added (spec invariant I5).
func (m *Matrix) AddColumn(name string) *Column {
	c := newColumn(name)
	appendRight(&m.Root.Node, &c.Node)
	return c
}

// AddOption links a new option, identified by optionID, into the given
// columns: one cell per column, threaded into a closed horizontal ring
// (spec invariant I4) and appended to the bottom of each column's vertical
// ring.
func (m *Matrix) AddOption(optionID int, columns ...*Column) {
	cells := make([]*Node, len(columns))
	for i, col := range columns {
		n := &Node{Column: col, OptionID: optionID}
		appendDown(&col.Node, n)
		col.Size++
		cells[i] = n
	}
	for i, n := range cells {
		n.Left = cells[(i-1+len(cells))%len(cells)]
		n.Right = cells[(i+1)%len(cells)]
	}
}

// IsEmpty reports whether every column has been covered: a full exact
// cover has been witnessed by whatever options led here (spec §4.C).
func (m *Matrix) IsEmpty() bool {
	return m.Root.Right == &m.Root.Node
}

// SelectMinSizeColumn returns the uncovered column with the fewest
// remaining cells, breaking ties by root-ring order and short-circuiting
// as soon as a zero-size column is found (spec §4.C). Callers must only
// invoke this when !IsEmpty().
func (m *Matrix) SelectMinSizeColumn() *Column {
	var chosen *Column
	minSize := -1
	for n := m.Root.Right; n != &m.Root.Node; n = n.Right {
		col := n.Column
		if minSize == -1 || col.Size < minSize {
			chosen, minSize = col, col.Size
			if minSize == 0 {
				break
			}
		}
	}
	return chosen
}

// Stats summarizes the shape of the mesh as it currently stands, for
// diagnostics (columns, options, total cells, matrix density).
type Stats struct {
	Columns    int
	Options    int
	TotalCells int
	Density    float64
}

// Stats walks the current (possibly already-covered) mesh and reports its
// shape. Intended for demo/debug output, never consulted by Search.
func (m *Matrix) Stats() Stats {
	var s Stats
	seenOptions := make(map[int]bool)
	for n := m.Root.Right; n != &m.Root.Node; n = n.Right {
		col := n.Column
		s.Columns++
		for i := col.Down; i != &col.Node; i = i.Down {
			s.TotalCells++
			seenOptions[i.OptionID] = true
		}
	}
	s.Options = len(seenOptions)
	if s.Columns > 0 && s.Options > 0 {
		s.Density = float64(s.TotalCells) / float64(s.Columns*s.Options) * 100.0
	}
	return s
}
