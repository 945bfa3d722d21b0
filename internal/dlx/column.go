package dlx

// Column is a constraint column header. It embeds Node so it can sit on the
// root's horizontal ring and be addressed through an ordinary Column
// pointer from every cell beneath it in the mesh.
type Column struct {
	Node
	Size int
	Name string
}

// newColumn returns a column header with an empty vertical ring (its own
// Up/Down point back to itself). The caller splices it onto the root's
// horizontal ring with appendRight.
func newColumn(name string) *Column {
	c := &Column{Name: name}
	c.Up = &c.Node
	c.Down = &c.Node
	c.Column = c
	return c
}

// Cover removes c from the root's horizontal ring and removes every row
// that has a cell in c, decrementing the size of every column those rows
// touch (spec §4.B).
func (c *Column) Cover() {
	unlinkHorizontal(&c.Node)
	for i := c.Down; i != &c.Node; i = i.Down {
		for j := i.Right; j != i; j = j.Right {
			unlinkVertical(j)
			j.Column.Size--
		}
	}
}

// Uncover is the exact mirror of Cover, restoring rows in the reverse
// order they were removed. Callers must uncover a sequence of covered
// columns in LIFO order; doing otherwise leaves the mesh inconsistent
// (spec §4.B contract).
func (c *Column) Uncover() {
	for i := c.Up; i != &c.Node; i = i.Up {
		for j := i.Left; j != i; j = j.Left {
			j.Column.Size++
			relinkVertical(j)
		}
	}
	relinkHorizontal(&c.Node)
}
