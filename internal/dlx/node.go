// Package dlx implements Knuth's Dancing Links representation of an exact
// cover problem: a toroidal quadruply-linked mesh of column headers and
// option cells, together with the Algorithm X search over it.
//
// The package knows nothing about Sudoku or any other specific exact cover
// reduction; callers build a Matrix by adding columns and options, then run
// Search over it.
package dlx

// Node is one cell of the mesh: the intersection of an option and a
// constraint column. Column headers embed Node too (see Column), so that a
// cell's Column field always resolves to a ring member and Cover/Uncover
// never need to special-case the header.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *Column
	OptionID              int
}

func unlinkHorizontal(n *Node) {
	n.Left.Right = n.Right
	n.Right.Left = n.Left
}

func relinkHorizontal(n *Node) {
	n.Left.Right = n
	n.Right.Left = n
}

func unlinkVertical(n *Node) {
	n.Up.Down = n.Down
	n.Down.Up = n.Up
}

func relinkVertical(n *Node) {
	n.Up.Down = n
	n.Down.Up = n
}

// appendRight splices n onto the horizontal ring anchored at sentinel,
// just before the sentinel, so ring members surface in insertion order
// when walked from sentinel.Right.
func appendRight(sentinel, n *Node) {
	n.Left = sentinel.Left
	n.Right = sentinel
	sentinel.Left.Right = n
	sentinel.Left = n
}

// appendDown is the vertical-ring mirror of appendRight.
func appendDown(sentinel, n *Node) {
	n.Up = sentinel.Up
	n.Down = sentinel
	sentinel.Up.Down = n
	sentinel.Up = n
}

// coverOption removes x's column and the column of every other cell on x's
// horizontal ring from the mesh, in ring order starting at x itself. This
// is the "choose x" primitive of Algorithm X (spec §4.E step 3).
func coverOption(x *Node) {
	x.Column.Cover()
	for z := x.Right; z != x; z = z.Right {
		z.Column.Cover()
	}
}

// uncoverOption is the exact mirror of coverOption, restoring columns in
// reverse order so that cover/uncover compose as a LIFO stack.
func uncoverOption(x *Node) {
	for z := x.Left; z != x; z = z.Left {
		z.Column.Uncover()
	}
	x.Column.Uncover()
}
