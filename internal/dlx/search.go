package dlx

// Result is what a Search run reports back to a caller-supplied reduction:
// how many solutions were witnessed, whether that count is exact (the
// search exhausted every branch rather than stopping early), and the
// first solution found, as the option IDs chosen to produce it.
type Result struct {
	Count         int
	IsExact       bool
	FirstSolution []int
	Found         bool
}

// frame is one level of the explicit search stack: the column chosen at
// that depth, and the cell within it currently covered.
type frame struct {
	column *Column
	cell   *Node
}

// Search runs Algorithm X over m to exhaustion, or until it has collected
// maxSolutions solutions (maxSolutions <= 0 means unbounded), optionally
// stopping at the very first solution when justOne is set. It never
// recurses: a branch stack (one frame per search depth) stands in for the
// call stack and its locals, so search depth is bounded only by available
// memory rather than Go's goroutine stack (spec §4.E).
//
// IsExact reports whether the search ran to exhaustion: it is true when
// the whole tree was explored, and false whenever Search stopped at the
// justOne or maxSolutions cutoff with at least one option chosen, even if
// no untried branch was left at that point. An empty matrix reports true,
// since its single solution needs no choice.
func Search(m *Matrix, maxSolutions int, justOne bool) Result {
	var branch []frame
	var result Result

	choose := func(col *Column, cell *Node) {
		coverOption(cell)
		branch = append(branch, frame{column: col, cell: cell})
	}

	// backtrack undoes frames from the top of branch until it finds one
	// whose column has another untried cell, which it then chooses. It
	// reports false if the whole tree has been exhausted.
	backtrack := func() bool {
		for len(branch) > 0 {
			top := branch[len(branch)-1]
			branch = branch[:len(branch)-1]
			uncoverOption(top.cell)

			next := top.cell.Down
			if next != &top.column.Node {
				choose(top.column, next)
				return true
			}
		}
		return false
	}

	for {
		if m.IsEmpty() {
			result.Count++
			if !result.Found {
				result.Found = true
				result.FirstSolution = currentSolution(branch)
			}
			if justOne || (maxSolutions > 0 && result.Count >= maxSolutions) {
				result.IsExact = len(branch) == 0
				return result
			}
			if !backtrack() {
				result.IsExact = true
				return result
			}
			continue
		}

		col := m.SelectMinSizeColumn()
		if col.Size == 0 {
			if !backtrack() {
				result.IsExact = true
				return result
			}
			continue
		}

		choose(col, col.Down)
	}
}

func currentSolution(branch []frame) []int {
	ids := make([]int, len(branch))
	for i, f := range branch {
		ids[i] = f.cell.OptionID
	}
	return ids
}
