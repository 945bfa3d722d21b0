package sudoku

import (
	"sort"

	"github.com/math-hiyoko/sudoku-solver/internal/set"
)

// Violation is a single offending cell reported by the validator: cell
// (Row, Col) holds Value in conflict with the rule being checked.
type Violation struct {
	Row, Col, Value int
}

// ValidateRange reports every cell whose value falls outside [0, side],
// 0 meaning empty, walking every (row, col) in [0, side) rather than only
// the rows/cols actually present in board. This is the first of the two
// independent checks a board must pass before it is safe to reduce to an
// exact cover matrix: a board posted with too few rows or a ragged row
// is caught here, as an out-of-range violation on every cell that isn't
// actually there, instead of surfacing later as an index panic.
func ValidateRange(board Board, dim int) []Violation {
	side := dim * dim
	var violations []Violation
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			val, ok := cellAt(board, r, c)
			if !ok || val < 0 || val > side {
				violations = append(violations, Violation{Row: r, Col: c, Value: val})
			}
		}
	}
	return violations
}

// cellAt reads board[r][c], reporting ok = false instead of panicking
// when the board has fewer rows, or a shorter row, than (r, c) requires.
func cellAt(board Board, r, c int) (int, bool) {
	if r < 0 || r >= len(board) {
		return 0, false
	}
	row := board[r]
	if c < 0 || c >= len(row) {
		return 0, false
	}
	return row[c], true
}

// ValidateDuplicates reports every cell that repeats a digit already
// placed elsewhere in its row, column or block. Values already flagged
// by ValidateRange are skipped, since a duplicate check on an
// out-of-range value isn't meaningful. The result is cell-keyed: each
// offending cell appears once, in row-major order, rather than grouped
// by which constraint it violates.
func ValidateDuplicates(board Board, dim int) []Violation {
	side := dim * dim
	flagged := make(map[[2]int]int)

	flagDuplicates := func(cells [][2]int) {
		seen := set.NewSet[int]()
		for _, cell := range cells {
			r, c := cell[0], cell[1]
			val, ok := cellAt(board, r, c)
			if !ok || val <= 0 || val > side {
				continue
			}
			if seen.Insert(val) {
				flagged[cell] = val
			}
		}
	}

	for r := 0; r < side; r++ {
		cells := make([][2]int, side)
		for c := 0; c < side; c++ {
			cells[c] = [2]int{r, c}
		}
		flagDuplicates(cells)
	}
	for c := 0; c < side; c++ {
		cells := make([][2]int, side)
		for r := 0; r < side; r++ {
			cells[r] = [2]int{r, c}
		}
		flagDuplicates(cells)
	}
	for blk := 0; blk < side; blk++ {
		br, bc := (blk/dim)*dim, (blk%dim)*dim
		cells := make([][2]int, 0, side)
		for dr := 0; dr < dim; dr++ {
			for dc := 0; dc < dim; dc++ {
				cells = append(cells, [2]int{br + dr, bc + dc})
			}
		}
		flagDuplicates(cells)
	}

	violations := make([]Violation, 0, len(flagged))
	for cell, val := range flagged {
		violations = append(violations, Violation{Row: cell[0], Col: cell[1], Value: val})
	}
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].Row != violations[j].Row {
			return violations[i].Row < violations[j].Row
		}
		return violations[i].Col < violations[j].Col
	})
	return violations
}
