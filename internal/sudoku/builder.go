package sudoku

import (
	"strconv"

	"github.com/math-hiyoko/sudoku-solver/internal/dlx"
)

// buildMatrix reduces board to an exact cover instance: four constraint
// families (occupied, row, column, block), each with side*side columns,
// and one option per (row, col, digit) triple that is not already
// impossible given the board's pre-filled cells.
//
// An option is omitted outright, rather than added and immediately
// covered, when its digit collides with a given in the same row, column
// or block — the only pruning this reduction performs (the mechanical
// removal of options forbidden by pre-filled cells; no further
// constraint propagation runs before search).
func buildMatrix(board Board, dim int) *dlx.Matrix {
	side := dim * dim
	m := dlx.NewMatrix()

	columns := make(map[int]*dlx.Column, int(constraintFamilyCount)*side*side)
	addColumn := func(tag constraintTag, key1, key2 int) {
		id := constraintColumnID(tag, key1, key2, side)
		columns[id] = m.AddColumn(columnName(tag, key1, key2))
	}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			addColumn(constraintOccupied, r, c)
		}
	}
	for r := 0; r < side; r++ {
		for d := 0; d < side; d++ {
			addColumn(constraintRow, r, d)
		}
	}
	for c := 0; c < side; c++ {
		for d := 0; d < side; d++ {
			addColumn(constraintColumn, c, d)
		}
	}
	for blk := 0; blk < side; blk++ {
		for d := 0; d < side; d++ {
			addColumn(constraintBlock, blk, d)
		}
	}

	forbidden := forbiddenDigits(board, dim)

	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			digits := []int{board[r][c]}
			if !board.Given(r, c) {
				digits = digits[:0]
				for d := 1; d <= side; d++ {
					if !forbidden[r][c][d] {
						digits = append(digits, d)
					}
				}
			}
			for _, d := range digits {
				blk := blockIndex(r, c, dim)
				m.AddOption(optionID(r, c, d, side),
					columns[constraintColumnID(constraintOccupied, r, c, side)],
					columns[constraintColumnID(constraintRow, r, d-1, side)],
					columns[constraintColumnID(constraintColumn, c, d-1, side)],
					columns[constraintColumnID(constraintBlock, blk, d-1, side)],
				)
			}
		}
	}

	return m
}

// forbiddenDigits reports, for every empty cell, which digits already
// appear as a given in that cell's row, column or block.
func forbiddenDigits(board Board, dim int) [][]map[int]bool {
	side := dim * dim
	forbidden := make([][]map[int]bool, side)
	for r := range forbidden {
		forbidden[r] = make([]map[int]bool, side)
		for c := range forbidden[r] {
			forbidden[r][c] = make(map[int]bool)
		}
	}

	mark := func(r, c, d int) {
		forbidden[r][c][d] = true
	}

	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if !board.Given(r, c) {
				continue
			}
			d := board[r][c]
			for k := 0; k < side; k++ {
				if k != c && !board.Given(r, k) {
					mark(r, k, d)
				}
				if k != r && !board.Given(k, c) {
					mark(k, c, d)
				}
			}
			br, bc := (r/dim)*dim, (c/dim)*dim
			for dr := 0; dr < dim; dr++ {
				for dc := 0; dc < dim; dc++ {
					rr, cc := br+dr, bc+dc
					if (rr != r || cc != c) && !board.Given(rr, cc) {
						mark(rr, cc, d)
					}
				}
			}
		}
	}
	return forbidden
}

func columnName(tag constraintTag, key1, key2 int) string {
	labels := [...]string{"occupied", "row", "col", "block"}
	label := "constraint"
	if int(tag) < len(labels) {
		label = labels[tag]
	}
	return label + "-" + strconv.Itoa(key1) + "-" + strconv.Itoa(key2)
}
