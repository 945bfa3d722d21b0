package sudoku

import (
	"strings"
	"testing"
)

func parseRows(t *testing.T, rows ...string) Board {
	t.Helper()
	b, err := ReadBoard(strings.NewReader(strings.Join(rows, "\n")), dimFor(rows))
	if err != nil {
		t.Fatalf("ReadBoard: %v", err)
	}
	return b
}

func dimFor(rows []string) int {
	switch len(rows[0]) {
	case 4:
		return 2
	case 16:
		return 4
	default:
		return 3
	}
}

// uniquely solvable 9x9 puzzle (a well-known easy example).
var nineByNine = []string{
	"530070000",
	"600195000",
	"098000060",
	"800060003",
	"400803001",
	"700020006",
	"060000280",
	"000419005",
	"000080079",
}

func TestSolveNineByNineUnique(t *testing.T) {
	board := parseRows(t, nineByNine...)
	result := Solve(board, 3, 2, false)

	if !result.Found {
		t.Fatalf("expected a solution")
	}
	if result.Count != 1 || !result.IsExact {
		t.Fatalf("expected exactly one exact solution, got count=%d exact=%v", result.Count, result.IsExact)
	}
	for r, row := range board {
		for c, given := range row {
			if given != 0 && result.FirstSolution[r][c] != given {
				t.Fatalf("solution disagrees with given at (%d,%d)", r, c)
			}
		}
	}
	if len(ValidateDuplicates(result.FirstSolution, 3)) != 0 {
		t.Fatalf("completed solution has duplicate violations")
	}
}

func TestSolveFourByFour(t *testing.T) {
	rows := []string{
		"1000",
		"0010",
		"0100",
		"0001",
	}
	board := parseRows(t, rows...)
	result := Solve(board, 2, 0, false)

	if !result.Found {
		t.Fatalf("expected at least one solution for a 4x4 board")
	}
	if !result.IsExact {
		t.Fatalf("unbounded search must report an exact count")
	}
	if len(ValidateDuplicates(result.FirstSolution, 2)) != 0 {
		t.Fatalf("completed 4x4 solution has duplicate violations")
	}
}

func TestSolveMultipleSolutionsBounded(t *testing.T) {
	// An empty 4x4 board has many completions; bound the count.
	board, err := NewBoard(2)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	result := Solve(board, 2, 3, false)

	if result.Count != 3 {
		t.Fatalf("expected exactly 3 solutions under the bound, got %d", result.Count)
	}
	if result.IsExact {
		t.Fatalf("a bounded count on a board with more completions must be inexact")
	}
}

func TestSolveUnsolvableBoard(t *testing.T) {
	rows := []string{
		"1100",
		"0000",
		"0000",
		"0000",
	}
	board := parseRows(t, rows...)
	result := Solve(board, 2, 0, false)

	if result.Found {
		t.Fatalf("expected no solution for a board with an immediate row conflict")
	}
	if result.Count != 0 || !result.IsExact {
		t.Fatalf("expected an exact zero count, got count=%d exact=%v", result.Count, result.IsExact)
	}
}

func TestValidateRangeFlagsOutOfBounds(t *testing.T) {
	board, err := NewBoard(2)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	board[0][0] = 5
	board[1][1] = -1

	violations := ValidateRange(board, 2)
	if len(violations) != 2 {
		t.Fatalf("expected 2 range violations, got %d: %v", len(violations), violations)
	}
}

func TestValidateDuplicatesRow(t *testing.T) {
	board, err := NewBoard(2)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	board[0][0] = 1
	board[0][2] = 1

	violations := ValidateDuplicates(board, 2)
	if len(violations) != 1 {
		t.Fatalf("expected 1 duplicate violation, got %d: %v", len(violations), violations)
	}
	if violations[0].Row != 0 || violations[0].Col != 2 || violations[0].Value != 1 {
		t.Fatalf("unexpected violation: %+v", violations[0])
	}
}

func TestValidateDuplicatesBlock(t *testing.T) {
	board, err := NewBoard(2)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	board[0][0] = 3
	board[1][1] = 3

	violations := ValidateDuplicates(board, 2)
	if len(violations) != 1 {
		t.Fatalf("expected 1 duplicate violation from the shared block, got %d: %v", len(violations), violations)
	}
}

func TestValidateDuplicatesSkipsOutOfRangeValues(t *testing.T) {
	board, err := NewBoard(2)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	board[0][0] = 9 // out of range for dim=2, ignored by the duplicate check
	board[0][1] = 9

	violations := ValidateDuplicates(board, 2)
	if len(violations) != 0 {
		t.Fatalf("expected range-invalid values to be skipped by the duplicate check, got %v", violations)
	}
}

func TestValidateRangeFlagsShortBoardInsteadOfPanicking(t *testing.T) {
	// Two rows missing entirely, and the second present row one cell short:
	// exactly the ragged/too-small shape a POST body can carry.
	board := Board{
		{1, 0, 0, 0},
		{0, 1, 0},
	}

	violations := ValidateRange(board, 2)
	if len(violations) == 0 {
		t.Fatalf("expected a too-small board to be flagged, got no violations")
	}
}

func TestValidateDuplicatesDoesNotPanicOnShortBoard(t *testing.T) {
	board := Board{
		{1, 0},
	}

	// Must not panic despite board having fewer rows/cols than side=4.
	_ = ValidateDuplicates(board, 2)
}

func TestReadBoardRoundTrip(t *testing.T) {
	board := parseRows(t, nineByNine...)
	for i, row := range nineByNine {
		for j, ch := range row {
			want, _ := decodeChar(byte(ch))
			if ch == '0' {
				want = 0
			}
			if board[i][j] != want {
				t.Fatalf("cell (%d,%d): got %d, want %d", i, j, board[i][j], want)
			}
		}
	}
}

func TestReadBoardRejectsShortInput(t *testing.T) {
	_, err := ReadBoard(strings.NewReader("123\n456\n789\n"), 2)
	if err == nil {
		t.Fatalf("expected an error for input shorter than the declared side")
	}
}

// BenchmarkSolve measures the cost of reducing nineByNine to an exact
// cover matrix and running Algorithm X to its first solution. board is
// parsed once; Solve never mutates its input, so it is safe to reuse
// across iterations.
func BenchmarkSolve(b *testing.B) {
	board, err := ReadBoard(strings.NewReader(strings.Join(nineByNine, "\n")), 3)
	if err != nil {
		b.Fatalf("ReadBoard: %v", err)
	}
	for b.Loop() {
		Solve(board, 3, 1, true)
	}
}

func TestOptionIDRoundTrip(t *testing.T) {
	side := 9
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			for d := 1; d <= side; d++ {
				id := optionID(r, c, d, side)
				gr, gc, gd := decodeOption(id, side)
				if gr != r || gc != c || gd != d {
					t.Fatalf("round trip mismatch for (%d,%d,%d): got (%d,%d,%d)", r, c, d, gr, gc, gd)
				}
			}
		}
	}
}
