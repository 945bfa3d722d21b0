package sudoku

import "github.com/math-hiyoko/sudoku-solver/internal/dlx"

// Result is the outcome of a Solve call: how many completions of the
// board were found (bounded by maxSolutions), whether that count is
// exact, and the first completion found.
type Result struct {
	Count         int
	IsExact       bool
	FirstSolution Board
	Found         bool
}

// Solve reduces board to an exact cover matrix and runs Algorithm X over
// it, reporting up to maxSolutions completions (maxSolutions <= 0 means
// unbounded) and stopping at the first when justOne is set. Callers are
// expected to have already run ValidateRange and ValidateDuplicates;
// Solve does not report their violations, and an invalid board simply
// yields an exact count of zero solutions rather than an error.
func Solve(board Board, dim int, maxSolutions int, justOne bool) Result {
	if len(ValidateRange(board, dim)) > 0 {
		return Result{IsExact: true}
	}
	m := buildMatrix(board, dim)
	searchResult := dlx.Search(m, maxSolutions, justOne)

	result := Result{
		Count:   searchResult.Count,
		IsExact: searchResult.IsExact,
		Found:   searchResult.Found,
	}
	if searchResult.Found {
		result.FirstSolution = decodeSolution(board, dim, searchResult.FirstSolution)
	}
	return result
}
