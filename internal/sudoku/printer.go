package sudoku

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	cellWidth = 3
	edgeMinor = "│"
	edgeMajor = "║"
)

// borderSpec describes one horizontal divider line: the left and right
// end characters, and the characters used between cells at a dim
// boundary ("major") versus elsewhere ("minor").
type borderSpec struct {
	left, right, minor, major rune
}

var (
	borderTop    = borderSpec{'┌', '┐', '┬', '╥'}
	borderBottom = borderSpec{'└', '┘', '┴', '╨'}
	dividerMinor = borderSpec{'├', '┤', '┼', '╫'}
	dividerMajor = borderSpec{'╞', '╡', '╪', '╬'}
)

var (
	givenValueColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	solvedValueColor = color.New(color.Bold, color.FgHiWhite)
	emptyValueColor  = color.New(color.FgHiBlack)
)

// Print renders b to stdout with box-drawing borders sized to dim. givens
// marks which cells were part of the original puzzle rather than filled
// in by the solver, so they can be colored differently; pass nil to
// render every filled cell in the solved-value color.
func (b Board) Print(dim int, givens Board) {
	side := b.Side()
	color.HiWhite(horizontalBorder(dim, side, borderTop))
	for r, row := range b {
		if r != 0 {
			if r%dim == 0 {
				color.HiWhite(horizontalBorder(dim, side, dividerMajor))
			} else {
				color.HiWhite(horizontalBorder(dim, side, dividerMinor))
			}
		}
		var givenRow []int
		if givens != nil {
			givenRow = givens[r]
		}
		printRow(row, givenRow, dim)
	}
	color.HiWhite(horizontalBorder(dim, side, borderBottom))
}

func printRow(row, givenRow []int, dim int) {
	for c, val := range row {
		if c != 0 && c%dim == 0 {
			fmt.Print(color.HiWhiteString(edgeMajor))
		} else {
			fmt.Print(color.HiWhiteString(edgeMinor))
		}
		isGiven := givenRow != nil && givenRow[c] != 0
		printCell(val, isGiven)
	}
	color.HiWhite(edgeMinor)
}

func printCell(val int, isGiven bool) {
	pad := strings.Repeat(" ", (cellWidth-1)/2)
	switch {
	case val == 0:
		emptyValueColor.Printf("%s.%s", pad, pad)
	case isGiven:
		givenValueColor.Printf("%s%c%s", pad, encodeDigit(val), pad)
	default:
		solvedValueColor.Printf("%s%c%s", pad, encodeDigit(val), pad)
	}
}

// horizontalBorder draws one divider line: side cellWidth-wide segments,
// separated by spec.major at each dim boundary and spec.minor elsewhere,
// capped with spec.left and spec.right.
func horizontalBorder(dim, side int, spec borderSpec) string {
	var sb strings.Builder
	sb.WriteRune(spec.left)
	for c := 0; c < side; c++ {
		sb.WriteString(strings.Repeat("─", cellWidth))
		if c == side-1 {
			break
		}
		if (c+1)%dim == 0 {
			sb.WriteRune(spec.major)
		} else {
			sb.WriteRune(spec.minor)
		}
	}
	sb.WriteRune(spec.right)
	return sb.String()
}
