package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/math-hiyoko/sudoku-solver/internal/config"
	"github.com/math-hiyoko/sudoku-solver/internal/sudoku"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("configuration error", err.Error())
	}
	side := cfg.Dim * cfg.Dim

	if isStdinTTY() {
		fmt.Printf("Enter initial board as %d lines of %d characters.\n", side, side)
		fmt.Println("Use '0' or any non-alphanumeric character for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	board, err := sudoku.ReadBoard(os.Stdin, cfg.Dim)
	if err != nil {
		fatal("error reading board", err.Error())
	}

	if violations := sudoku.ValidateRange(board, cfg.Dim); len(violations) > 0 {
		fatal("invalid board", fmt.Sprintf("%d cell(s) out of range", len(violations)))
	}
	if violations := sudoku.ValidateDuplicates(board, cfg.Dim); len(violations) > 0 {
		fatal("invalid board", fmt.Sprintf("%d duplicate digit(s)", len(violations)))
	}

	result := sudoku.Solve(board, cfg.Dim, 1, true)

	if result.Found {
		color.HiWhite("\nSolution:")
		result.FirstSolution.Print(cfg.Dim, board)
	} else {
		color.HiWhite("\nNo solution.")
		board.Print(cfg.Dim, board)
	}
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func fatal(msgs ...string) {
	msg := msgs[0]
	for _, m := range msgs[1:] {
		msg += ": " + m
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
