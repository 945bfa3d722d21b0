// Package http wires a thin gin JSON front-end onto the sudoku package.
// The validate and solve handlers call straight through to ValidateRange,
// ValidateDuplicates or Solve; none of them re-implement any board logic
// of their own, demonstrating that those three functions are a
// sufficient surface for an external collaborator.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/math-hiyoko/sudoku-solver/internal/sudoku"
)

// NewRouter builds a gin engine with the validate and solve routes
// registered, bound to the given block dimension.
func NewRouter(dim int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", healthHandler)
	r.POST("/validate", validateHandler(dim))
	r.POST("/solve", solveHandler(dim))

	return r
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type boardRequest struct {
	Board sudoku.Board `json:"board" binding:"required"`
}

func validateHandler(dim int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req boardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"range_errors":     sudoku.ValidateRange(req.Board, dim),
			"duplicate_errors": sudoku.ValidateDuplicates(req.Board, dim),
		})
	}
}

type solveRequest struct {
	Board        sudoku.Board `json:"board" binding:"required"`
	MaxSolutions int          `json:"max_solutions"`
	JustOne      bool         `json:"just_one"`
}

func solveHandler(dim int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req solveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if violations := sudoku.ValidateRange(req.Board, dim); len(violations) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"range_errors": violations})
			return
		}
		if violations := sudoku.ValidateDuplicates(req.Board, dim); len(violations) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"duplicate_errors": violations})
			return
		}

		result := sudoku.Solve(req.Board, dim, req.MaxSolutions, req.JustOne)
		c.JSON(http.StatusOK, gin.H{
			"count":    result.Count,
			"is_exact": result.IsExact,
			"found":    result.Found,
			"solution": result.FirstSolution,
		})
	}
}
