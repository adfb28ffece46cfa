// Package http is a thin Gin demo façade over the reasoning core's library
// boundary (spec.md §6: Grid.fromRows, Grid.candidates, Grid.solve,
// Factory.generate). HTTP is explicitly out of the core's scope (spec.md
// §1's "out of scope... via §6 interfaces"); this package exists only to
// give the demo binary something to serve, mirroring the teacher's
// internal/transport/http package boundary and graceful-shutdown
// cmd/server/main.go without carrying over any of its session/JWT/
// human-technique machinery.
package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sudoku-core/internal/core"
	"sudoku-core/internal/sudoku"
	"sudoku-core/internal/sudoku/factory"
	"sudoku-core/pkg/config"
)

// RegisterRoutes wires the demo endpoints onto r using cfg's defaults.
func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	r.POST("/candidates", handleCandidates(cfg))
	r.POST("/solve", handleSolve(cfg))
	r.POST("/generate", handleGenerate(cfg))
}

type gridRequest struct {
	Rows [][]int `json:"rows" binding:"required"`
}

var layerNames = map[string]core.CandidateLayer{
	"NAKED_SINGLES_L0":      core.Layer0NakedSingle,
	"HIDDEN_SINGLES_L0":     core.Layer0HiddenSingle,
	"CONSENSUS_L1":          core.Layer1Consensus,
	"ZEROTH_LAYER_PLAIN":    core.Layer0Plain,
	"ZEROTH_LAYER_COMBINED": core.Layer0Combined,
	"NTH_LAYER":             core.LayerN,
}

// handleCandidates exposes Grid.candidates(layer) — spec.md §6 — as a whole
// grid enumeration; no single-position variant is exposed over HTTP.
func handleCandidates(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req gridRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		layerName := c.DefaultQuery("layer", "NAKED_SINGLES_L0")
		layer, ok := layerNames[layerName]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown layer: " + layerName})
			return
		}

		g, err := sudoku.FromRows(req.Rows)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"candidates": sudoku.AllCandidates(g, layer)})
	}
}

// handleSolve exposes Grid.solve(maxSolutions?) — spec.md §6.
func handleSolve(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req gridRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		maxSolutions := cfg.MaxSolutions
		if raw := c.Query("maxSolutions"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxSolutions"})
				return
			}
			maxSolutions = n
		}

		g, err := sudoku.FromRows(req.Rows)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		solutions, err := sudoku.Solve(g, maxSolutions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		rows := make([][][]int, len(solutions))
		for i, s := range solutions {
			rows[i] = s.Rows()
		}
		c.JSON(http.StatusOK, gin.H{"solutions": rows})
	}
}

type generateRequest struct {
	Side                int     `json:"side"`
	Layer               string  `json:"layer"`
	TargetCount         int     `json:"targetCount"`
	MaxAttempts         int     `json:"maxAttempts"`
	NakedSingleMinRatio float64 `json:"nakedSingleMinRatio"`
}

var factoryLayerNames = map[string]factory.Layer{
	"NAKED_SINGLES_L0":  factory.NakedSingleTarget,
	"HIDDEN_SINGLES_L0": factory.HiddenSingleTarget,
	"CONSENSUS_L1":      factory.ConsensusTarget,
}

// handleGenerate exposes Factory.generate(layer, targetCount, maxAttempts)
// — spec.md §6 — draining the result stream into a single JSON response
// (the demo binary has no streaming transport; the core's lazy sequence is
// fully materialized here, not inside the library).
func handleGenerate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		layer, ok := factoryLayerNames[req.Layer]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown layer: " + req.Layer})
			return
		}

		ratio := req.NakedSingleMinRatio
		if ratio <= 0 {
			ratio = cfg.NakedSingleMinRatio
		}

		f, err := factory.New(req.Side, cfg.MaxSolutions, cfg.WorkerCount, ratio)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		var grids [][][]int
		for r := range f.Generate(ctx, layer, req.TargetCount, req.MaxAttempts) {
			if !r.Found {
				continue
			}
			grids = append(grids, r.Grid.Rows())
			if len(grids) >= req.TargetCount {
				cancel()
				break
			}
		}

		c.JSON(http.StatusOK, gin.H{"grids": grids})
	}
}
