package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"sudoku-core/internal/sudoku/factory"
)

// PuzzleRecord is one accepted Factory attempt, serialized as its row-major
// grid (spec.md §6: "a Grid is serialized as its row-major list of lists of
// integers") plus the layer it was generated for and how many cells were
// removed to reach it (the RemovedCells supplement from SPEC_FULL.md §4).
type PuzzleRecord struct {
	Layer        string  `json:"layer"`
	Rows         [][]int `json:"rows"`
	RemovedCells int     `json:"removedCells"`
}

// PuzzleFile is the top-level structure for the output JSON file.
type PuzzleFile struct {
	Version int            `json:"version"`
	Side    int            `json:"side"`
	Count   int            `json:"count"`
	Puzzles []PuzzleRecord `json:"puzzles"`
}

var layerFlagValues = map[string]factory.Layer{
	"naked":     factory.NakedSingleTarget,
	"hidden":    factory.HiddenSingleTarget,
	"consensus": factory.ConsensusTarget,
}

func main() {
	side := flag.Int("side", 9, "Grid side (4 or 9)")
	layerName := flag.String("layer", "naked", "Target layer: naked, hidden, consensus")
	count := flag.Int("n", 1000, "Number of accepted puzzles to generate")
	maxAttempts := flag.Int("attempts", 50, "Maximum attempts per accepted puzzle")
	workers := flag.Int("w", 0, "Number of worker goroutines (default: hardware parallelism)")
	ratio := flag.Float64("ratio", 0.25, "NakedSingleTarget minimum removed-cell ratio")
	maxSolutions := flag.Int("pool", 16, "Solved-grid pool size")
	output := flag.String("o", "puzzles.json", "Output file path")
	flag.Parse()

	layer, ok := layerFlagValues[*layerName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown layer %q: want naked, hidden, or consensus\n", *layerName)
		os.Exit(1)
	}

	fmt.Printf("Building solved-grid pool (side=%d, pool=%d)...\n", *side, *maxSolutions)
	f, err := factory.New(*side, *maxSolutions, *workers, *ratio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error constructing factory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generating %d puzzles for layer %q...\n", *count, *layerName)
	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var accepted int64
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a := atomic.LoadInt64(&accepted)
				elapsed := time.Since(start)
				rate := float64(a) / elapsed.Seconds()
				fmt.Printf("  Progress: %d/%d (%.1f/sec)\n", a, *count, rate)
			case <-done:
				return
			}
		}
	}()

	var puzzles []PuzzleRecord
	for r := range f.Generate(ctx, layer, *count, *maxAttempts) {
		if !r.Found {
			continue
		}
		puzzles = append(puzzles, PuzzleRecord{
			Layer:        layer.String(),
			Rows:         r.Grid.Rows(),
			RemovedCells: r.RemovedCells,
		})
		atomic.AddInt64(&accepted, 1)
		if len(puzzles) >= *count {
			cancel()
			break
		}
	}
	close(done)

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f puzzles/sec)\n", len(puzzles), elapsed, float64(len(puzzles))/elapsed.Seconds())

	file := PuzzleFile{
		Version: 1,
		Side:    *side,
		Count:   len(puzzles),
		Puzzles: puzzles,
	}

	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Printf("Done! File size: %.2f MB\n", sizeMB)
}
