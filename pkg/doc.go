// Package pkg provides the core libraries of ventriglisse, an ice-sliding
// maze solver.
//
// # Overview
//
// A ventriglisse maze is a grid of cells with walls. The player slides: a
// move continues in one direction until the next cell would be blocked by a
// wall. Mazes arrive as images; the answer is the shortest sequence of
// slides from the start cell to the end cell, written as letters.
//
// The typical data flow:
//
//	PNG image
//	     ↓
//	[maze] (classify cells, build the grid)
//	     ↓
//	[slide] (build the slide graph, breadth-first search)
//	     ↓
//	[moves] (encode the path as letters)
//	     ↓
//	"NSEN"
//
// # Quick Start
//
//	img, _ := pipeline.Decode(pngBytes)
//	res, err := pipeline.Solve(img, pipeline.Options{})
//	fmt.Println(res.Moves)
//
// Or stage by stage:
//
//	grid, _ := maze.Build(maze.NewImageSampler(img), maze.DefaultLayout)
//	g := slide.Build(grid)
//	path, _ := slide.Solve(g)
//	fmt.Println(moves.Encode(path, moves.DefaultAlphabet))
//
// # Main Packages
//
// ## Core
//
// [maze] - Cell classification from pixel probes, grid building, the text
// fixture format and a renderer that draws grids back into images.
//
// [slide] - The slide graph (cell nodes plus start and end sentinels) and
// the shortest path search.
//
// [moves] - Direction letters and the move string encoder.
//
// ## Orchestration
//
// [pipeline] - Decode, solve, cache and render. Used by the CLI, the HTTP API
// and remote sessions so they all solve the same way.
//
// [session] - The remote game protocol: banner, base64 maze frames, answers.
//
// ## Infrastructure
//
// [cache] - Solve cache with file, Redis and null backends.
//
// [diagnostics] - Storage for failed mazes (files or MongoDB).
//
// [config] - TOML configuration with .env and environment overrides.
//
// [observability] - Hooks for metrics and tracing.
//
// [errors] - Error codes and the typed solve failures.
//
// [render/nodelink] - Slide graphs as Graphviz diagrams.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	VENTRIGLISSE_TEST_REDIS=localhost:6379 go test ./pkg/cache
//	VENTRIGLISSE_TEST_MONGO=mongodb://localhost:27017 go test ./pkg/diagnostics
package pkg
