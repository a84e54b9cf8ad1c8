// Package physics provides the broad-phase index for the collision sweeps.
package physics

import (
	"math"
	"sort"
)

// Grid buckets entity indices by center position so collision sweeps only
// test nearby pairs. The cell size must be at least the largest half-extent
// sum of any colliding pair; the 3x3 neighborhood around a query point then
// covers every possible overlap.
//
// Positions clamp onto the field, so entities straddling an edge (or inside
// the offscreen margin) stay queryable as long as the margin does not exceed
// the cell size.
type Grid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       [][]int
	scratch     []int
}

// NewGrid creates a grid covering a worldW x worldH field.
func NewGrid(worldW, worldH, cellSize float64) *Grid {
	g := &Grid{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
	}
	g.Reset(worldW, worldH)
	return g
}

// Reset empties the grid and re-derives its dimensions from the field size,
// reallocating only when the field grew. Call once before each batch of
// inserts; cell memory is reused between batches.
func (g *Grid) Reset(worldW, worldH float64) {
	cols := int(math.Ceil(worldW * g.invCellSize))
	rows := int(math.Ceil(worldH * g.invCellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g.cols = cols
	g.rows = rows
	if need := cols * rows; need > len(g.cells) {
		g.cells = make([][]int, need)
	}
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert files an entity index under its center position.
func (g *Grid) Insert(x, y float64, index int) {
	col, row := g.cell(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
}

// Candidates returns the indices in the 3x3 cell neighborhood around a
// point, in ascending order, so sweeping them visits entities exactly as a
// full slice scan would. The returned slice is reused by the next call.
func (g *Grid) Candidates(x, y float64) []int {
	g.scratch = g.scratch[:0]
	col, row := g.cell(x, y)

	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			g.scratch = append(g.scratch, g.cells[r*g.cols+c]...)
		}
	}

	sort.Ints(g.scratch)
	return g.scratch
}

// cell maps a position to grid coordinates, clamped onto the field.
func (g *Grid) cell(x, y float64) (col, row int) {
	col = int(x * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(y * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
