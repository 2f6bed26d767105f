package gridgraph

import "strings"

// Map symbols used by Render.
const (
	SymbolFree     = '.'
	SymbolObstacle = '#'
	SymbolPath     = '*'
	SymbolStart    = 'S'
	SymbolEnd      = 'E'
)

// Render draws the grid as N lines of N symbols, row y=0 first.
// Cells of path are overlaid as *, then start and end as S and E, so a
// partial path never moves the endpoint markers. Cells outside the grid are
// ignored.
func (g *Grid) Render(start, end Cell, path []Cell) string {
	canvas := make([]byte, g.Len())
	for i, b := range g.blocked {
		if b {
			canvas[i] = SymbolObstacle
		} else {
			canvas[i] = SymbolFree
		}
	}
	for _, c := range path {
		if g.InBounds(c) {
			canvas[g.Index(c)] = SymbolPath
		}
	}
	if g.InBounds(start) {
		canvas[g.Index(start)] = SymbolStart
	}
	if g.InBounds(end) {
		canvas[g.Index(end)] = SymbolEnd
	}

	var sb strings.Builder
	sb.Grow(g.Len() + g.size)
	for y := 0; y < g.size; y++ {
		sb.Write(canvas[y*g.size : (y+1)*g.size])
		sb.WriteByte('\n')
	}

	return sb.String()
}
