package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nibzard/kanban-go/internal/controller"
)

type cell struct {
	r     rune
	style styleKind
	// cont marks the right half of a double-width rune.
	cont bool
}

// canvas is a grid of styled cells. Later writes overwrite earlier ones,
// which is how the drag ghost ends up on top of the board.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// set writes r at x,y and returns its width. Halves of wide runes that get
// split by the write are blanked.
func (c *canvas) set(x, y int, r rune, style styleKind) int {
	width := runewidth.RuneWidth(r)
	if width == 0 {
		r, width = ' ', 1
	}
	if !c.inside(x, y) {
		return width
	}
	if width == 2 && x+1 >= c.w {
		r, width = ' ', 1
	}
	row := c.cells[y]
	c.clear(x, y)
	if width == 2 {
		c.clear(x+1, y)
		row[x+1] = cell{r: ' ', style: style, cont: true}
	}
	row[x] = cell{r: r, style: style}
	return width
}

// clear breaks up any wide rune overlapping x,y.
func (c *canvas) clear(x, y int) {
	row := c.cells[y]
	if row[x].cont && x > 0 {
		row[x-1].r = ' '
	}
	if !row[x].cont && x+1 < c.w && row[x+1].cont {
		row[x+1] = cell{r: ' ', style: row[x+1].style}
	}
	row[x].cont = false
}

// text writes s starting at x,y, truncated to width cells.
func (c *canvas) text(x, y, width int, s string, style styleKind) {
	if width < 1 {
		return
	}
	s = runewidth.Truncate(sanitize(s), width, "…")
	for _, r := range s {
		x += c.set(x, y, r, style)
	}
}

func (c *canvas) fill(r controller.Rect, ch rune, style styleKind) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.set(x, y, ch, style)
		}
	}
}

// box draws a single-line border around r and blanks its inside.
func (c *canvas) box(r controller.Rect, style styleKind) {
	if r.W < 2 || r.H < 2 {
		return
	}
	c.fill(controller.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}, ' ', stylePlain)
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		c.set(x, r.Y, '─', style)
		c.set(x, bottom, '─', style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.set(r.X, y, '│', style)
		c.set(right, y, '│', style)
	}
	c.set(r.X, r.Y, '┌', style)
	c.set(right, r.Y, '┐', style)
	c.set(r.X, bottom, '└', style)
	c.set(right, bottom, '┘', style)
}

// render joins the grid into lines, styling each run of equal style once.
func (c *canvas) render() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		current := stylePlain
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(styles[current].Render(run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}

// plain returns the grid without styling.
func (c *canvas) plain() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if !cl.cont {
				b.WriteRune(cl.r)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// sanitize turns control characters into spaces so a label stays on one row.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}
