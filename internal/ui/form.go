package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/controller"
)

// addForm is the inline text input that replaces a column's add-card row.
type addForm struct {
	column board.Column
	text   []rune
}

func (f *addForm) insert(rs []rune) {
	for _, r := range rs {
		if r >= 0x20 && r != 0x7f {
			f.text = append(f.text, r)
		}
	}
}

func (f *addForm) backspace() {
	if len(f.text) > 0 {
		f.text = f.text[:len(f.text)-1]
	}
}

func (f *addForm) value() string {
	return string(f.text)
}

// draw renders the input with a cursor, keeping the end of the text visible.
func (f *addForm) draw(c *canvas, r controller.Rect) {
	c.fill(r, ' ', styleInput)
	text := string(f.text) + "▏"
	if over := runewidth.StringWidth(text) - (r.W - 2); over > 0 {
		text = "…" + runewidth.TruncateLeft(text, over+1, "")
	}
	c.text(r.X+1, r.Y, r.W-2, text, styleInput)
}
