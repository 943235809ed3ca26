package ui

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/nibzard/kanban-go/internal/controller"
)

const (
	titleText   = "Kanban"
	addCardText = "+ Add card"
	closeGlyph  = '×'
	hintText    = "drag cards with the mouse | click + Add card | q quit"
)

// draw paints the whole board onto a fresh canvas.
func (m *model) draw() *canvas {
	c := newCanvas(m.width, m.height)
	l := m.layout()
	if l.tooSmall {
		c.text(0, 0, m.width, "Terminal too small for the board.", styleNotice)
		return c
	}

	c.text(1, titleRow, m.width-2, titleText, styleTitle)
	drag := m.ctrl.Drag()
	var dragged uuid.UUID
	if drag != nil {
		dragged = drag.Card.ID
	}
	hovered := m.ctrl.Hovered()

	for _, col := range l.columns {
		header := col.col.Title()
		c.text(col.area.X+columnPadding, headerRow, col.area.W-2*columnPadding, header, styleHeader)
		if room := col.area.W - 2*columnPadding - runewidth.StringWidth(header); room > 0 {
			count := fmt.Sprintf(" (%d)", len(col.cards)+col.hidden)
			c.text(col.area.X+columnPadding+runewidth.StringWidth(header), headerRow, room, count, styleCount)
		}

		for _, cb := range col.cards {
			// The dragged card keeps its slot but is not shown.
			if cb.card.ID == dragged {
				continue
			}
			border := styleBorder
			if cb.card.ID == hovered && drag == nil {
				border = styleHoverBorder
			}
			drawCard(c, cb.rect, cb.card.Label, border, styleLabel)
			if cb.card.ID == hovered && drag == nil {
				c.set(cb.close.X, cb.close.Y, closeGlyph, styleClose)
			}
		}

		if m.form != nil && m.form.column == col.col {
			m.form.draw(c, col.add)
			continue
		}
		add := addCardText
		if col.hidden > 0 {
			add = fmt.Sprintf("%s  (+%d more)", addCardText, col.hidden)
		}
		c.text(col.add.X+1, col.add.Y, col.add.W-1, add, styleAdd)
	}

	if drag != nil {
		drawCard(c, drag.Ghost, drag.Card.Label, styleGhost, styleGhost)
	}

	status, style := hintText, styleHint
	switch {
	case m.ctrl.Notice() != "":
		status, style = m.ctrl.Notice(), styleNotice
	case m.message != "":
		status, style = m.message, styleNotice
	}
	c.text(1, m.height-statusRows, m.width-2, status, style)
	return c
}

func drawCard(c *canvas, r controller.Rect, label string, border, text styleKind) {
	c.box(r, border)
	c.text(r.X+1, r.Y+1, r.W-2, label, text)
}
