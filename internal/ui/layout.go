package ui

import (
	"github.com/google/uuid"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/controller"
)

// Board geometry, in terminal cells.
const (
	titleRow      = 0
	headerRow     = 1
	firstCardRow  = 2
	cardHeight    = 3
	minColWidth   = 12
	minHeight     = 7
	statusRows    = 1
	columnPadding = 1
)

// layout places every column, card and add-card row on the screen. It is
// rebuilt from the board whenever it is needed and implements
// controller.Surface.
type layout struct {
	width, height int
	tooSmall      bool
	columns       []columnBox
}

type columnBox struct {
	col    board.Column
	area   controller.Rect
	cards  []cardBox
	hidden int
	add    controller.Rect
}

type cardBox struct {
	card  board.Card
	rect  controller.Rect
	close controller.Point
}

func computeLayout(b *board.Board, width, height int) *layout {
	l := &layout{width: width, height: height}
	cols := board.Columns()
	colWidth := width / len(cols)
	if colWidth < minColWidth || height < minHeight {
		l.tooSmall = true
		return l
	}

	bottom := height - statusRows
	for i, col := range cols {
		w := colWidth
		if i == len(cols)-1 {
			w = width - colWidth*(len(cols)-1)
		}
		box := columnBox{
			col:  col,
			area: controller.Rect{X: i * colWidth, Y: headerRow, W: w, H: bottom - headerRow},
		}

		x := box.area.X + columnPadding
		cw := w - 2*columnPadding
		y := firstCardRow
		cards := b.Cards(col)
		for _, card := range cards {
			// Keep one row for the add-card affordance.
			if y+cardHeight > bottom-1 {
				break
			}
			r := controller.Rect{X: x, Y: y, W: cw, H: cardHeight}
			box.cards = append(box.cards, cardBox{
				card:  card,
				rect:  r,
				close: controller.Point{X: r.X + r.W - 2, Y: r.Y},
			})
			y += cardHeight
		}
		box.hidden = len(cards) - len(box.cards)
		box.add = controller.Rect{X: x, Y: y, W: cw, H: 1}
		l.columns = append(l.columns, box)
	}
	return l
}

// HitTest implements controller.Surface.
func (l *layout) HitTest(p controller.Point) controller.Hit {
	if l.tooSmall {
		return controller.Hit{}
	}
	for _, c := range l.columns {
		if !c.area.Contains(p) {
			continue
		}
		for _, cb := range c.cards {
			if !cb.rect.Contains(p) {
				continue
			}
			kind := controller.HitCard
			if p == cb.close {
				kind = controller.HitDelete
			}
			return controller.Hit{Kind: kind, Column: c.col, Card: cb.card.ID, Rect: cb.rect}
		}
		if c.add.Contains(p) {
			return controller.Hit{Kind: controller.HitAddCard, Column: c.col}
		}
		return controller.Hit{Kind: controller.HitColumn, Column: c.col}
	}
	return controller.Hit{}
}

// column returns the box for col.
func (l *layout) column(col board.Column) (columnBox, bool) {
	for _, c := range l.columns {
		if c.col == col {
			return c, true
		}
	}
	return columnBox{}, false
}

// cardRect returns the box of the card with id.
func (l *layout) cardRect(id uuid.UUID) (controller.Rect, bool) {
	for _, c := range l.columns {
		for _, cb := range c.cards {
			if cb.card.ID == id {
				return cb.rect, true
			}
		}
	}
	return controller.Rect{}, false
}
