package controller

import (
	"context"

	"github.com/nibzard/kanban-go/internal/board"
)

// DragSession is the state of a card being dragged. It exists from the
// press on a card until release or until the pointer leaves the surface.
// The card stays in its origin slot, hidden, until the drop resolves.
type DragSession struct {
	Card        board.Card
	Origin      board.Column
	OriginIndex int
	// Offset is the pointer position relative to the card's top-left corner
	// at the moment of the press.
	Offset Point
	// Ghost is the floating stand-in, same size as the card, with its
	// top-left corner at Pointer - Offset.
	Ghost   Rect
	Pointer Point
}

// Outcome describes how a drag ended.
type Outcome int

const (
	// OutcomeIgnored means there was no drag to end.
	OutcomeIgnored Outcome = iota
	// OutcomeCancelled means the card went back to its origin slot.
	OutcomeCancelled
	// OutcomeAppended means the card moved to the end of a column.
	OutcomeAppended
	// OutcomeInserted means the card moved next to another card.
	OutcomeInserted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeAppended:
		return "appended"
	case OutcomeInserted:
		return "inserted"
	}
	return "ignored"
}

// Drop reports where a dragged card ended up.
type Drop struct {
	Outcome Outcome
	Column  board.Column
	Index   int
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// Drag returns a copy of the active session, or nil when idle.
func (c *Controller) Drag() *DragSession {
	if c.drag == nil {
		return nil
	}
	s := *c.drag
	return &s
}

// DragStart begins dragging the card under p. It returns false if a drag is
// already active or p is not on a card body. The cell of a delete affordance
// that is not shown counts as card body.
func (c *Controller) DragStart(p Point) bool {
	return c.startDrag(p, c.hitTest(p))
}

func (c *Controller) startDrag(p Point, hit Hit) bool {
	if c.drag != nil {
		return false
	}
	if hit.Kind != HitCard && (hit.Kind != HitDelete || c.deleteVisible(hit)) {
		return false
	}
	col, idx, ok := c.board.Locate(hit.Card)
	if !ok {
		return false
	}
	card, _ := c.board.Card(hit.Card)

	offset := p.Sub(hit.Rect.Origin())
	c.drag = &DragSession{
		Card:        card,
		Origin:      col,
		OriginIndex: idx,
		Offset:      offset,
		Ghost:       hit.Rect.At(p.Sub(offset)),
		Pointer:     p,
	}
	c.hover = card.ID
	c.logger.Debug("drag start", "card", card.ID, "column", col, "index", idx, "offset", offset)
	return true
}

// DragMove moves the ghost so it keeps the original grab point under the
// pointer. Column membership is untouched and nothing is persisted.
func (c *Controller) DragMove(p Point) {
	if c.drag == nil {
		return
	}
	c.drag.Pointer = p
	c.drag.Ghost = c.drag.Ghost.At(p.Sub(c.drag.Offset))
}

// DragEnd drops the dragged card at p:
//
//   - on a column outside any card, the card goes to the end of that column;
//   - on another card, it goes before that card if p is in the upper half
//     (or exactly on the midpoint) and after it if p is in the lower half;
//   - anywhere else the drag is cancelled and the card stays where it was.
//
// The session is cleared and the board persisted whatever the outcome.
// Without an active session DragEnd does nothing.
func (c *Controller) DragEnd(ctx context.Context, p Point) (Drop, error) {
	if c.drag == nil {
		return Drop{Outcome: OutcomeIgnored}, nil
	}
	s := c.drag
	s.Pointer = p
	drop := c.resolveDrop(s, c.hitTest(p))
	return drop, c.finishDrag(ctx, drop)
}

// DragLeave ends the drag because the pointer left the surface. The card
// returns to its origin slot.
func (c *Controller) DragLeave(ctx context.Context) (Drop, error) {
	if c.drag == nil {
		return Drop{Outcome: OutcomeIgnored}, nil
	}
	drop := Drop{Outcome: OutcomeCancelled, Column: c.drag.Origin, Index: c.drag.OriginIndex}
	return drop, c.finishDrag(ctx, drop)
}

func (c *Controller) resolveDrop(s *DragSession, hit Hit) Drop {
	cancel := Drop{Outcome: OutcomeCancelled, Column: s.Origin, Index: s.OriginIndex}

	switch hit.Kind {
	case HitColumn, HitAddCard:
		if err := c.board.MoveToEnd(s.Card.ID, hit.Column); err != nil {
			c.logger.Debug("drop on column failed", "column", hit.Column, "err", err)
			return cancel
		}
		return c.dropAt(OutcomeAppended)
	case HitCard, HitDelete:
		if hit.Card == s.Card.ID {
			return cancel
		}
		after := hit.Rect.BelowMiddle(s.Pointer.Y)
		if err := c.board.MoveNextTo(s.Card.ID, hit.Card, after); err != nil {
			c.logger.Debug("drop on card failed", "target", hit.Card, "err", err)
			return cancel
		}
		return c.dropAt(OutcomeInserted)
	}
	return cancel
}

func (c *Controller) dropAt(outcome Outcome) Drop {
	col, idx, _ := c.board.Locate(c.drag.Card.ID)
	return Drop{Outcome: outcome, Column: col, Index: idx}
}

func (c *Controller) finishDrag(ctx context.Context, drop Drop) error {
	c.logger.Debug("drag end", "card", c.drag.Card.ID, "outcome", drop.Outcome, "column", drop.Column, "index", drop.Index)
	c.drag = nil
	return c.persist(ctx)
}
