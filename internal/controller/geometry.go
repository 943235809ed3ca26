package controller

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nibzard/kanban-go/internal/board"
)

// Point is a position on the drag surface, in cells.
type Point struct {
	X, Y int
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned box. X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// At returns r moved so its top-left corner is p.
func (r Rect) At(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// BelowMiddle reports whether y is strictly below the vertical midpoint of r.
func (r Rect) BelowMiddle(y int) bool {
	return 2*y > 2*r.Y+r.H
}

// HitKind classifies what lies under a point.
type HitKind int

const (
	// HitNone means no column is under the point.
	HitNone HitKind = iota
	// HitColumn is a column container outside any card.
	HitColumn
	// HitCard is the body of a card.
	HitCard
	// HitDelete is a card's delete affordance.
	HitDelete
	// HitAddCard is a column's "add card" affordance.
	HitAddCard
)

func (k HitKind) String() string {
	switch k {
	case HitColumn:
		return "column"
	case HitCard:
		return "card"
	case HitDelete:
		return "delete"
	case HitAddCard:
		return "add-card"
	}
	return "none"
}

// Hit is the result of a hit test. For card and delete hits Rect is the
// card's box.
type Hit struct {
	Kind   HitKind
	Column board.Column
	Card   uuid.UUID
	Rect   Rect
}

// Surface resolves points to the element under them. The UI layout
// implements it. The slot of the card being dragged may still be reported
// as that card; dropping there leaves the card where it was.
type Surface interface {
	HitTest(p Point) Hit
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(p Point) Hit

// HitTest calls f(p).
func (f SurfaceFunc) HitTest(p Point) Hit {
	return f(p)
}
