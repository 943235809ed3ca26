// Package controller owns the in-memory board, applies card edits and drag
// gestures to it, and persists a snapshot after every mutation.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nibzard/kanban-go/internal/board"
	"github.com/nibzard/kanban-go/internal/store"
)

// Errors returned for rejected mutations. None of them change the board.
var (
	ErrEmptyLabel     = errors.New("card text is empty")
	ErrDragInProgress = errors.New("a drag is in progress")
	ErrUnknownColumn  = board.ErrUnknownColumn
)

// Options configures a Controller.
type Options struct {
	// RejectEmptyCards refuses cards whose text is empty or whitespace.
	// Empty cards are allowed by default.
	RejectEmptyCards bool
	// Logger receives debug and warning output. Nil discards it.
	Logger *log.Logger
}

// Controller applies user actions to a board and keeps the store in sync.
// It is driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	store       store.Store
	surface     Surface
	board       *board.Board
	drag        *DragSession
	hover       uuid.UUID
	notice      string
	rejectEmpty bool
	logger      *log.Logger
}

// New returns a controller with an empty board. Call Initialize to load the
// stored snapshot.
func New(s store.Store, surface Surface, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		store:       s,
		surface:     surface,
		board:       board.New(),
		rejectEmpty: opts.RejectEmptyCards,
		logger:      logger,
	}
}

// SetSurface replaces the hit-testing surface.
func (c *Controller) SetSurface(s Surface) {
	c.surface = s
}

// Initialize replaces the board with the stored snapshot. Absent or
// malformed data yields an empty board. A store failure also yields an
// empty board; the error is returned and kept as the notice.
func (c *Controller) Initialize(ctx context.Context) error {
	c.drag = nil
	c.hover = uuid.Nil

	raw, ok, err := c.store.Load(ctx)
	if err != nil {
		c.board = board.New()
		c.setNotice("could not load board: %v", err)
		c.logger.Warn("load failed, starting empty", "err", err)
		return fmt.Errorf("load board: %w", err)
	}

	snapshot, perr := board.Parse(raw, ok)
	if perr != nil {
		c.logger.Warn("stored board is malformed, starting empty", "err", perr)
	}
	c.board = board.FromSnapshot(snapshot)
	c.logger.Debug("board loaded", "found", ok, "cards", c.board.Len())
	return nil
}

// Board returns a copy of the current board.
func (c *Controller) Board() *board.Board {
	return c.board.Clone()
}

// Serialize returns the snapshot of the current board in display order.
func (c *Controller) Serialize() board.Snapshot {
	return c.board.Snapshot()
}

// Notice returns the last storage problem worth showing the user, if any.
func (c *Controller) Notice() string {
	return c.notice
}

// SetNotice records a message for the status line. An empty string clears it.
func (c *Controller) SetNotice(msg string) {
	c.notice = msg
}

func (c *Controller) setNotice(format string, args ...any) {
	c.notice = fmt.Sprintf(format, args...)
}

// CreateCard appends a card with text to the end of col and persists.
func (c *Controller) CreateCard(ctx context.Context, col board.Column, text string) (board.Card, error) {
	if c.drag != nil {
		return board.Card{}, ErrDragInProgress
	}
	if !col.Valid() {
		return board.Card{}, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	if c.rejectEmpty && strings.TrimSpace(text) == "" {
		return board.Card{}, ErrEmptyLabel
	}

	card := board.NewCard(text)
	if err := c.board.Append(col, card); err != nil {
		return board.Card{}, err
	}
	c.logger.Debug("card created", "column", col, "card", card.ID)
	return card, c.persist(ctx)
}

// DeleteCard removes the card with id and persists. It reports false, and
// does nothing, if the card is absent or a drag is in progress.
func (c *Controller) DeleteCard(ctx context.Context, id uuid.UUID) (bool, error) {
	if c.drag != nil {
		return false, nil
	}
	_, col, _, ok := c.board.Remove(id)
	if !ok {
		return false, nil
	}
	if c.hover == id {
		c.hover = uuid.Nil
	}
	c.logger.Debug("card deleted", "column", col, "card", id)
	return true, c.persist(ctx)
}

// ReplaceBoard swaps in a whole snapshot and persists it.
func (c *Controller) ReplaceBoard(ctx context.Context, s board.Snapshot) error {
	if c.drag != nil {
		return ErrDragInProgress
	}
	c.board = board.FromSnapshot(s)
	c.hover = uuid.Nil
	return c.persist(ctx)
}

// CardAt returns the card at a 0-based position in col.
func (c *Controller) CardAt(col board.Column, index int) (board.Card, bool) {
	cards := c.board.Cards(col)
	if index < 0 || index >= len(cards) {
		return board.Card{}, false
	}
	return cards[index], true
}

// Hover updates which card shows its delete affordance. Hover tracking is
// suppressed while dragging.
func (c *Controller) Hover(p Point) {
	if c.drag != nil {
		return
	}
	hit := c.hitTest(p)
	switch hit.Kind {
	case HitCard, HitDelete:
		c.hover = hit.Card
	default:
		c.hover = uuid.Nil
	}
}

// Hovered returns the card showing its delete affordance, or uuid.Nil.
func (c *Controller) Hovered() uuid.UUID {
	return c.hover
}

// PointerDown handles a button press: the delete affordance of the hovered
// card deletes it, any other press on a card starts a drag, anything else
// is ignored. It reports which of those happened.
func (c *Controller) PointerDown(ctx context.Context, p Point) (HitKind, error) {
	if c.drag != nil {
		return HitNone, nil
	}
	hit := c.hitTest(p)
	if c.deleteVisible(hit) {
		_, err := c.DeleteCard(ctx, hit.Card)
		return HitDelete, err
	}
	if c.startDrag(p, hit) {
		return HitCard, nil
	}
	return HitNone, nil
}

// deleteVisible reports whether hit is on a delete affordance that is shown.
// Only the hovered card shows one.
func (c *Controller) deleteVisible(hit Hit) bool {
	return hit.Kind == HitDelete && hit.Card != uuid.Nil && hit.Card == c.hover
}

func (c *Controller) hitTest(p Point) Hit {
	if c.surface == nil {
		return Hit{}
	}
	return c.surface.HitTest(p)
}

// persist saves the current snapshot. Failures are kept as the notice so the
// UI can show them without interrupting the user.
func (c *Controller) persist(ctx context.Context) error {
	if err := c.store.Save(ctx, c.board.Snapshot()); err != nil {
		c.setNotice("could not save board: %v", err)
		c.logger.Error("save failed", "err", err)
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}
