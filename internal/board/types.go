package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nibzard/kanban-go/internal/utils"
)

// Column identifies one of the three fixed board columns.
type Column string

const (
	ColumnTodo       Column = "todo"
	ColumnInProgress Column = "in-progress"
	ColumnDone       Column = "done"
)

// Errors returned by board mutations.
var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrCardNotFound  = errors.New("card not found")
)

// Columns returns the column identifiers in display order.
func Columns() []Column {
	return []Column{ColumnTodo, ColumnInProgress, ColumnDone}
}

// ParseColumn accepts a column identifier, its snapshot key or its title,
// case-insensitively.
func ParseColumn(s string) (Column, error) {
	switch utils.NormalizeName(s) {
	case "todo", "to-do":
		return ColumnTodo, nil
	case "in-progress", "inprogress", "progress", "doing":
		return ColumnInProgress, nil
	case "done":
		return ColumnDone, nil
	}
	return "", fmt.Errorf("%w: %q (want todo, in-progress or done)", ErrUnknownColumn, s)
}

// Valid reports whether c is one of the three board columns.
func (c Column) Valid() bool {
	return c.index() >= 0
}

// Title returns the display title.
func (c Column) Title() string {
	switch c {
	case ColumnTodo:
		return "To Do"
	case ColumnInProgress:
		return "In Progress"
	case ColumnDone:
		return "Done"
	}
	return string(c)
}

// Key returns the field name used in snapshots.
func (c Column) Key() string {
	switch c {
	case ColumnInProgress:
		return "inProgress"
	default:
		return string(c)
	}
}

func (c Column) index() int {
	switch c {
	case ColumnTodo:
		return 0
	case ColumnInProgress:
		return 1
	case ColumnDone:
		return 2
	}
	return -1
}

// Card is a single labelled unit of work.
type Card struct {
	ID    uuid.UUID
	Label string
}

// NewCard returns a card with a fresh identity.
func NewCard(label string) Card {
	return Card{ID: uuid.New(), Label: label}
}

// Board holds three ordered card lists. The zero value is an empty board.
// Board is not safe for concurrent use.
type Board struct {
	lists [3][]Card
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// FromSnapshot builds a board with a new card for every label, in order.
func FromSnapshot(s Snapshot) *Board {
	b := New()
	for _, col := range Columns() {
		for _, label := range s.Column(col) {
			b.lists[col.index()] = append(b.lists[col.index()], NewCard(label))
		}
	}
	return b
}

// Snapshot returns the labels of every column in display order.
func (b *Board) Snapshot() Snapshot {
	s := EmptySnapshot()
	for _, col := range Columns() {
		labels := make([]string, 0, len(b.lists[col.index()]))
		for _, card := range b.lists[col.index()] {
			labels = append(labels, card.Label)
		}
		s.set(col, labels)
	}
	return s
}

// Cards returns a copy of the cards in col.
func (b *Board) Cards(col Column) []Card {
	i := col.index()
	if i < 0 {
		return nil
	}
	out := make([]Card, len(b.lists[i]))
	copy(out, b.lists[i])
	return out
}

// Len returns the total number of cards.
func (b *Board) Len() int {
	n := 0
	for _, list := range b.lists {
		n += len(list)
	}
	return n
}

// Clone returns a deep copy of the board. Card identities are kept.
func (b *Board) Clone() *Board {
	c := New()
	for i, list := range b.lists {
		c.lists[i] = append([]Card(nil), list...)
	}
	return c
}

// Locate returns the column and index of the card with id.
func (b *Board) Locate(id uuid.UUID) (Column, int, bool) {
	for _, col := range Columns() {
		for i, card := range b.lists[col.index()] {
			if card.ID == id {
				return col, i, true
			}
		}
	}
	return "", -1, false
}

// Card returns the card with id.
func (b *Board) Card(id uuid.UUID) (Card, bool) {
	col, i, ok := b.Locate(id)
	if !ok {
		return Card{}, false
	}
	return b.lists[col.index()][i], true
}

// Append adds card to the end of col.
func (b *Board) Append(col Column, card Card) error {
	i := col.index()
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	b.lists[i] = append(b.lists[i], card)
	return nil
}

// Insert places card at index in col. Index is clamped to the column bounds.
func (b *Board) Insert(col Column, index int, card Card) error {
	i := col.index()
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	list := b.lists[i]
	if index < 0 {
		index = 0
	}
	if index > len(list) {
		index = len(list)
	}
	list = append(list, Card{})
	copy(list[index+1:], list[index:])
	list[index] = card
	b.lists[i] = list
	return nil
}

// Remove deletes the card with id and reports where it was.
func (b *Board) Remove(id uuid.UUID) (Card, Column, int, bool) {
	col, idx, ok := b.Locate(id)
	if !ok {
		return Card{}, "", -1, false
	}
	i := col.index()
	card := b.lists[i][idx]
	b.lists[i] = append(b.lists[i][:idx], b.lists[i][idx+1:]...)
	return card, col, idx, true
}

// MoveToEnd moves the card with id to the end of col.
func (b *Board) MoveToEnd(id uuid.UUID, col Column) error {
	if !col.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	card, _, _, ok := b.Remove(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	return b.Append(col, card)
}

// MoveNextTo moves the card with id immediately before or after target,
// in whichever column target lives.
func (b *Board) MoveNextTo(id, target uuid.UUID, after bool) error {
	if id == target {
		return nil
	}
	if _, _, ok := b.Locate(target); !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, target)
	}
	card, _, _, ok := b.Remove(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	col, idx, _ := b.Locate(target)
	if after {
		idx++
	}
	return b.Insert(col, idx, card)
}

// Labels returns the labels in col, mostly useful in tests and plain output.
func (b *Board) Labels(col Column) []string {
	return b.Snapshot().Column(col)
}

// String renders the board on one line per column.
func (b *Board) String() string {
	var sb strings.Builder
	for _, col := range Columns() {
		fmt.Fprintf(&sb, "%s: %q\n", col, b.Labels(col))
	}
	return sb.String()
}
