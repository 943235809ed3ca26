package controller

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibzard/kanban-go/internal/board"
)

func TestDragStartCapturesOffsetAndGhost(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A", "B"}}
	c, _ := newController(t, &initial, Options{})

	press := Point{X: 5, Y: cardTop + cardHeight + 1} // inside B, one row down
	require.True(t, c.DragStart(press))

	s := c.Drag()
	require.NotNil(t, s)
	assert.Equal(t, "B", s.Card.Label)
	assert.Equal(t, board.ColumnTodo, s.Origin)
	assert.Equal(t, 1, s.OriginIndex)
	assert.Equal(t, Point{X: 5, Y: 1}, s.Offset)
	assert.Equal(t, Rect{X: 0, Y: cardTop + cardHeight, W: colWidth, H: cardHeight}, s.Ghost)

	// The card keeps its slot while dragged.
	assert.Equal(t, []string{"A", "B"}, labels(c, board.ColumnTodo))
}

func TestDragMoveTracksGrabPointWithoutPersisting(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A"}}
	c, st := newController(t, &initial, Options{})

	require.True(t, c.DragStart(Point{X: 5, Y: cardTop + 2}))
	for _, p := range []Point{{30, 10}, {31, 11}, {45, 20}} {
		c.DragMove(p)
		s := c.Drag()
		assert.Equal(t, p, s.Pointer)
		assert.Equal(t, Point{X: p.X - 5, Y: p.Y - 2}, s.Ghost.Origin())
		assert.Equal(t, colWidth, s.Ghost.W)
		assert.Equal(t, cardHeight, s.Ghost.H)
	}
	assert.Equal(t, []string{"A"}, labels(c, board.ColumnTodo))
	assert.Zero(t, st.saves, "moves must not persist")
}

func TestDragStartIgnoredWhenNotOnCardBody(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A"}}
	c, _ := newController(t, &initial, Options{})

	assert.False(t, c.DragStart(emptyAreaOf(board.ColumnTodo)))
	assert.False(t, c.DragStart(Point{X: colWidth - 1, Y: cardTop}), "delete affordance")
	assert.False(t, c.DragStart(Point{X: -1, Y: -1}))
	assert.Nil(t, c.Drag())
}

func TestSingleDragSession(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A", "B"}}
	c, _ := newController(t, &initial, Options{})

	require.True(t, c.DragStart(cardPoint(board.ColumnTodo, 0, 0)))
	assert.False(t, c.DragStart(cardPoint(board.ColumnTodo, 1, 0)))
	assert.Equal(t, "A", c.Drag().Card.Label)

	kind, err := c.PointerDown(context.Background(), cardPoint(board.ColumnTodo, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, HitNone, kind)
	assert.Equal(t, "A", c.Drag().Card.Label)
}

func TestMutationsBlockedWhileDragging(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A", "B"}}
	c, st := newController(t, &initial, Options{})
	ctx := context.Background()
	b, _ := c.CardAt(board.ColumnTodo, 1)

	require.True(t, c.DragStart(cardPoint(board.ColumnTodo, 0, 0)))

	_, err := c.CreateCard(ctx, board.ColumnTodo, "new")
	assert.ErrorIs(t, err, ErrDragInProgress)

	deleted, err := c.DeleteCard(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.ErrorIs(t, c.ReplaceBoard(ctx, board.EmptySnapshot()), ErrDragInProgress)
	assert.Equal(t, []string{"A", "B"}, labels(c, board.ColumnTodo))
	assert.Zero(t, st.saves)
}

func TestHoverSuppressedWhileDragging(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A", "B"}}
	c, _ := newController(t, &initial, Options{})
	a, _ := c.CardAt(board.ColumnTodo, 0)

	require.True(t, c.DragStart(cardPoint(board.ColumnTodo, 0, 0)))
	c.Hover(cardPoint(board.ColumnTodo, 1, 0))
	assert.Equal(t, a.ID, c.Hovered())
	c.Hover(Point{X: -5, Y: -5})
	assert.Equal(t, a.ID, c.Hovered())
}

func TestDragEndWithoutSessionIsNoop(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A"}}
	c, st := newController(t, &initial, Options{})

	drop, err := c.DragEnd(context.Background(), cardPoint(board.ColumnDone, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, drop.Outcome)

	drop, err = c.DragLeave(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, drop.Outcome)
	assert.Zero(t, st.saves)
}

func TestDrop(t *testing.T) {
	initial := board.Snapshot{
		Todo:       []string{"A", "B", "C"},
		InProgress: []string{"D", "E"},
		Done:       []string{},
	}
	tests := []struct {
		name    string
		from    board.Column
		index   int
		drop    func() Point
		outcome Outcome
		want    board.Snapshot
	}{
		{
			name:    "lower half of next card inserts after it",
			from:    board.ColumnTodo,
			index:   0,
			drop:    func() Point { return cardPoint(board.ColumnTodo, 1, 2) },
			outcome: OutcomeInserted,
			want:    board.Snapshot{Todo: []string{"B", "A", "C"}, InProgress: []string{"D", "E"}, Done: []string{}},
		},
		{
			name:    "upper half of next card inserts before it",
			from:    board.ColumnTodo,
			index:   0,
			drop:    func() Point { return cardPoint(board.ColumnTodo, 1, 0) },
			outcome: OutcomeInserted,
			want:    board.Snapshot{Todo: []string{"A", "B", "C"}, InProgress: []string{"D", "E"}, Done: []string{}},
		},
		{
			name:    "middle row of a card counts as upper half",
			from:    board.ColumnTodo,
			index:   2,
			drop:    func() Point { return cardPoint(board.ColumnTodo, 0, 1) },
			outcome: OutcomeInserted,
			want:    board.Snapshot{Todo: []string{"C", "A", "B"}, InProgress: []string{"D", "E"}, Done: []string{}},
		},
		{
			name:    "upper half of card in another column",
			from:    board.ColumnTodo,
			index:   1,
			drop:    func() Point { return cardPoint(board.ColumnInProgress, 1, 0) },
			outcome: OutcomeInserted,
			want:    board.Snapshot{Todo: []string{"A", "C"}, InProgress: []string{"D", "B", "E"}, Done: []string{}},
		},
		{
			name:    "lower half of last card in another column",
			from:    board.ColumnInProgress,
			index:   0,
			drop:    func() Point { return cardPoint(board.ColumnTodo, 2, 2) },
			outcome: OutcomeInserted,
			want:    board.Snapshot{Todo: []string{"A", "B", "C", "D"}, InProgress: []string{"E"}, Done: []string{}},
		},
		{
			name:    "delete affordance counts as the card",
			from:    board.ColumnTodo,
			index:   2,
			drop:    func() Point { return Point{X: colWidth*2 - 1, Y: cardTop} },
			outcome: OutcomeInserted,
			want:    board.Snapshot{Todo: []string{"A", "B"}, InProgress: []string{"C", "D", "E"}, Done: []string{}},
		},
		{
			name:    "empty column appends",
			from:    board.ColumnTodo,
			index:   1,
			drop:    func() Point { return emptyAreaOf(board.ColumnDone) },
			outcome: OutcomeAppended,
			want:    board.Snapshot{Todo: []string{"A", "C"}, InProgress: []string{"D", "E"}, Done: []string{"B"}},
		},
		{
			name:    "own column container appends",
			from:    board.ColumnTodo,
			index:   0,
			drop:    func() Point { return emptyAreaOf(board.ColumnTodo) },
			outcome: OutcomeAppended,
			want:    board.Snapshot{Todo: []string{"B", "C", "A"}, InProgress: []string{"D", "E"}, Done: []string{}},
		},
		{
			name:    "outside every column cancels",
			from:    board.ColumnTodo,
			index:   1,
			drop:    func() Point { return Point{X: colWidth * 5, Y: 3} },
			outcome: OutcomeCancelled,
			want:    initial,
		},
		{
			name:    "own slot cancels",
			from:    board.ColumnInProgress,
			index:   1,
			drop:    func() Point { return cardPoint(board.ColumnInProgress, 1, 2) },
			outcome: OutcomeCancelled,
			want:    initial,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, st := newController(t, &initial, Options{})
			ctx := context.Background()
			moved, ok := c.CardAt(tt.from, tt.index)
			require.True(t, ok)

			require.True(t, c.DragStart(cardPoint(tt.from, tt.index, 1)))
			c.DragMove(Point{X: 50, Y: 25})
			drop, err := c.DragEnd(ctx, tt.drop())
			require.NoError(t, err)

			assert.Equal(t, tt.outcome, drop.Outcome)
			assert.Equal(t, tt.want, c.Serialize())
			assert.False(t, c.Dragging())
			assert.Equal(t, 1, st.saves, "drag end persists exactly once")

			col, idx, found := c.Board().Locate(moved.ID)
			require.True(t, found, "dragged card must keep its identity")
			assert.Equal(t, drop.Column, col)
			assert.Equal(t, drop.Index, idx)

			assert.Equal(t, tt.want, reload(t, st).Serialize())
		})
	}
}

func TestDragLeaveRestoresOrigin(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A", "B"}, Done: []string{"C"}}
	c, st := newController(t, &initial, Options{})

	require.True(t, c.DragStart(cardPoint(board.ColumnTodo, 1, 0)))
	c.DragMove(cardPoint(board.ColumnDone, 0, 2))
	drop, err := c.DragLeave(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Drop{Outcome: OutcomeCancelled, Column: board.ColumnTodo, Index: 1}, drop)
	assert.Equal(t, initial.Normalize(), c.Serialize())
	assert.Nil(t, c.Drag())
	assert.Equal(t, 1, st.saves)
}

func TestScenarioSwapAndReload(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A", "B"}}
	c, st := newController(t, &initial, Options{})
	ctx := context.Background()

	kind, err := c.PointerDown(ctx, cardPoint(board.ColumnTodo, 0, 1))
	require.NoError(t, err)
	require.Equal(t, HitCard, kind)
	c.DragMove(cardPoint(board.ColumnTodo, 1, 1))
	_, err = c.DragEnd(ctx, cardPoint(board.ColumnTodo, 1, 2))
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, labels(c, board.ColumnTodo))
	assert.Equal(t, []string{"B", "A"}, labels(reload(t, st), board.ColumnTodo))
}

func TestDropOnStaleTargetCancels(t *testing.T) {
	initial := board.Snapshot{Todo: []string{"A", "B"}}
	c, st := newController(t, &initial, Options{})
	stale := Hit{Kind: HitCard, Column: board.ColumnTodo, Card: uuid.New(), Rect: Rect{X: 0, Y: 0, W: 10, H: 3}}

	require.True(t, c.DragStart(cardPoint(board.ColumnTodo, 0, 0)))
	c.SetSurface(SurfaceFunc(func(Point) Hit { return stale }))
	drop, err := c.DragEnd(context.Background(), Point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, drop.Outcome)
	assert.Equal(t, []string{"A", "B"}, labels(c, board.ColumnTodo))
	assert.Equal(t, 1, st.saves)
}

func TestRectGeometry(t *testing.T) {
	r := Rect{X: 2, Y: 4, W: 10, H: 3}
	assert.True(t, r.Contains(Point{X: 2, Y: 4}))
	assert.True(t, r.Contains(Point{X: 11, Y: 6}))
	assert.False(t, r.Contains(Point{X: 12, Y: 6}))
	assert.False(t, r.Contains(Point{X: 2, Y: 7}))

	assert.False(t, r.BelowMiddle(4))
	assert.False(t, r.BelowMiddle(5))
	assert.True(t, r.BelowMiddle(6))

	even := Rect{Y: 0, H: 4}
	assert.False(t, even.BelowMiddle(1))
	assert.False(t, even.BelowMiddle(2), "midpoint itself is upper half")
	assert.True(t, even.BelowMiddle(3))
}
