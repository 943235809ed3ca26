// Package ui provides the interactive terminal board.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/kanban-go/internal/controller"
	"github.com/nibzard/kanban-go/internal/logging"
	"github.com/nibzard/kanban-go/internal/store"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	logger      *log.Logger
	rejectEmpty bool
}

// WithLogger sends controller and UI logs to logger.
func WithLogger(logger *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		c.logger = logger
	}
}

// WithRejectEmptyCards refuses cards with empty text.
func WithRejectEmptyCards(reject bool) TUIOption {
	return func(c *tuiConfig) {
		c.rejectEmpty = reject
	}
}

// RunTUI loads the board from st and runs the interactive board until the
// user quits or ctx is cancelled. Storage failures never stop the board:
// the session continues in memory and the status line says so.
func RunTUI(ctx context.Context, st store.Store, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	return runProgram(ctx, newModel(ctx, st, opts...))
}

func runProgram(ctx context.Context, m *model) error {
	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := program.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

type model struct {
	ctx     context.Context
	ctrl    *controller.Controller
	logger  *log.Logger
	width   int
	height  int
	form    *addForm
	message string
}

func newModel(ctx context.Context, st store.Store, opts ...TUIOption) *model {
	c := &tuiConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}

	m := &model{ctx: ctx, logger: c.logger}
	fallback := store.NewFallback(st, func(err error) {
		m.ctrl.SetNotice(fmt.Sprintf("storage unavailable, changes are kept for this session only (%v)", err))
		m.logger.Warn("storage degraded to memory", "err", err)
	})
	m.ctrl = controller.New(fallback, m, controller.Options{
		RejectEmptyCards: c.rejectEmpty,
		Logger:           c.logger,
	})
	return m
}

// HitTest implements controller.Surface against the current layout.
func (m *model) HitTest(p controller.Point) controller.Hit {
	return m.layout().HitTest(p)
}

func (m *model) layout() *layout {
	return computeLayout(m.ctrl.Board(), m.width, m.height)
}

func (m *model) Init() tea.Cmd {
	if err := m.ctrl.Initialize(m.ctx); err != nil {
		m.logger.Error("load board", "err", err)
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		m.leave("focus lost")
	}
	return m, nil
}

func (m *model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.draw().render()
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.message = ""
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.form != nil {
		switch msg.Type {
		case tea.KeyEnter:
			m.submitForm()
		case tea.KeyEsc:
			m.form = nil
		case tea.KeyBackspace:
			m.form.backspace()
		case tea.KeySpace:
			m.form.insert([]rune{' '})
		case tea.KeyRunes:
			m.form.insert(msg.Runes)
		}
		return nil
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "esc":
		m.leave("escape")
	}
	return nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	p := controller.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.ctrl.Dragging() {
			return
		}
		if hit := m.HitTest(p); hit.Kind == controller.HitAddCard {
			if m.form == nil || m.form.column != hit.Column {
				m.form = &addForm{column: hit.Column}
			}
			return
		}
		if _, err := m.ctrl.PointerDown(m.ctx, p); err != nil {
			m.logger.Error("pointer down", "err", err)
		}
	case tea.MouseActionMotion:
		if m.ctrl.Dragging() {
			if m.HitTest(p).Kind == controller.HitNone {
				m.leave("pointer left the board")
				return
			}
			m.ctrl.DragMove(p)
			return
		}
		m.ctrl.Hover(p)
	case tea.MouseActionRelease:
		if !m.ctrl.Dragging() {
			return
		}
		drop, err := m.ctrl.DragEnd(m.ctx, p)
		if err != nil {
			m.logger.Error("drop", "err", err)
		}
		m.logger.Debug("drop", "outcome", drop.Outcome, "column", drop.Column, "index", drop.Index)
	}
}

// leave cancels an active drag as if the pointer had left the board.
func (m *model) leave(reason string) {
	if !m.ctrl.Dragging() {
		return
	}
	if _, err := m.ctrl.DragLeave(m.ctx); err != nil {
		m.logger.Error("cancel drag", "reason", reason, "err", err)
	}
}

func (m *model) submitForm() {
	_, err := m.ctrl.CreateCard(m.ctx, m.form.column, m.form.value())
	switch {
	case errors.Is(err, controller.ErrEmptyLabel), errors.Is(err, controller.ErrDragInProgress):
		m.message = err.Error()
		return
	case err != nil:
		m.logger.Error("create card", "column", m.form.column, "err", err)
	}
	m.form = nil
}

func (m *model) quit() tea.Cmd {
	m.leave("quit")
	return tea.Quit
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
