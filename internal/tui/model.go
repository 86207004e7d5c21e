// Package tui provides the Bubble Tea study timer interface.
package tui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/rumo/internal/stats"
	"github.com/verte-zerg/rumo/internal/store"
	"github.com/verte-zerg/rumo/internal/timer"
)

const goalPlaceholder = "Ex: EFOMM, ESA, PREP, ENEM, EN, CN....."

// OpenFunc opens the persistent store. It runs off the update loop.
type OpenFunc func(ctx context.Context) (store.KV, error)

type tickMsg struct {
	gen int
}

type storeReadyMsg struct {
	kv  store.KV
	err error
}

// Model implements the Bubble Tea study timer UI.
type Model struct {
	ctrl  *timer.Controller
	open  OpenFunc
	kv    store.KV
	ready bool

	storeErr error

	goal        string
	editingGoal bool
	goalInput   textinput.Model

	view stats.WeekView
	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel constructs a study timer model. The store is opened by Init.
func NewModel(ctrl *timer.Controller, open OpenFunc) *Model {
	input := textinput.New()
	input.Placeholder = goalPlaceholder
	input.CharLimit = 80
	input.Width = 40

	m := &Model{
		ctrl:      ctrl,
		open:      open,
		goalInput: input,
		keys:      newKeyMap(),
		help:      help.New(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	open := m.open
	if open == nil {
		return nil
	}
	return func() tea.Msg {
		kv, err := open(context.Background())
		return storeReadyMsg{kv: kv, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case storeReadyMsg:
		m.handleStoreReady(msg)
		return m, textinput.Blink
	case tickMsg:
		if !m.ctrl.Tick(context.Background(), msg.gen) {
			return m, nil
		}
		m.refresh()
		return m, tickCmd(msg.gen)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		if !m.ready {
			// The placeholder shows no controls until the store has answered.
			if key.Matches(msg, m.keys.Quit) {
				return m, m.quit()
			}
			return m, nil
		}
		if m.editingGoal {
			return m.updateGoalInput(msg)
		}
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleStoreReady(msg storeReadyMsg) {
	m.ready = true
	ctx := context.Background()
	if msg.err != nil {
		m.storeErr = msg.err
		logErrf("failed to open store: %v", msg.err)
		return
	}
	m.kv = msg.kv
	if err := m.ctrl.Ledger().Attach(ctx, msg.kv); err != nil {
		logErrf("failed to flush deferred study time: %v", err)
	}
	if goal, ok := m.ctrl.Ledger().Goal(ctx); ok {
		m.goal = goal
	} else {
		m.startGoalInput()
	}
	m.refresh()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case m.ctrl.State() == timer.ConfirmingStop:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			if err := m.ctrl.ConfirmStop(ctx); err != nil {
				return m, nil
			}
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			gen, err := m.ctrl.CancelStop()
			if err != nil {
				return m, nil
			}
			m.refresh()
			return m, tickCmd(gen)
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		gen, running, err := m.ctrl.Toggle()
		m.refresh()
		if err != nil || !running {
			return m, nil
		}
		return m, tickCmd(gen)
	case key.Matches(msg, m.keys.Reset):
		if err := m.ctrl.Reset(); err == nil {
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Stop):
		if err := m.ctrl.RequestStop(); err == nil {
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Goal):
		return m, m.startGoalInput()
	}
	return m, nil
}

func (m *Model) updateGoalInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		goal, err := m.ctrl.Ledger().SetGoal(context.Background(), m.goalInput.Value())
		if errors.Is(err, stats.ErrEmptyGoal) {
			return m, nil
		}
		if err != nil {
			logErrf("failed to save study goal: %v", err)
		}
		m.goal = goal
		m.editingGoal = false
		m.goalInput.Blur()
		return m, nil
	case tea.KeyEsc:
		// The first-run prompt cannot be dismissed without a goal.
		if m.goal != "" {
			m.editingGoal = false
			m.goalInput.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}

func (m *Model) startGoalInput() tea.Cmd {
	m.editingGoal = true
	m.goalInput.SetValue(m.goal)
	m.goalInput.CursorEnd()
	return m.goalInput.Focus()
}

func (m *Model) refresh() {
	m.view = m.ctrl.WeekView(context.Background())
	m.keys.sync(m.ctrl.State(), m.ctrl.Elapsed())
}

func (m *Model) quit() tea.Cmd {
	m.ctrl.Close()
	return tea.Quit
}

// Close closes the store opened by Init, if any.
func (m *Model) Close() error {
	if m.kv == nil {
		return nil
	}
	err := m.kv.Close()
	m.kv = nil
	return err
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func logErrf(format string, args ...any) {
	// The terminal belongs to the TUI; the CLI points log at a file.
	log.Printf(format, args...)
}
