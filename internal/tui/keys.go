package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/rumo/internal/timer"
)

type keyMap struct {
	Toggle  key.Binding
	Reset   key.Binding
	Stop    key.Binding
	Goal    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "iniciar/pausar"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "zerar"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "parar"),
		),
		Goal: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "objetivo"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter", "confirmar"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc", "voltar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "sair"),
		),
	}
}

// sync enables only the bindings valid for state.
func (k *keyMap) sync(state timer.State, elapsed int) {
	confirming := state == timer.ConfirmingStop
	k.Toggle.SetEnabled(!confirming)
	k.Reset.SetEnabled(!confirming)
	k.Stop.SetEnabled(!confirming && elapsed > 0)
	k.Goal.SetEnabled(!confirming)
	k.Confirm.SetEnabled(confirming)
	k.Cancel.SetEnabled(confirming)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Stop, k.Confirm, k.Cancel, k.Goal, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
