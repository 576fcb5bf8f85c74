package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nomadcxx/plura/internal/config"
	"github.com/Nomadcxx/plura/internal/focus"
)

// keyMap holds the bindings built from the [keys] config section
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Search   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func newKeyMap(k config.KeyConfig) keyMap {
	return keyMap{
		Up:       binding(k.Up, "move up"),
		Down:     binding(k.Down, "move down"),
		Left:     binding(k.Left, "move left"),
		Right:    binding(k.Right, "move right"),
		Activate: binding(k.Activate, "select"),
		Search:   binding(k.Search, "search"),
		Back:     binding(k.Back, "back"),
		Quit:     binding(k.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	help := ""
	if len(keys) > 0 {
		help = keys[0]
		if help == " " {
			help = "space"
		}
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// command maps a key press to an engine command
func (k keyMap) command(msg tea.KeyMsg) (focus.Command, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return focus.CommandUp, true
	case key.Matches(msg, k.Down):
		return focus.CommandDown, true
	case key.Matches(msg, k.Left):
		return focus.CommandLeft, true
	case key.Matches(msg, k.Right):
		return focus.CommandRight, true
	case key.Matches(msg, k.Activate):
		return focus.CommandActivate, true
	}
	return "", false
}
