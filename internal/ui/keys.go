package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	NextType key.Binding
	PrevType key.Binding

	// Build actions
	Pick     key.Binding
	Remove   key.Binding
	Reset    key.Binding
	Evaluate key.Binding
	Seed     key.Binding

	// Extras
	OpenPart  key.Binding
	CopyBuild key.Binding
	Filter    key.Binding
	Escape    key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// Keys is the default keybinding configuration
var Keys = KeyMap{
	// Navigation
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	NextType: key.NewBinding(
		key.WithKeys("tab", "l", "right"),
		key.WithHelp("tab/l", "next type"),
	),
	PrevType: key.NewBinding(
		key.WithKeys("shift+tab", "h", "left"),
		key.WithHelp("shift+tab/h", "previous type"),
	),

	// Build actions
	Pick: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select part"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove selection"),
	),
	Reset: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset build"),
	),
	Evaluate: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "check compatibility"),
	),
	Seed: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "seed catalog"),
	),

	// Extras
	OpenPart: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "search on PCPartPicker"),
	),
	CopyBuild: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy build summary"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),

	// General
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns keybindings for the short help view
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End, k.NextType, k.PrevType},
		{k.Pick, k.Remove, k.Reset, k.Evaluate, k.Seed},
		{k.OpenPart, k.CopyBuild, k.Filter, k.Escape},
		{k.Help, k.Quit},
	}
}
