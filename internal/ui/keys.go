package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause       key.Binding
	Reset       key.Binding
	MoreTerms   key.Binding
	FewerTerms  key.Binding
	Faster      key.Binding
	Slower      key.Binding
	Family      key.Binding
	Rectangular key.Binding
	Sawtooth    key.Binding
	Grid        key.Binding
	Wave        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause:       key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pause")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		MoreTerms:   key.NewBinding(key.WithKeys("right", "l", "+", "="), key.WithHelp("→", "terms+")),
		FewerTerms:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "terms-")),
		Faster:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "faster")),
		Slower:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "slower")),
		Family:      key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "waveform")),
		Rectangular: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "rectangular")),
		Sawtooth:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sawtooth")),
		Grid:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
		Wave:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wave")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Reset, k.FewerTerms, k.MoreTerms, k.Faster, k.Slower, k.Family, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Reset, k.Quit},
		{k.FewerTerms, k.MoreTerms, k.Faster, k.Slower},
		{k.Family, k.Rectangular, k.Sawtooth},
		{k.Grid, k.Wave},
	}
}
