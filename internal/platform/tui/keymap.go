// Package tui provides the Bubble Tea front end for the unscramble game,
// including the scoreboard screen and SSH play via Wish.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the game screen.
// Letters always go to the guess field, so no binding uses a bare letter
// while a round is active.
type KeyMap struct {
	Submit    key.Binding
	Skip      key.Binding
	NewGame   key.Binding
	PlayAgain key.Binding
	Scores    key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Skip, k.NewGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Skip},
		{k.NewGame, k.Quit},
	}
}

// gameOverHelp is shown on the final score dialog.
type gameOverHelp KeyMap

func (k gameOverHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayAgain, k.Scores, k.Quit}
}

func (k gameOverHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Skip: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "skip"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new game"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "play again"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab", "s"),
			key.WithHelp("tab/s", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "exit"),
		),
	}
}
