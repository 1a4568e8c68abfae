package game

// State is an immutable snapshot of the game published after every
// accepted round transition. It is a plain value and safe to share.
type State struct {
	CurrentScrambledWord string // Display word for the active round
	CurrentWordCount     int    // 1-based index of the active round
	Score                int    // Cumulative points
	WrongGuess           bool   // Set by a failed submit, cleared by the next round
	IsGameOver           bool   // Terminal until ResetGame
}

// Phase names the engine's state machine state.
type Phase string

const (
	PhaseActive Phase = "active"
	PhaseOver   Phase = "over"
)

// Phase returns the state machine phase this snapshot belongs to.
func (s State) Phase() Phase {
	if s.IsGameOver {
		return PhaseOver
	}
	return PhaseActive
}
