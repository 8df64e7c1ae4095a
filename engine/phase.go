package engine

// Phase is the game state machine state
type Phase uint8

const (
	PhaseStart   Phase = iota // Menu; simulation idle, player spins in place
	PhasePlaying              // Full tick pipeline
	PhaseDead                 // Frozen; only run-scoped cosmetics fire
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseDead:
		return "DEAD"
	}
	return "UNKNOWN"
}

// Intent is a discrete input the game reacts to; device mapping belongs to the input collaborator
type Intent uint8

const (
	IntentNone  Intent = iota
	IntentJump         // Single-button: start in menu, jump while playing, restart once the death panel shows
	IntentStart        // Start or restart regardless of the death panel
	IntentPause        // Toggle pause while playing
	IntentMenu         // Leave the death screen for the menu
)
