package input

import "github.com/lixenwraith/neon-runner/engine"

// IntentType discriminates application-level actions from game intents
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the main loop
	IntentQuit        // Esc, q, Ctrl+C
	IntentToggleMute  // m
	IntentToggleDebug // F1
	IntentResize      // Terminal resize event

	// IntentGame forwards Intent.Game to the simulation
	IntentGame
)

// Intent is the parsed result of one terminal event
type Intent struct {
	Type IntentType
	Game engine.Intent
}

// gameIntent builds a forwarding intent
func gameIntent(g engine.Intent) Intent {
	return Intent{Type: IntentGame, Game: g}
}
