package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-runner/engine"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:      {Type: IntentQuit},
			tcell.KeyEscape:     {Type: IntentQuit},
			tcell.KeyF1:         {Type: IntentToggleDebug},
			tcell.KeyUp:         gameIntent(engine.IntentJump),
			tcell.KeyEnter:      gameIntent(engine.IntentStart),
			tcell.KeyBackspace:  gameIntent(engine.IntentMenu),
			tcell.KeyBackspace2: gameIntent(engine.IntentMenu),
		},

		Runes: map[rune]Intent{
			' ': gameIntent(engine.IntentJump),
			'w': gameIntent(engine.IntentJump),
			'k': gameIntent(engine.IntentJump),
			'p': gameIntent(engine.IntentPause),
			'b': gameIntent(engine.IntentMenu),
			'm': {Type: IntentToggleMute},
			'q': {Type: IntentQuit},
		},
	}
}
