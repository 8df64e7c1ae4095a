package input

import (
	"sort"

	"github.com/lixenwraith/neon-runner/engine"
)

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": {},

	// System
	"quit":         {Type: IntentQuit},
	"toggle_mute":  {Type: IntentToggleMute},
	"toggle_debug": {Type: IntentToggleDebug},

	// Game
	"jump":  gameIntent(engine.IntentJump),
	"start": gameIntent(engine.IntentStart),
	"pause": gameIntent(engine.IntentPause),
	"menu":  gameIntent(engine.IntentMenu),
}

// ActionIntent resolves a canonical action name
// Returns zero Intent and false if name is unknown
func ActionIntent(name string) (Intent, bool) {
	intent, ok := actionRegistry[name]
	return intent, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
