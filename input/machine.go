package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-runner/engine"
)

// Machine parses tcell events into intents
// Owned by the main goroutine
type Machine struct {
	keyTable *KeyTable

	// Left button was down on the previous mouse event; a held button jumps once
	buttonDown bool
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// NewMachineWithTable creates a machine over a custom key table
func NewMachineWithTable(kt *KeyTable) *Machine {
	return &Machine{keyTable: kt}
}

// Process maps one event to an intent; unbound events yield IntentNone
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if intent, ok := m.keyTable.Runes[r]; ok {
			return intent
		}
		return Intent{}
	}
	if intent, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return intent
	}
	return Intent{}
}

// processMouse jumps on the press edge of the primary button
func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !m.buttonDown
	m.buttonDown = down
	if pressed {
		return gameIntent(engine.IntentJump)
	}
	return Intent{}
}
