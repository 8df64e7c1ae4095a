package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-runner/engine"
)

func TestLoadKeyConfig(t *testing.T) {
	data := `
[keys]
space = "pause"
j = "jump"
q = "none"

[special_keys]
F2 = "toggle_debug"
down = "menu"
`
	kt, err := LoadKeyConfig([]byte(data))
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	if got := kt.Runes[' ']; got != gameIntent(engine.IntentPause) {
		t.Errorf("Expected space bound to pause, got %+v", got)
	}
	if got := kt.Runes['j']; got != gameIntent(engine.IntentJump) {
		t.Errorf("Expected j bound to jump, got %+v", got)
	}
	if got, ok := kt.Runes['q']; !ok || got.Type != IntentNone {
		t.Errorf("Expected q unbind sentinel, got %+v (present %t)", got, ok)
	}
	if got := kt.SpecialKeys[tcell.KeyF2]; got.Type != IntentToggleDebug {
		t.Errorf("Expected F2 bound to debug, got %+v", got)
	}
	if got := kt.SpecialKeys[tcell.KeyDown]; got != gameIntent(engine.IntentMenu) {
		t.Errorf("Expected Down bound to menu, got %+v", got)
	}
}

func TestLoadKeyConfigUpperCaseRune(t *testing.T) {
	kt, err := LoadKeyConfig([]byte("[keys]\nJ = \"jump\"\n"))
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	m := NewMachineWithTable(MergeKeyTable(DefaultKeyTable(), kt))
	for _, r := range []rune{'j', 'J'} {
		if got := m.Process(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); got != gameIntent(engine.IntentJump) {
			t.Errorf("Expected %q to jump, got %+v", r, got)
		}
	}
}

func TestLoadKeyConfigSparse(t *testing.T) {
	kt, err := LoadKeyConfig([]byte("[keys]\nx = \"jump\"\n"))
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	if kt.SpecialKeys != nil {
		t.Error("Expected absent section to stay nil")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad toml", "[keys\n", "keymap parse"},
		{"unknown action", "[keys]\nx = \"fly\"\n", "unknown action"},
		{"long rune", "[keys]\nxy = \"jump\"\n", "invalid rune key"},
		{"unknown key name", "[special_keys]\nHyper = \"jump\"\n", "unknown key name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override := &KeyTable{
		Runes: map[rune]Intent{
			'q': {},
			'x': gameIntent(engine.IntentJump),
		},
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyF1: {Type: IntentToggleMute},
		},
	}

	merged := MergeKeyTable(base, override)

	if _, ok := merged.Runes['q']; ok {
		t.Error("Expected q to be unbound")
	}
	if merged.Runes['x'] != gameIntent(engine.IntentJump) {
		t.Error("Expected x bound to jump")
	}
	if merged.SpecialKeys[tcell.KeyF1].Type != IntentToggleMute {
		t.Error("Expected F1 rebound to mute")
	}
	if merged.Runes[' '] != gameIntent(engine.IntentJump) {
		t.Error("Expected untouched bindings to survive")
	}

	// Base must not be mutated
	if base.Runes['q'].Type != IntentQuit {
		t.Error("Expected base table untouched")
	}

	m := NewMachineWithTable(merged)
	if got := m.Process(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); got != gameIntent(engine.IntentJump) {
		t.Errorf("Expected merged binding in machine, got %+v", got)
	}
}

func TestActionNamesSorted(t *testing.T) {
	names := ActionNames()
	if len(names) != len(actionRegistry) {
		t.Fatalf("Expected %d names, got %d", len(actionRegistry), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Expected sorted names, got %q before %q", names[i-1], names[i])
		}
	}
}
