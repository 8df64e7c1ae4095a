package input

import (
	"fmt"
	"maps"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the lowercase reverse of tcell.KeyNames
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keymapFile is the on-disk layout: [keys] binds runes, [special_keys] binds named keys
type keymapFile struct {
	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections present in TOML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var file keymapFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}

	if file.Keys != nil {
		kt.Runes = make(map[rune]Intent, len(file.Keys))
		for keyStr, action := range file.Keys {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = intent
		}
	}

	if file.SpecialKeys != nil {
		kt.SpecialKeys = make(map[tcell.Key]Intent, len(file.SpecialKeys))
		for keyStr, action := range file.SpecialKeys {
			k, ok := keysByName[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[special_keys] unknown key name: %q", keyStr)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[special_keys] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = intent
		}
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases; letters fold to lower case as the machine matches them
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return unicode.ToLower(runes[0]), nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := ActionIntent(name)
	if !ok {
		return Intent{}, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if result.SpecialKeys == nil {
		result.SpecialKeys = make(map[tcell.Key]Intent)
	}
	if result.Runes == nil {
		result.Runes = make(map[rune]Intent)
	}

	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v.Type == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
