package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyConfigFile is the TOML layout of a keymap
//
//	[keys]
//	f5 = "reset_score"
//	[runes]
//	space = "jump"
//	j = "none"
type keyConfigFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// specialKeysByName indexes tcell key names in lower case ("up", "f1", "ctrl-c")
var specialKeysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections/keys present in TOML are populated
// Returns error on unknown sections, action names, key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyConfigFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown keys %v", undecoded)
	}

	kt := &KeyTable{}

	if raw.Keys != nil {
		kt.SpecialKeys = make(map[tcell.Key]KeyEntry, len(raw.Keys))
		for keyStr, actionName := range raw.Keys {
			k, ok := specialKeysByName[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
			}
			entry, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = entry
		}
	}

	if raw.Runes != nil {
		kt.Runes = make(map[rune]KeyEntry, len(raw.Runes))
		for keyStr, actionName := range raw.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			entry, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = entry
		}
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with BehaviorNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v.Behavior == BehaviorNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v.Behavior == BehaviorNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}

	return result
}
