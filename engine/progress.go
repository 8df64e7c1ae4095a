package engine

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/lixenwraith/neon-runner/config"
	"github.com/lixenwraith/neon-runner/parameter"
)

// KeyValueStore is the persistent store collaborator
// Get reports false for absent keys; Set errors are the store's failure, not the game's
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Progress is what the store holds across runs
type Progress struct {
	BestScore int
	Currency  int
	Premium   bool
	Skins     []string
	Equipped  string
}

// LoadProgress reads progress; absent or malformed values fall back to defaults
func LoadProgress(kv KeyValueStore, keys config.StoreConfig) Progress {
	p := Progress{
		BestScore: readInt(kv, keys.BestScoreKey),
		Currency:  readInt(kv, keys.CurrencyKey),
		Skins:     []string{parameter.DefaultSkin},
		Equipped:  parameter.DefaultSkin,
	}

	if raw, ok := kv.Get(keys.PremiumKey); ok {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			log.Printf("progress: malformed %s=%q, using false", keys.PremiumKey, raw)
		}
		p.Premium = val
	}

	if raw, ok := kv.Get(keys.SkinsKey); ok {
		var skins []string
		if err := json.Unmarshal([]byte(raw), &skins); err != nil || len(skins) == 0 {
			log.Printf("progress: malformed %s=%q, using default skins", keys.SkinsKey, raw)
		} else {
			p.Skins = skins
		}
	}

	if raw, ok := kv.Get(keys.EquippedKey); ok && raw != "" {
		if p.Owns(raw) {
			p.Equipped = raw
		} else {
			log.Printf("progress: equipped skin %q not unlocked, using %q", raw, p.Skins[0])
			p.Equipped = p.Skins[0]
		}
	}
	return p
}

// Owns reports whether skin is unlocked
func (p Progress) Owns(skin string) bool {
	for _, s := range p.Skins {
		if s == skin {
			return true
		}
	}
	return false
}

func readInt(kv KeyValueStore, key string) int {
	raw, ok := kv.Get(key)
	if !ok {
		return 0
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		log.Printf("progress: malformed %s=%q, using 0", key, raw)
		return 0
	}
	return val
}

// SaveRunResult writes the new currency total and the best score if it improved
// improved is set when the score beat the stored best; the error is the first failed write
func SaveRunResult(kv KeyValueStore, keys config.StoreConfig, p Progress, score, earned int) (Progress, bool, error) {
	var firstErr error
	improved := score > p.BestScore

	if improved {
		p.BestScore = score
		if err := kv.Set(keys.BestScoreKey, strconv.Itoa(score)); err != nil {
			firstErr = err
		}
	}

	if earned > 0 {
		p.Currency += earned
		if err := kv.Set(keys.CurrencyKey, strconv.Itoa(p.Currency)); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return p, improved, firstErr
}
