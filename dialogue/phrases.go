package dialogue

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/devilrun/config"
)

// phrasesMu guards defaultTiers: the watcher goroutine swaps tiers in while
// the game loop reads them on every death.
var phrasesMu sync.RWMutex

// Default narrator lines by toxicity tier. Tier 1 is mild mockery; tier 4 is
// open contempt.
var defaultTiers = map[int][]string{
	1: {
		"Did you forget how to jump?",
		"Tutorial is that way ->",
		"Gravity check: Passed. Skill check: Failed.",
		"My grandma plays faster than this.",
		"Wow. Just... wow.",
	},
	2: {
		"Are you playing with your feet?",
		"Maybe try a different game? Like Sudoku?",
		"I'm embarrassed for you.",
		"Lag? No, that was just you.",
		"You're actually trying, aren't you?",
	},
	3: {
		"Just ALT+F4 already. Save your dignity.",
		"I've seen AI play better, and I AM AI.",
		"You are the reason shampoo has instructions.",
		"Is your monitor even on?",
		"This is painful to watch.",
	},
	4: {
		"Error 404: Skill not found.",
		"Go touch grass. Seriously.",
		"I'm going to sleep. Wake me when you get good.",
		"Delete the game. Do it.",
		"You have reached peak failure.",
	},
}

// TierFor maps the attempt count to a toxicity tier: 1-3 attempts is tier 1,
// 4-6 tier 2, 7-10 tier 3, beyond that tier 4.
func TierFor(attempts int) int {
	switch {
	case attempts <= 3:
		return 1
	case attempts <= 6:
		return 2
	case attempts <= 10:
		return 3
	default:
		return config.MaxToxicityTier
	}
}

// phrasesFor returns the live phrase list for a tier. The returned slice is
// never mutated after it lands in the table, so holding it past the lock is
// safe.
func phrasesFor(tier int) []string {
	phrasesMu.RLock()
	defer phrasesMu.RUnlock()
	return defaultTiers[tier]
}

// phraseFile is the optional on-disk override: tier number to phrase list.
type phraseFile struct {
	Tiers map[int][]string `yaml:"tiers"`
}

// LoadPhrases reads a phrase override file. Tiers missing from the file keep
// their defaults; a missing file is not an error.
func LoadPhrases(path string) (map[int][]string, error) {
	out := map[int][]string{}
	phrasesMu.RLock()
	for tier, phrases := range defaultTiers {
		out[tier] = append([]string(nil), phrases...)
	}
	phrasesMu.RUnlock()
	if path == "" {
		return out, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("dialogue: read %s: %w", path, err)
	}
	var pf phraseFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("dialogue: unmarshal %s: %w", path, err)
	}
	for tier, phrases := range pf.Tiers {
		if tier >= 1 && tier <= config.MaxToxicityTier && len(phrases) > 0 {
			out[tier] = phrases
		}
	}
	return out, nil
}
