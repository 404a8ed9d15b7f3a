// Package glitch implements the cosmetic text corruption effect. The
// effect is purely visual and independent of the metrics being shown:
// each tick has a small chance of entering glitch mode, and in glitch
// mode each rune has a chance of being swapped for a random symbol.
package glitch

import "math/rand/v2"

// glyphs is the fixed set of replacement symbols.
const glyphs = "!@#$%^&*()_+-=[]{}|;:,.<>?/~"

const (
	// TriggerChance is the per-tick probability of entering glitch mode.
	TriggerChance = 0.05

	// RuneChance is the per-rune replacement probability while glitched.
	RuneChance = 0.30
)

// Transformer applies the glitch effect. The randomness source is
// injectable so tests can drive it deterministically.
type Transformer struct {
	randFloat func() float64
	active    bool
}

// New creates a Transformer. randFloat returns values in [0,1); nil uses
// the default math/rand source.
func New(randFloat func() float64) *Transformer {
	if randFloat == nil {
		randFloat = rand.Float64
	}
	return &Transformer{randFloat: randFloat}
}

// Roll re-rolls glitch mode for the current tick and reports whether the
// effect is now active.
func (t *Transformer) Roll() bool {
	t.active = t.randFloat() < TriggerChance
	return t.active
}

// Active reports whether the effect is active for the current tick.
func (t *Transformer) Active() bool {
	return t.active
}

// Apply returns text with runes randomly replaced when the effect is
// active. When inactive it returns the input unchanged. The rune count is
// always preserved.
func (t *Transformer) Apply(text string) string {
	if !t.active {
		return text
	}

	runes := []rune(text)
	symbols := []rune(glyphs)
	for i := range runes {
		if t.randFloat() < RuneChance {
			runes[i] = symbols[int(t.randFloat()*float64(len(symbols)))]
		}
	}
	return string(runes)
}
