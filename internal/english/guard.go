// Package english detects when the user has drifted into typing English
// so the engine can stop transforming and hand the raw keystrokes back.
//
// Evidence is collected per word as a score in [0,100]. While a word
// grows the score only rises; it is recomputed from scratch after edits
// and drops to zero the moment the buffer empties.
package english

// Guard holds the per-word suppression state. The zero value is unusable;
// construct with NewGuard.
type Guard struct {
	suppressAt int
	restoreAt  int

	score      int
	suppressed bool
}

// Default thresholds. Suppression needs strong evidence; once active it
// sticks until the evidence mostly collapses.
const (
	DefaultSuppressAt = 90
	DefaultRestoreAt  = 50
)

// NewGuard returns a guard with the given hysteresis thresholds. Values
// outside [0,100] fall back to the defaults.
func NewGuard(suppressAt, restoreAt int) *Guard {
	if suppressAt <= 0 || suppressAt > 100 {
		suppressAt = DefaultSuppressAt
	}
	if restoreAt < 0 || restoreAt > 100 {
		restoreAt = DefaultRestoreAt
	}
	if restoreAt > suppressAt {
		restoreAt = suppressAt
	}
	return &Guard{suppressAt: suppressAt, restoreAt: restoreAt}
}

// Observe scores the grown word and folds it into the state. The score is
// monotonic across Observe calls; hasDiacritics discounts the evidence,
// since committed Vietnamese marks argue against English intent.
func (g *Guard) Observe(seq []uint16, rawFirst uint16, hasDiacritics bool) {
	if len(seq) == 0 {
		g.Reset()
		return
	}
	s := g.rate(seq, rawFirst, hasDiacritics)
	if s > g.score {
		g.score = s
	}
	g.update()
}

// Recompute rebuilds the score from scratch. Used after backspace edits,
// where the word shrank and old evidence may no longer hold.
func (g *Guard) Recompute(seq []uint16, rawFirst uint16, hasDiacritics bool) {
	if len(seq) == 0 {
		g.Reset()
		return
	}
	g.score = g.rate(seq, rawFirst, hasDiacritics)
	g.update()
}

func (g *Guard) rate(seq []uint16, rawFirst uint16, hasDiacritics bool) int {
	s := Score(seq, rawFirst)
	if hasDiacritics {
		s -= diacriticsPenalty
		if s < 0 {
			s = 0
		}
	}
	return s
}

func (g *Guard) update() {
	if g.score >= g.suppressAt {
		g.suppressed = true
	} else if g.suppressed && g.score < g.restoreAt {
		g.suppressed = false
	}
}

// Suppressed reports whether transforms should be withheld.
func (g *Guard) Suppressed() bool { return g.suppressed }

// Score returns the current evidence level.
func (g *Guard) Score() int { return g.score }

// Reset clears all state at a word boundary.
func (g *Guard) Reset() {
	g.score = 0
	g.suppressed = false
}
