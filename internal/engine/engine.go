// Package engine orchestrates the typing session: it owns the
// composition buffer, raw keystroke log, English guard, word history and
// configuration, and turns each keystroke into an edit instruction for
// the host.
package engine

import (
	"vikey/internal/buffer"
	"vikey/internal/config"
	"vikey/internal/english"
	"vikey/internal/inputmethod"
	"vikey/internal/keys"
	"vikey/internal/phonotactic"
	"vikey/internal/shortcut"
	"vikey/internal/transform"
)

// Result is the edit instruction for one keystroke. The host first sends
// Backspaces deletions, then types Insert. Consumed reports whether the
// engine swallowed the keystroke; when false the host delivers the key
// itself after applying the instruction.
type Result struct {
	Backspaces int
	Insert     string
	Consumed   bool

	// Committed carries the finished word when this keystroke sealed
	// one, for hosts that convert output encodings at commit time.
	Committed string
}

const historyDepth = 8

// wordState is a committed word, kept so backspacing over the separator
// reopens it for editing.
type wordState struct {
	buf           buffer.Buffer
	raw           buffer.RawLog
	display       []rune
	literal       bool
	consumedFirst bool
}

// Engine is a single typing session. Not safe for concurrent use; the
// facade serializes access.
type Engine struct {
	cfg    config.Config
	method inputmethod.Method

	buf     buffer.Buffer
	raw     buffer.RawLog
	display []rune

	// literal marks a word whose keystrokes pass through untransformed,
	// after an escape restore or an English-guard restore.
	literal bool
	// consumedFirst records that the word's first raw keystroke was
	// swallowed by a transform (standalone w), so the guard must not
	// score it as a word opener.
	consumedFirst bool
	// breaks counts the separators typed since the last commit. The
	// committed word reopens only once backspace has eaten all of them.
	breaks int

	guard     *english.Guard
	shortcuts *shortcut.Table
	history   []wordState
}

// New builds an engine from a configuration and the default shortcut
// table.
func New(cfg config.Config) *Engine {
	e := &Engine{shortcuts: shortcut.NewDefaultTable()}
	e.SetConfig(cfg)
	return e
}

// SetConfig swaps the configuration and resets the in-progress word;
// mid-word option flips would leave the buffers inconsistent.
func (e *Engine) SetConfig(cfg config.Config) {
	e.cfg = cfg
	e.method = inputmethod.Telex
	if cfg.Method == "vni" {
		e.method = inputmethod.VNI
	}
	e.guard = english.NewGuard(cfg.EnglishSuppress, cfg.EnglishRestore)
	e.reset(true)
}

// Config returns the active configuration.
func (e *Engine) Config() config.Config { return e.cfg }

// Shortcuts exposes the abbreviation table for management calls.
func (e *Engine) Shortcuts() *shortcut.Table { return e.shortcuts }

// Display returns the word currently composed on screen.
func (e *Engine) Display() string { return string(e.display) }

// ProcessKey handles one keystroke and returns the edit instruction.
func (e *Engine) ProcessKey(key uint16, caps, ctrl, shift bool) Result {
	if ctrl {
		// Control chords belong to the host application.
		e.reset(true)
		return Result{}
	}
	switch key {
	case keys.Backspace:
		return e.backspace(shift)
	case keys.Esc:
		return e.escape()
	}
	if keys.IsBreak(key) {
		return e.commit(key)
	}
	if !inputmethod.IsModifierKey(e.method, key) && !keys.IsLetter(key) {
		// Digits outside the method, and anything unclassified, end
		// the word the way punctuation does.
		return e.commit(key)
	}
	if e.buf.Full() || e.raw.Full() {
		// The logs are saturated; seal the word so screen and state
		// never drift apart. Further keys land as plain text.
		return e.commit(key)
	}
	return e.word(key, caps, inputmethod.Lookup(e.method, key))
}

// word handles letters and method keys inside the current word.
func (e *Engine) word(key uint16, caps bool, act inputmethod.Action) Result {
	e.breaks = 0
	prev := snapshot(e.display)

	suppressed := e.cfg.EnglishGuard && e.guard.Suppressed()
	if act.Kind == inputmethod.None || e.literal || suppressed {
		return e.pushLiteral(key, caps, prev)
	}

	saved := e.buf
	outcome := e.applyAction(act, key)

	if outcome == transform.Applied && !e.cfg.FreeTone && !phonotactic.Valid(e.letters()) {
		e.buf = saved
		outcome = transform.Rejected
	}

	switch outcome {
	case transform.Applied:
		e.raw.Push(key, caps)
		transform.RepositionTone(&e.buf, e.cfg.ModernTone)
		e.display = e.bufRunes()
		e.observe()
		if r, ok := e.guardRestore(prev); ok {
			return r
		}
		bs, ins := diff(prev, e.display)
		return Result{Backspaces: bs, Insert: ins, Consumed: true}

	case transform.Reverted:
		e.raw.Push(key, caps)
		if !keys.IsLetter(key) {
			// A doubled VNI digit: undo the mark, let the digit land
			// as text and close the word around it.
			e.display = e.bufRunes()
			return e.commitFrom(prev, key)
		}
		e.appendChar(key, caps)
		e.display = e.bufRunes()
		e.observe()
		if r, ok := e.guardRestore(prev); ok {
			return r
		}
		bs, ins := diff(prev, e.display)
		return Result{Backspaces: bs, Insert: ins, Consumed: true}

	default:
		if key == keys.W && e.method == inputmethod.Telex &&
			e.cfg.WShortcut && e.buf.Empty() {
			e.buf.Push(buffer.Char{Key: keys.U, Caps: caps, Mod: buffer.ModHorn})
			e.raw.Push(key, caps)
			e.consumedFirst = true
			e.display = e.bufRunes()
			e.observe()
			bs, ins := diff(prev, e.display)
			return Result{Backspaces: bs, Insert: ins, Consumed: true}
		}
		if !keys.IsLetter(key) {
			return e.commit(key)
		}
		return e.pushLiteral(key, caps, prev)
	}
}

func (e *Engine) applyAction(act inputmethod.Action, key uint16) transform.Outcome {
	switch act.Kind {
	case inputmethod.Tone:
		return transform.ApplyTone(&e.buf, act.Tone, e.cfg.ModernTone)
	case inputmethod.ClearTone:
		return transform.ClearTone(&e.buf)
	case inputmethod.Stroke:
		return transform.ApplyStroke(&e.buf)
	case inputmethod.Modifier:
		switch {
		case act.Mod == buffer.ModCircumflex && e.method == inputmethod.Telex:
			return transform.ApplyCircumflex(&e.buf, key)
		case act.Mod == buffer.ModCircumflex:
			return transform.ApplyCircumflex(&e.buf, keys.Invalid)
		case act.Mod == buffer.ModBreve:
			return transform.ApplyBreve(&e.buf)
		case e.method == inputmethod.Telex:
			return transform.ApplyHornOrBreve(&e.buf)
		default:
			return transform.ApplyHorn(&e.buf)
		}
	}
	return transform.Rejected
}

// pushLiteral lands the keystroke as plain text. Letters join the buffer;
// digits in literal words only join the display and raw log.
func (e *Engine) pushLiteral(key uint16, caps bool, prev []rune) Result {
	lit := keys.ToRune(key, caps)
	if lit == 0 {
		return Result{}
	}
	e.raw.Push(key, caps)
	if keys.IsLetter(key) {
		e.appendChar(key, caps)
		e.observe()
		if r, ok := e.guardRestore(prev); ok {
			return r
		}
	}
	e.display = append(e.display, lit)
	return Result{}
}

// appendChar pushes a plain letter and reruns the growth rules: the ưo
// compound and tone position both depend on what just landed.
func (e *Engine) appendChar(key uint16, caps bool) {
	e.buf.Push(buffer.NewChar(key, caps))
	transform.NormalizeCompound(&e.buf)
	transform.RepositionTone(&e.buf, e.cfg.ModernTone)
}

// observe feeds the word's current shape to the English guard.
func (e *Engine) observe() {
	if !e.cfg.EnglishGuard {
		return
	}
	e.guard.Observe(e.letters(), e.rawFirst(), e.buf.HasTransforms())
}

// guardRestore checks whether the guard just condemned a word that is
// already marked on screen; if so the literal keystrokes come back.
func (e *Engine) guardRestore(prev []rune) (Result, bool) {
	if !e.cfg.EnglishGuard || !e.guard.Suppressed() || !e.buf.HasTransforms() {
		return Result{}, false
	}
	e.restoreLiteral()
	bs, ins := diff(prev, e.display)
	return Result{Backspaces: bs, Insert: ins, Consumed: true}, true
}

// restoreLiteral rewinds the word to its raw keystrokes.
func (e *Engine) restoreLiteral() {
	e.display = e.rawRunes()
	e.buf.Clear()
	for _, ks := range e.raw.Keystrokes() {
		if keys.IsLetter(ks.Key) {
			e.buf.Push(buffer.NewChar(ks.Key, ks.Caps))
		}
	}
	e.literal = true
	e.consumedFirst = false
}

// escape restores the word's literal keystrokes, or clears state when
// there is nothing to restore.
func (e *Engine) escape() Result {
	restorable := e.cfg.EscRestore && !e.literal &&
		(e.buf.HasTransforms() || e.consumedFirst)
	if !restorable {
		e.reset(false)
		return Result{}
	}
	prev := snapshot(e.display)
	e.restoreLiteral()
	bs, ins := diff(prev, e.display)
	return Result{Backspaces: bs, Insert: ins, Consumed: true}
}

// backspace edits the word. Shift+Backspace hands the whole word delete
// to the host and drops all state.
func (e *Engine) backspace(shift bool) Result {
	if shift && e.cfg.ShiftBackspace {
		e.reset(true)
		return Result{}
	}
	if len(e.display) == 0 {
		// Each backspace eats one separator; the committed word reopens
		// only when the last separator goes.
		if e.breaks > 0 {
			e.breaks--
			if e.breaks == 0 {
				if n := len(e.history); n > 0 {
					st := e.history[n-1]
					e.history = e.history[:n-1]
					e.buf, e.raw, e.display = st.buf, st.raw, st.display
					e.literal, e.consumedFirst = st.literal, st.consumedFirst
					e.recompute()
				}
			}
		}
		return Result{}
	}

	if e.raw.Empty() {
		// An expanded shortcut has display text with no keystroke
		// provenance; only the display shrinks.
		e.display = e.display[:len(e.display)-1]
		e.recompute()
		return Result{}
	}
	ks := e.raw.Keystrokes()
	last := ks[len(ks)-1]
	tail := e.buf.Last()
	if tail != nil && tail.Plain() && tail.Key == last.Key && !e.buf.HasTransforms() {
		// Plain word, plain char: undoing the keystroke is exactly the
		// host's native delete.
		e.display = e.display[:len(e.display)-1]
		e.buf.Pop()
		e.raw.Pop()
		e.recompute()
		return Result{}
	}
	if e.literal {
		// Literal words keep raw and display one-to-one.
		e.display = e.display[:len(e.display)-1]
		if keys.IsLetter(last.Key) {
			e.buf.Pop()
		}
		e.raw.Pop()
		e.recompute()
		return Result{}
	}

	// A keystroke may have landed as a mark rather than a character, so
	// backspace undoes the last keystroke: drop it and replay the rest of
	// the log from an empty word. Typing "dd" then backspace leaves "d".
	prev := snapshot(e.display)
	rest := make([]buffer.Keystroke, len(ks)-1)
	copy(rest, ks[:len(ks)-1])
	e.reset(false)
	for _, k := range rest {
		e.word(k.Key, k.Caps, inputmethod.Lookup(e.method, k.Key))
	}
	bs, ins := diff(prev, e.display)
	return Result{Backspaces: bs, Insert: ins, Consumed: true}
}

// recompute refreshes guard state after an edit.
func (e *Engine) recompute() {
	if !e.cfg.EnglishGuard {
		return
	}
	e.guard.Recompute(e.letters(), e.rawFirst(), e.buf.HasTransforms())
}

// commit seals the word at a break key. Shortcut expansion rewrites the
// word in place; otherwise the break passes through untouched.
func (e *Engine) commit(key uint16) Result {
	return e.commitFrom(e.display, key)
}

// commitFrom seals the word, diffing the final rendering against what
// the screen currently shows.
func (e *Engine) commitFrom(prev []rune, key uint16) Result {
	committed := string(e.display)

	if nav(key) {
		// The cursor moved; stale word positions must not be reopened
		// later.
		bs, ins := diff(prev, e.display)
		e.reset(true)
		return Result{Backspaces: bs, Insert: ins, Committed: committed}
	}

	if committed != "" {
		lit := keys.ToRune(key, false)
		if e.cfg.Shortcuts && lit != 0 && !keys.IsLetter(key) {
			if exp, ok := e.shortcuts.Lookup(committed, e.cfg.Method); ok {
				target := append([]rune(exp), lit)
				bs, ins := diff(prev, target)
				e.pushExpandedHistory(exp)
				e.reset(false)
				e.breaks = 1
				return Result{Backspaces: bs, Insert: ins, Consumed: true, Committed: exp}
			}
		}
		e.pushHistory()
	}
	bs, ins := diff(prev, e.display)
	e.reset(false)
	if committed != "" {
		e.breaks = 1
	} else if e.breaks > 0 {
		e.breaks++
	}
	return Result{Backspaces: bs, Insert: ins, Committed: committed}
}

func (e *Engine) pushHistory() {
	e.appendHistory(wordState{
		buf:           e.buf,
		raw:           e.raw,
		display:       snapshot(e.display),
		literal:       e.literal,
		consumedFirst: e.consumedFirst,
	})
}

// pushExpandedHistory records the word as its expansion. The expansion
// text has no keystroke provenance, so the state is a literal word with
// empty logs; reopening it allows plain editing only.
func (e *Engine) pushExpandedHistory(exp string) {
	e.appendHistory(wordState{
		display: []rune(exp),
		literal: true,
	})
}

func (e *Engine) appendHistory(st wordState) {
	if len(e.history) == historyDepth {
		copy(e.history, e.history[1:])
		e.history = e.history[:historyDepth-1]
	}
	e.history = append(e.history, st)
}

func nav(key uint16) bool {
	switch key {
	case keys.Left, keys.Right, keys.Up, keys.Down:
		return true
	}
	return false
}

// reset clears the in-progress word; full resets also drop the word
// history. Full reset triggers: control chords, navigation keys,
// Shift+Backspace, configuration changes.
func (e *Engine) reset(full bool) {
	e.buf.Clear()
	e.raw.Clear()
	e.display = e.display[:0]
	e.literal = false
	e.consumedFirst = false
	e.guard.Reset()
	if full {
		e.history = e.history[:0]
		e.breaks = 0
	}
}

func (e *Engine) letters() []uint16 {
	out := make([]uint16, 0, e.buf.Len())
	for _, c := range e.buf.Chars() {
		out = append(out, c.Key)
	}
	return out
}

func (e *Engine) rawFirst() uint16 {
	if e.consumedFirst || e.raw.Empty() {
		return keys.Invalid
	}
	return e.raw.Keystrokes()[0].Key
}

func (e *Engine) bufRunes() []rune {
	return e.buf.Runes(e.display[:0])
}

func (e *Engine) rawRunes() []rune {
	return e.raw.Runes(make([]rune, 0, e.raw.Len()))
}

func snapshot(rs []rune) []rune {
	out := make([]rune, len(rs))
	copy(out, rs)
	return out
}

// diff aligns the old and new renderings on their common prefix and
// returns the deletions plus insertion that turn one into the other.
func diff(old, new []rune) (int, string) {
	p := 0
	for p < len(old) && p < len(new) && old[p] == new[p] {
		p++
	}
	return len(old) - p, string(new[p:])
}
