// Package ime is the host-facing surface of the input engine. It wraps
// the session engine behind panic isolation and serialized access, and
// exposes configuration, shortcut management and output encoding.
//
// A host feeds every keystroke through ProcessKey and applies the
// returned edit instruction to its text field. Key injection, focus
// tracking and UI belong to the host.
package ime

import (
	"io"
	"sync"

	"vikey/internal/config"
	"vikey/internal/engine"
	"vikey/internal/keys"
	"vikey/internal/shortcut"
	"vikey/internal/vnencoding"
)

// Result is the edit instruction for one keystroke: delete Backspaces
// characters before the cursor, type Insert, and deliver the original
// key only when Consumed is false.
type Result struct {
	Backspaces int
	Insert     string
	Consumed   bool
	Committed  string
}

// Session is one typing session. Safe for concurrent use, though hosts
// normally call it from a single event thread.
type Session struct {
	mu  sync.Mutex
	eng *engine.Engine
	enc vnencoding.Encoding
}

// NewSession builds a session from a configuration.
func NewSession(cfg config.Config) *Session {
	return &Session{
		eng: engine.New(cfg),
		enc: encodingFor(cfg.Encoding),
	}
}

// NewDefaultSession builds a session with stock settings.
func NewDefaultSession() *Session {
	return NewSession(config.Default())
}

// LoadSession builds a session from an INI profile; an absent file means
// defaults.
func LoadSession(path string) (*Session, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return NewSession(cfg), nil
}

// ProcessKey handles one keystroke. The engine must never take the host
// down with it: a panic degrades to "not consumed" so the keystroke
// passes through unmodified.
func (s *Session) ProcessKey(key uint16, caps, ctrl, shift bool) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.eng.SetConfig(s.eng.Config())
			s.mu.Unlock()
			res = Result{}
		}
	}()
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.eng.ProcessKey(key, caps, ctrl, shift)
	return Result{
		Backspaces: r.Backspaces,
		Insert:     r.Insert,
		Consumed:   r.Consumed,
		Committed:  r.Committed,
	}
}

// ProcessASCII is a convenience for hosts that deal in characters rather
// than keycodes. Unmapped bytes return a zero Result.
func (s *Session) ProcessASCII(b byte, ctrl, shift bool) (Result, bool) {
	key, ok := keys.FromASCII(b)
	if !ok {
		return Result{}, false
	}
	caps := b >= 'A' && b <= 'Z'
	return s.ProcessKey(key, caps, ctrl, shift), true
}

// Reset drops all session state, as when the host loses focus.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.SetConfig(s.eng.Config())
}

// Config returns the active configuration.
func (s *Session) Config() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Config()
}

// SetConfig swaps the configuration, resetting the in-progress word.
func (s *Session) SetConfig(cfg config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.SetConfig(cfg)
	s.enc = encodingFor(cfg.Encoding)
}

// Display returns the word currently being composed.
func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Display()
}

// EncodeCommitted converts a committed word to the configured output
// encoding. Hosts targeting Unicode can ignore this and use the
// instruction text directly.
func (s *Session) EncodeCommitted(word string) []byte {
	s.mu.Lock()
	enc := s.enc
	s.mu.Unlock()
	return vnencoding.Convert(word, enc)
}

// SetShortcut adds or redefines an abbreviation for both methods.
func (s *Session) SetShortcut(from, to string) error {
	return s.eng.Shortcuts().Set(from, to)
}

// SetScopedShortcut adds or redefines an abbreviation with a method
// scope.
func (s *Session) SetScopedShortcut(e shortcut.Entry) error {
	return s.eng.Shortcuts().SetScoped(e)
}

// DeleteShortcut removes an abbreviation.
func (s *Session) DeleteShortcut(from string) bool {
	return s.eng.Shortcuts().Delete(from)
}

// Shortcuts lists the abbreviations in insertion order.
func (s *Session) Shortcuts() []shortcut.Entry {
	return s.eng.Shortcuts().Entries()
}

// ExportShortcuts writes the abbreviation table as JSON.
func (s *Session) ExportShortcuts(w io.Writer) error {
	return s.eng.Shortcuts().ExportJSON(w)
}

// ImportShortcuts replaces the abbreviation table from JSON, leaving it
// untouched on any error.
func (s *Session) ImportShortcuts(r io.Reader) error {
	return s.eng.Shortcuts().ImportJSON(r)
}

func encodingFor(name string) vnencoding.Encoding {
	switch name {
	case "tcvn3":
		return vnencoding.TCVN3
	case "vni":
		return vnencoding.VNI
	case "cp1258":
		return vnencoding.CP1258
	default:
		return vnencoding.Unicode
	}
}
