package ime

import (
	"bytes"
	"strings"
	"testing"

	"vikey/internal/config"
)

func typeWord(t *testing.T, s *Session, word string) string {
	t.Helper()
	var screen []rune
	for i := 0; i < len(word); i++ {
		r, ok := s.ProcessASCII(word[i], false, false)
		if !ok {
			t.Fatalf("unmapped byte %q", word[i])
		}
		screen = screen[:len(screen)-r.Backspaces]
		screen = append(screen, []rune(r.Insert)...)
		if !r.Consumed {
			screen = append(screen, rune(word[i]))
		}
	}
	return string(screen)
}

func TestSessionComposes(t *testing.T) {
	s := NewDefaultSession()
	if got := typeWord(t, s, "vieejt"); got != "việt" {
		t.Fatalf("screen %q, want việt", got)
	}
	if s.Display() != "việt" {
		t.Fatalf("display %q", s.Display())
	}
}

func TestProcessASCIIUnmappedByte(t *testing.T) {
	s := NewDefaultSession()
	if _, ok := s.ProcessASCII(0x01, false, false); ok {
		t.Fatalf("control byte should be unmapped")
	}
}

func TestResetClearsWord(t *testing.T) {
	s := NewDefaultSession()
	typeWord(t, s, "vie")
	s.Reset()
	if s.Display() != "" {
		t.Fatalf("display %q after reset", s.Display())
	}
}

func TestSetConfigSwitchesMethod(t *testing.T) {
	s := NewDefaultSession()
	cfg := s.Config()
	cfg.Method = "vni"
	s.SetConfig(cfg)
	if got := typeWord(t, s, "viet65"); got != "việt" {
		t.Fatalf("screen %q, want việt", got)
	}
}

func TestEncodeCommitted(t *testing.T) {
	cfg := config.Default()
	cfg.Encoding = "tcvn3"
	s := NewSession(cfg)
	got := s.EncodeCommitted("việt")
	want := []byte{'v', 'i', 0xD6, 't'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestShortcutManagement(t *testing.T) {
	s := NewDefaultSession()
	if err := s.SetShortcut("brb", "quay lại ngay"); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := s.ExportShortcuts(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "brb") {
		t.Fatalf("export missing entry: %s", buf.String())
	}

	s2 := NewDefaultSession()
	if err := s2.ImportShortcuts(&buf); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range s2.Shortcuts() {
		if e.From == "brb" {
			found = true
		}
	}
	if !found {
		t.Fatalf("import lost the entry")
	}
	if !s2.DeleteShortcut("brb") {
		t.Fatalf("delete should report the entry existed")
	}
}
