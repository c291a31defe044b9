// Command vikey-tty is an interactive terminal demo of the engine: it
// grabs raw keystrokes, feeds them through a session and repaints the
// line with the composed Vietnamese text.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eiannone/keyboard"

	"vikey/internal/config"
	"vikey/internal/keys"
	"vikey/pkg/ime"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vikey-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to an INI profile")
	method := flag.String("method", "", "override the typing method (telex, vni)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	switch *method {
	case "":
	case "telex", "vni":
		cfg.Method = *method
	default:
		return fmt.Errorf("unknown method %q", *method)
	}

	session := ime.NewSession(cfg)

	if err := keyboard.Open(); err != nil {
		return err
	}
	defer keyboard.Close()

	fmt.Printf("vikey %s — type Vietnamese, Enter for a new line, Ctrl+C to quit\n", cfg.Method)

	var line []rune
	repaint(line)
	for {
		ch, key, err := keyboard.GetKey()
		if err != nil {
			return err
		}

		switch key {
		case keyboard.KeyCtrlC:
			fmt.Println()
			return nil
		case keyboard.KeyEnter:
			session.ProcessKey(keys.Return, false, false, false)
			fmt.Println()
			line = line[:0]
			repaint(line)
			continue
		}

		code, caps, shift, ok := translate(ch, key)
		if !ok {
			continue
		}
		res := session.ProcessKey(code, caps, false, shift)
		line = apply(line, res, code, caps)
		repaint(line)
	}
}

// translate maps a terminal key event to an engine keycode.
func translate(ch rune, key keyboard.Key) (uint16, bool, bool, bool) {
	switch key {
	case keyboard.KeySpace:
		return keys.Space, false, false, true
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		return keys.Backspace, false, false, true
	case keyboard.KeyEsc:
		return keys.Esc, false, false, true
	case keyboard.KeyTab:
		return keys.Tab, false, false, true
	case keyboard.KeyArrowLeft:
		return keys.Left, false, false, true
	case keyboard.KeyArrowRight:
		return keys.Right, false, false, true
	case keyboard.KeyArrowUp:
		return keys.Up, false, false, true
	case keyboard.KeyArrowDown:
		return keys.Down, false, false, true
	}
	if ch == 0 || ch > 0x7F {
		return 0, false, false, false
	}
	b := byte(ch)
	caps := b >= 'A' && b <= 'Z'
	code, ok := keys.FromASCII(b)
	if !ok {
		return 0, false, false, false
	}
	return code, caps, false, true
}

// apply performs the edit instruction on the local line the way a host
// text field would.
func apply(line []rune, res ime.Result, code uint16, caps bool) []rune {
	if res.Backspaces > len(line) {
		res.Backspaces = len(line)
	}
	line = line[:len(line)-res.Backspaces]
	line = append(line, []rune(res.Insert)...)
	if res.Consumed {
		return line
	}
	if code == keys.Backspace {
		if len(line) > 0 {
			line = line[:len(line)-1]
		}
		return line
	}
	if lit := keys.ToRune(code, caps); lit != 0 {
		line = append(line, lit)
	}
	return line
}

func repaint(line []rune) {
	fmt.Printf("\r\x1b[K> %s", string(line))
}
