package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

type Modifiers struct {
	Shift bool
	Ctrl  bool
	Meta  bool
	Alt   bool
}

// Chord reports whether a modifier that turns the key into an OS or terminal
// chord is held.
func (m Modifiers) Chord() bool {
	return m.Ctrl || m.Meta || m.Alt
}

// KeyEvent is a single key press as seen by the router. Key holds the
// unmodified key name ("j", "?", "esc", "enter", "down").
type KeyEvent struct {
	Key       string
	Modifiers Modifiers
	Target    FocusTarget

	raw tea.KeyPressMsg
}

func NewKeyEvent(msg tea.KeyPressMsg, target FocusTarget) KeyEvent {
	key := msg.Key()
	mods := Modifiers{
		Shift: key.Mod.Contains(tea.ModShift),
		Ctrl:  key.Mod.Contains(tea.ModCtrl),
		Meta:  key.Mod.Contains(tea.ModMeta) || key.Mod.Contains(tea.ModSuper),
		Alt:   key.Mod.Contains(tea.ModAlt),
	}
	name := key.Text
	if name == "" || name == " " || mods.Chord() {
		name = tea.Key{Code: key.Code, BaseCode: key.BaseCode}.Keystroke()
	}
	return KeyEvent{Key: name, Modifiers: mods, Target: target, raw: msg}
}

func (e KeyEvent) normalized() string {
	return strings.ToLower(strings.TrimSpace(e.Key))
}

// Is reports whether the event's key matches name, ignoring case.
func (e KeyEvent) Is(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && strings.EqualFold(strings.TrimSpace(e.Key), name)
}

// Msg returns the originating key press.
func (e KeyEvent) Msg() tea.KeyPressMsg {
	return e.raw
}
