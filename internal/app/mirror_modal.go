package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

var mirrorAffirmations = []string{
	"You showed up today.",
	"Slow is smooth, smooth is fast.",
	"Be kind to the person in the mirror.",
}

// mirrorModal has no camera in a terminal. Its key handler runs inline from
// the router.
type mirrorModal struct {
	panel   *modalPanel
	flipped bool
	notify  func(level toastLevel, message string) tea.Cmd
}

func newMirrorModal(notify func(toastLevel, string) tea.Cmd) *mirrorModal {
	m := &mirrorModal{
		panel:  newModalPanel(ModalMirror, "Mirror", ContextMirror, ""),
		notify: notify,
	}
	m.render()
	return m
}

func (m *mirrorModal) descriptor() ModalDescriptor {
	return ModalDescriptor{
		ID:      ModalMirror,
		Context: ContextMirror,
		Capability: ModalCapability{
			Show:      m.panel.Show,
			Hide:      m.panel.Hide,
			HandleKey: m.HandleKey,
		},
	}
}

func (m *mirrorModal) HandleKey(ev KeyEvent) (bool, tea.Cmd) {
	if ev.Modifiers.Chord() {
		return false, nil
	}
	switch {
	case ev.Is("c"):
		if m.notify == nil {
			return true, nil
		}
		return true, m.notify(toastLevelError, "capture failed: no camera available in a terminal")
	case ev.Is("f"):
		m.flipped = !m.flipped
		m.render()
		return true, nil
	}
	return false, nil
}

func (m *mirrorModal) render() {
	lines := make([]string, len(mirrorAffirmations))
	for i, line := range mirrorAffirmations {
		if m.flipped {
			line = reverseRunes(line)
		}
		lines[i] = line
	}
	m.panel.SetContent(strings.Join(lines, "\n\n"))
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
