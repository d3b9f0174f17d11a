package app

import tea "charm.land/bubbletea/v2"

// shortcutsModal shows the key sheet for the context it was opened from.
type shortcutsModal struct {
	panel    *modalPanel
	renderer *HotkeyRenderer
}

func newShortcutsModal(renderer *HotkeyRenderer) *shortcutsModal {
	return &shortcutsModal{
		panel:    newModalPanel(ModalShortcuts, "Shortcuts", ContextShortcuts, ""),
		renderer: renderer,
	}
}

func (s *shortcutsModal) descriptor() ModalDescriptor {
	return ModalDescriptor{
		ID:      ModalShortcuts,
		Context: ContextShortcuts,
		Capability: ModalCapability{
			Show:      s.Show,
			Hide:      s.panel.Hide,
			HandleKey: s.HandleKey,
		},
	}
}

func (s *shortcutsModal) Show(seed ContextTag) tea.Cmd {
	if seed == "" {
		seed = ContextGlobal
	}
	s.panel.title = "Shortcuts · " + contextTitle(seed)
	s.panel.Show(seed)
	s.refresh()
	return nil
}

// refresh re-renders the sheet, for example after the panel was resized.
func (s *shortcutsModal) refresh() {
	if !s.panel.Visible() {
		return
	}
	s.panel.SetContent(renderMarkdown(s.renderer.Markdown(s.panel.seed), s.panel.BodyWidth()))
}

func (s *shortcutsModal) HandleKey(ev KeyEvent) (bool, tea.Cmd) {
	if ev.Modifiers.Chord() {
		return false, nil
	}
	switch {
	case ev.Is("j"), ev.Is("down"):
		s.panel.Scroll(1)
	case ev.Is("k"), ev.Is("up"):
		s.panel.Scroll(-1)
	default:
		return false, nil
	}
	return true, nil
}
