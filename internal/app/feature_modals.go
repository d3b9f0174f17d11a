package app

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	modalMaxWidth  = 72
	modalMaxHeight = 20
)

// modalPanel is a framed overlay with a scrollable body.
type modalPanel struct {
	id      string
	title   string
	context ContextTag
	body    viewport.Model
	content string
	visible bool
	seed    ContextTag
	width   int
}

func newModalPanel(id, title string, context ContextTag, content string) *modalPanel {
	p := &modalPanel{
		id:      id,
		title:   title,
		context: context,
		body:    viewport.New(viewport.WithWidth(modalMaxWidth-4), viewport.WithHeight(modalMaxHeight-4)),
		width:   modalMaxWidth,
	}
	p.SetContent(content)
	return p
}

func (p *modalPanel) Show(seed ContextTag) tea.Cmd {
	p.visible = true
	p.seed = seed
	p.body.GotoTop()
	return nil
}

func (p *modalPanel) Hide() {
	p.visible = false
}

func (p *modalPanel) Visible() bool {
	return p.visible
}

// Resize fits the panel inside a screen of the given size.
func (p *modalPanel) Resize(screenWidth, screenHeight int) {
	p.width = clampInt(screenWidth-4, 20, modalMaxWidth)
	height := clampInt(screenHeight-4, 6, modalMaxHeight)
	p.body.SetWidth(max(1, p.width-4))
	p.body.SetHeight(max(1, height-4))
	p.SetContent(p.content)
}

func (p *modalPanel) SetContent(content string) {
	p.content = content
	offset := p.body.YOffset()
	p.body.SetContent(content)
	p.body.SetYOffset(offset)
}

func (p *modalPanel) BodyWidth() int {
	return p.body.Width()
}

func (p *modalPanel) Scroll(delta int) {
	p.body.SetYOffset(p.body.YOffset() + delta)
}

func (p *modalPanel) Offset() int {
	return p.body.YOffset()
}

func (p *modalPanel) View() string {
	title := modalTitleStyle.Render(truncateToWidth(p.title, max(1, p.width-4)))
	inner := lipgloss.JoinVertical(lipgloss.Left, title, "", p.body.View())
	return modalFrameStyle.Width(p.width).Render(inner)
}

func (p *modalPanel) capability() ModalCapability {
	return ModalCapability{Show: p.Show, Hide: p.Hide}
}

func (p *modalPanel) descriptor() ModalDescriptor {
	return ModalDescriptor{ID: p.id, Context: p.context, Capability: p.capability()}
}

// bodyScrollListener scrolls the panel with j/k while it is the topmost
// modal and the key is not meant for a text field.
func bodyScrollListener(host *ModalHost, panel *modalPanel) KeyListener {
	return func(ev KeyEvent) tea.Cmd {
		top, ok := host.Top()
		if !ok || top.ID != panel.id || isTypingTarget(ev.Target) || ev.Modifiers.Chord() {
			return nil
		}
		switch {
		case ev.Is("j"), ev.Is("down"):
			panel.Scroll(1)
		case ev.Is("k"), ev.Is("up"):
			panel.Scroll(-1)
		}
		return nil
	}
}

func readingContent() string {
	return strings.Join([]string{
		"Read for twenty minutes without switching tasks.",
		"",
		"Before you start, write down the one question you want the text to answer.",
		"When you finish, note one sentence worth keeping in the journal.",
	}, "\n")
}

func drawingContent() string {
	return strings.Join([]string{
		"Today's prompt: draw the object closest to your left hand.",
		"",
		"Spend two minutes on contour only, then five on shading.",
		"Do not erase. Start a new sketch instead.",
	}, "\n")
}

func eyeHealthContent() string {
	return strings.Join([]string{
		"Every twenty minutes, look at something twenty feet away for twenty seconds.",
		"",
		"Blink slowly ten times.",
		"Roll your eyes clockwise, then counter-clockwise.",
		"Check that the screen sits slightly below eye level.",
	}, "\n")
}

func mindContent() string {
	return strings.Join([]string{
		"Name what you are feeling right now.",
		"",
		"Breathe in for four counts, hold for four, out for four, hold for four.",
		"Repeat four times, then write one line in the journal.",
	}, "\n")
}
