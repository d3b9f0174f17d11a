package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	confirmMaxWidth = 60
	confirmMinWidth = 24
)

// ConfirmRequest describes one yes/no question. OnConfirm runs after the
// dialog has closed.
type ConfirmRequest struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	OnConfirm    func() tea.Cmd
	OnCancel     func() tea.Cmd
}

// ConfirmController is the single blocking yes/no dialog. While open it holds
// a capture listener on the dispatcher so no other key handling runs.
type ConfirmController struct {
	dispatcher   *KeyDispatcher
	capture      *ListenerHandle
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
	onConfirm    func() tea.Cmd
	onCancel     func() tea.Cmd
}

func NewConfirmController(dispatcher *KeyDispatcher) *ConfirmController {
	return &ConfirmController{dispatcher: dispatcher}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

// Open shows the dialog. It is a no-op returning false when a dialog is
// already open.
func (c *ConfirmController) Open(req ConfirmRequest) bool {
	if c == nil || c.active {
		return false
	}
	c.active = true
	c.title = strings.TrimSpace(req.Title)
	c.message = strings.TrimSpace(req.Message)
	c.confirmLabel = req.ConfirmLabel
	if c.confirmLabel == "" {
		c.confirmLabel = "Yes"
	}
	c.cancelLabel = req.CancelLabel
	if c.cancelLabel == "" {
		c.cancelLabel = "No"
	}
	c.selected = 0
	c.onConfirm = req.OnConfirm
	c.onCancel = req.OnCancel
	if c.dispatcher != nil {
		c.capture = c.dispatcher.AddCaptureListener(c.HandleKey)
	}
	return true
}

// HandleKey is the dialog's capture listener. Keys other than the answer
// keys and button navigation are swallowed.
func (c *ConfirmController) HandleKey(ev KeyEvent) tea.Cmd {
	if c == nil || !c.active {
		return nil
	}
	switch ev.normalized() {
	case "y":
		return c.Confirm()
	case "n", "esc":
		return c.Cancel()
	case "left", "h":
		c.selected = 0
	case "right", "l":
		c.selected = 1
	case "tab":
		c.selected = 1 - c.selected
	case "enter":
		if c.selected == 0 {
			return c.Confirm()
		}
		return c.Cancel()
	}
	return nil
}

// HandleMouse answers a click on a button and cancels on a click outside the
// dialog.
func (c *ConfirmController) HandleMouse(msg tea.MouseClickMsg, maxWidth, maxHeight int) tea.Cmd {
	if c == nil || !c.active {
		return nil
	}
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	x, y, width, height := c.layout(maxWidth, maxHeight)
	if mouse.X < x || mouse.X >= x+width || mouse.Y < y || mouse.Y >= y+height {
		return c.Cancel()
	}
	buttonRow := y + height - 2
	if mouse.Y != buttonRow {
		return nil
	}
	contentX := x + 1
	contentWidth := max(1, width-2)
	if mouse.X < contentX || mouse.X >= contentX+contentWidth {
		return nil
	}
	if mouse.X < contentX+contentWidth/2 {
		c.selected = 0
		return c.Confirm()
	}
	c.selected = 1
	return c.Cancel()
}

func (c *ConfirmController) Confirm() tea.Cmd {
	if c == nil || !c.active {
		return nil
	}
	next := c.onConfirm
	c.close()
	if next == nil {
		return nil
	}
	return next()
}

func (c *ConfirmController) Cancel() tea.Cmd {
	if c == nil || !c.active {
		return nil
	}
	next := c.onCancel
	c.close()
	if next == nil {
		return nil
	}
	return next()
}

func (c *ConfirmController) close() {
	if c.capture != nil {
		c.capture.Remove()
		c.capture = nil
	}
	c.active = false
	c.title = ""
	c.message = ""
	c.confirmLabel = ""
	c.cancelLabel = ""
	c.selected = 0
	c.onConfirm = nil
	c.onCancel = nil
}

func (c *ConfirmController) Contains(x, y, maxWidth, maxHeight int) bool {
	if c == nil || !c.active {
		return false
	}
	bx, by, bw, bh := c.layout(maxWidth, maxHeight)
	return x >= bx && x < bx+bw && y >= by && y < by+bh
}

// View renders the dialog indented to its column and returns it with the row
// it belongs at.
func (c *ConfirmController) View(maxWidth, maxHeight int) (string, int) {
	if c == nil || !c.active {
		return "", 0
	}
	x, y, width, _ := c.layout(maxWidth, maxHeight)
	innerWidth := max(1, width-2)
	contentWidth := max(1, innerWidth-2)
	title := c.title
	if title == "" {
		title = "Confirm"
	}
	title = truncateToWidth(title, contentWidth)
	lines := []string{dialogHeaderStyle.Render(" " + padToWidth(title, contentWidth) + " ")}

	if c.message != "" {
		wrapped := xansi.Hardwrap(c.message, contentWidth, true)
		for _, line := range strings.Split(wrapped, "\n") {
			line = truncateToWidth(line, contentWidth)
			lines = append(lines, dialogBodyStyle.Render(" "+padToWidth(line, contentWidth)+" "))
		}
	}

	leftWidth := contentWidth / 2
	rightWidth := contentWidth - leftWidth
	confirm := padToWidth(truncateToWidth("[y] "+c.confirmLabel, leftWidth), leftWidth)
	cancel := padToWidth(truncateToWidth("[n] "+c.cancelLabel, rightWidth), rightWidth)
	if c.selected == 0 {
		confirm = selectedStyle.Render(confirm)
		cancel = dialogBodyStyle.Render(cancel)
	} else {
		confirm = dialogBodyStyle.Render(confirm)
		cancel = selectedStyle.Render(cancel)
	}
	buttonLine := " " + confirm + cancel + " "
	if xansi.StringWidth(buttonLine) < innerWidth {
		buttonLine = padToWidth(buttonLine, innerWidth)
	}
	lines = append(lines, buttonLine)

	block := confirmDialogBorderStyle.Render(strings.Join(lines, "\n"))
	if x > 0 {
		block = indentBlock(block, x)
	}
	return block, y
}

func (c *ConfirmController) layout(maxWidth, maxHeight int) (int, int, int, int) {
	width := c.dialogWidth()
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	height := c.dialogHeight(width)
	x, y := 0, 0
	if maxWidth > 0 {
		x = max(0, (maxWidth-width)/2)
	}
	if maxHeight > 0 {
		y = max(0, (maxHeight-height)/2)
	}
	return x, y, width, height
}

func (c *ConfirmController) dialogWidth() int {
	contentWidth := xansi.StringWidth(c.title)
	if w := xansi.StringWidth(c.message); w > contentWidth {
		contentWidth = w
	}
	buttonWidth := xansi.StringWidth(c.confirmLabel) + xansi.StringWidth(c.cancelLabel) + 10
	if buttonWidth > contentWidth {
		contentWidth = buttonWidth
	}
	width := max(confirmMinWidth, contentWidth+4)
	return min(width, confirmMaxWidth)
}

func (c *ConfirmController) dialogHeight(width int) int {
	innerWidth := max(1, width-2)
	contentWidth := max(1, innerWidth-2)
	height := 2
	if c.message != "" {
		height += len(strings.Split(xansi.Hardwrap(c.message, contentWidth, true), "\n"))
	}
	return height + 2
}
