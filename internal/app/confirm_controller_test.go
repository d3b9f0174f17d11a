package app

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"
)

type confirmOutcome struct {
	confirmed int
	cancelled int
}

func openTestConfirm(c *ConfirmController, title, message string) *confirmOutcome {
	outcome := &confirmOutcome{}
	c.Open(ConfirmRequest{
		Title:        title,
		Message:      message,
		ConfirmLabel: "Delete",
		CancelLabel:  "Keep",
		OnConfirm: func() tea.Cmd {
			outcome.confirmed++
			return nil
		},
		OnCancel: func() tea.Cmd {
			outcome.cancelled++
			return nil
		},
	})
	return outcome
}

func TestConfirmDialogWidthCappedByMaxWidth(t *testing.T) {
	c := NewConfirmController(nil)
	longText := strings.Repeat("a remarkably long journal line ", 6)
	openTestConfirm(c, "Delete entry", fmt.Sprintf("Delete %q?", longText))

	_, _, width, _ := c.layout(200, 40)
	if width != confirmMaxWidth {
		t.Fatalf("expected width %d, got %d", confirmMaxWidth, width)
	}
}

func TestConfirmDialogViewWrapsLongMessageWithinMaxWidth(t *testing.T) {
	c := NewConfirmController(nil)
	longText := strings.Repeat("a remarkably long journal line ", 6)
	openTestConfirm(c, "Delete entry", fmt.Sprintf("Delete %q?", longText))

	view, _ := c.View(confirmMaxWidth, 40)
	lines := strings.Split(xansi.Strip(view), "\n")
	if len(lines) <= 5 {
		t.Fatalf("expected wrapped dialog lines, got %d: %q", len(lines), lines)
	}
	for _, line := range lines {
		if w := xansi.StringWidth(line); w > confirmMaxWidth {
			t.Fatalf("expected lines within %d columns, got %d: %q", confirmMaxWidth, w, line)
		}
	}
}

func TestConfirmDialogViewShowsLabels(t *testing.T) {
	c := NewConfirmController(nil)
	openTestConfirm(c, "Delete entry", "Delete this entry?")
	view, _ := c.View(80, 24)
	plain := xansi.Strip(view)
	for _, want := range []string{"Delete entry", "[y] Delete", "[n] Keep"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in dialog, got %q", want, plain)
		}
	}
}

func TestConfirmDialogDefaultLabels(t *testing.T) {
	c := NewConfirmController(nil)
	c.Open(ConfirmRequest{Title: "Sure?"})
	view, _ := c.View(80, 24)
	plain := xansi.Strip(view)
	if !strings.Contains(plain, "[y] Yes") || !strings.Contains(plain, "[n] No") {
		t.Fatalf("expected default labels, got %q", plain)
	}
}

func TestConfirmDialogMouseButtonsRespectBorderedLayout(t *testing.T) {
	c := NewConfirmController(nil)
	outcome := openTestConfirm(c, "Delete entry", "Delete this entry?")

	x, y, width, height := c.layout(120, 40)
	borderRow := y + height - 1
	c.HandleMouse(tea.MouseClickMsg{Button: tea.MouseLeft, X: x + 2, Y: borderRow}, 120, 40)
	if !c.IsOpen() || outcome.confirmed+outcome.cancelled != 0 {
		t.Fatalf("expected border click to be ignored")
	}

	buttonRow := y + height - 2
	c.HandleMouse(tea.MouseClickMsg{Button: tea.MouseLeft, X: x + width - 3, Y: buttonRow}, 120, 40)
	if c.IsOpen() || outcome.cancelled != 1 {
		t.Fatalf("expected cancel click on right half, outcome %+v", outcome)
	}

	outcome = openTestConfirm(c, "Delete entry", "Delete this entry?")
	c.HandleMouse(tea.MouseClickMsg{Button: tea.MouseLeft, X: x + 2, Y: buttonRow}, 120, 40)
	if c.IsOpen() || outcome.confirmed != 1 {
		t.Fatalf("expected confirm click on left half, outcome %+v", outcome)
	}
}

func TestConfirmDialogClickOutsideCancels(t *testing.T) {
	c := NewConfirmController(nil)
	outcome := openTestConfirm(c, "Delete entry", "Delete this entry?")
	c.HandleMouse(tea.MouseClickMsg{Button: tea.MouseLeft, X: 0, Y: 0}, 120, 40)
	if c.IsOpen() || outcome.cancelled != 1 {
		t.Fatalf("expected outside click to cancel, outcome %+v", outcome)
	}
}

func TestConfirmDialogKeys(t *testing.T) {
	tests := []struct {
		name      string
		keys      []KeyEvent
		confirmed int
		cancelled int
	}{
		{name: "y confirms", keys: []KeyEvent{keyEvent("y", nil)}, confirmed: 1},
		{name: "Y confirms", keys: []KeyEvent{keyEvent("Y", nil)}, confirmed: 1},
		{name: "n cancels", keys: []KeyEvent{keyEvent("n", nil)}, cancelled: 1},
		{name: "esc cancels", keys: []KeyEvent{namedEvent(tea.KeyEscape, nil)}, cancelled: 1},
		{name: "enter uses default confirm", keys: []KeyEvent{namedEvent(tea.KeyEnter, nil)}, confirmed: 1},
		{name: "tab then enter cancels", keys: []KeyEvent{namedEvent(tea.KeyTab, nil), namedEvent(tea.KeyEnter, nil)}, cancelled: 1},
		{name: "l then enter cancels", keys: []KeyEvent{keyEvent("l", nil), namedEvent(tea.KeyEnter, nil)}, cancelled: 1},
		{name: "l h enter confirms", keys: []KeyEvent{keyEvent("l", nil), keyEvent("h", nil), namedEvent(tea.KeyEnter, nil)}, confirmed: 1},
		{name: "other keys swallowed", keys: []KeyEvent{keyEvent("x", nil), keyEvent("q", nil)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfirmController(nil)
			outcome := openTestConfirm(c, "Delete entry", "Delete this entry?")
			for _, ev := range tt.keys {
				c.HandleKey(ev)
			}
			if outcome.confirmed != tt.confirmed || outcome.cancelled != tt.cancelled {
				t.Fatalf("expected confirmed=%d cancelled=%d, got %+v", tt.confirmed, tt.cancelled, outcome)
			}
			wantOpen := tt.confirmed+tt.cancelled == 0
			if c.IsOpen() != wantOpen {
				t.Fatalf("expected open=%v", wantOpen)
			}
		})
	}
}

func TestConfirmDialogHoldsCaptureWhileOpen(t *testing.T) {
	dispatcher := NewKeyDispatcher()
	bubbled := 0
	dispatcher.AddListener(func(KeyEvent) tea.Cmd {
		bubbled++
		return nil
	})
	c := NewConfirmController(dispatcher)
	outcome := openTestConfirm(c, "Delete entry", "Delete this entry?")
	if !dispatcher.CaptureActive() {
		t.Fatalf("expected capture listener while open")
	}

	result, _ := dispatcher.Dispatch(keyEvent("j", nil))
	if result != Consumed || bubbled != 0 {
		t.Fatalf("expected key captured, result=%v bubbled=%d", result, bubbled)
	}
	dispatcher.Dispatch(keyEvent("n", nil))
	if outcome.cancelled != 1 || dispatcher.CaptureActive() {
		t.Fatalf("expected cancel and capture removed")
	}
	dispatcher.Dispatch(keyEvent("j", nil))
	if bubbled != 1 {
		t.Fatalf("expected bubbling restored after close, got %d", bubbled)
	}
}

func TestConfirmDialogSecondOpenIsRejected(t *testing.T) {
	c := NewConfirmController(nil)
	first := openTestConfirm(c, "First", "first?")
	if c.Open(ConfirmRequest{Title: "Second"}) {
		t.Fatalf("expected second open to be rejected")
	}
	c.Confirm()
	if first.confirmed != 1 {
		t.Fatalf("expected first request to stay bound")
	}
}

func TestConfirmDialogContinuationRunsAfterClose(t *testing.T) {
	c := NewConfirmController(nil)
	openDuringCallback := true
	c.Open(ConfirmRequest{
		Title: "Delete entry",
		OnConfirm: func() tea.Cmd {
			openDuringCallback = c.IsOpen()
			return nil
		},
	})
	c.Confirm()
	if openDuringCallback {
		t.Fatalf("expected dialog closed before continuation runs")
	}
}
