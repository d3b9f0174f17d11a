package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const defaultToastDuration = 2 * time.Second

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelWarning
	toastLevelError
)

type toastExpiredMsg struct {
	seq int
}

// toastState holds the one transient notification shown in the footer. A
// newer toast replaces the older one and the older one's expiry is ignored.
type toastState struct {
	text     string
	level    toastLevel
	seq      int
	duration time.Duration
	queued   []queuedToast
}

type queuedToast struct {
	level   toastLevel
	message string
}

func newToastState(duration time.Duration) *toastState {
	if duration <= 0 {
		duration = defaultToastDuration
	}
	return &toastState{duration: duration}
}

func (t *toastState) show(level toastLevel, message string) tea.Cmd {
	message = strings.TrimSpace(message)
	if t == nil || message == "" {
		return nil
	}
	t.seq++
	t.text = message
	t.level = level
	seq := t.seq
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// enqueue shows message now when nothing is visible, otherwise after the
// current toast expires.
func (t *toastState) enqueue(level toastLevel, message string) tea.Cmd {
	message = strings.TrimSpace(message)
	if t == nil || message == "" {
		return nil
	}
	if t.active() {
		t.queued = append(t.queued, queuedToast{level: level, message: message})
		return nil
	}
	return t.show(level, message)
}

func (t *toastState) expire(msg toastExpiredMsg) tea.Cmd {
	if t == nil || msg.seq != t.seq {
		return nil
	}
	t.text = ""
	t.level = toastLevelInfo
	if len(t.queued) == 0 {
		return nil
	}
	next := t.queued[0]
	t.queued = t.queued[1:]
	return t.show(next.level, next.message)
}

func (t *toastState) active() bool {
	return t != nil && t.text != ""
}

func (t *toastState) line(width int) string {
	if !t.active() || width <= 0 {
		return ""
	}
	text := truncateToWidth(t.text, max(1, width-4))
	pill := t.style().Render(" " + text + " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, pill)
}

func (t *toastState) style() lipgloss.Style {
	switch t.level {
	case toastLevelWarning:
		return toastWarningStyle
	case toastLevelError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}
