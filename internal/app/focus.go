package app

import tea "charm.land/bubbletea/v2"

type FocusKind int

const (
	FocusNone FocusKind = iota
	FocusTextInput
	FocusTextArea
	FocusSelect
)

const (
	FieldIntent  = "intent"
	FieldJournal = "journal"
	FieldAnswer  = "answer"
)

// FocusTarget is whatever currently holds keyboard focus.
type FocusTarget interface {
	Name() string
	Kind() FocusKind
	ContentEditable() bool
	Parent() FocusTarget
}

// Submitter is implemented by focus targets, or their ancestors, that own a
// submit action.
type Submitter interface {
	Submit() tea.Cmd
}

// FocusHost moves focus between fields and delivers keys to the focused one.
type FocusHost interface {
	Focus(name string) tea.Cmd
	Blur()
	Deliver(ev KeyEvent) tea.Cmd
}

func isTypingTarget(target FocusTarget) bool {
	if target == nil {
		return false
	}
	switch target.Kind() {
	case FocusTextInput, FocusTextArea, FocusSelect:
		return true
	}
	for node := target; node != nil; node = node.Parent() {
		if node.ContentEditable() {
			return true
		}
	}
	return false
}

func isMultilineTarget(target FocusTarget) bool {
	if target == nil {
		return false
	}
	if target.Kind() == FocusTextArea {
		return true
	}
	for node := target; node != nil; node = node.Parent() {
		if node.ContentEditable() {
			return true
		}
	}
	return false
}

func nearestSubmitter(target FocusTarget) Submitter {
	for node := target; node != nil; node = node.Parent() {
		if submitter, ok := node.(Submitter); ok {
			return submitter
		}
	}
	return nil
}
