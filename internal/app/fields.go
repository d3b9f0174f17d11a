package app

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// formNode is a non-editable ancestor of a field that owns its submit action.
type formNode struct {
	name   string
	submit func() tea.Cmd
}

func (f *formNode) Name() string { return f.name }
func (f *formNode) Kind() FocusKind { return FocusNone }
func (f *formNode) ContentEditable() bool { return false }
func (f *formNode) Parent() FocusTarget { return nil }

func (f *formNode) Submit() tea.Cmd {
	if f == nil || f.submit == nil {
		return nil
	}
	return f.submit()
}

// focusField is a text component that can hold focus.
type focusField interface {
	FocusTarget
	focus() tea.Cmd
	blur()
	update(msg tea.Msg) tea.Cmd
	view() string
}

type inputField struct {
	name   string
	parent FocusTarget
	input  textinput.Model
}

func newInputField(name, placeholder string, parent FocusTarget) *inputField {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = 280
	return &inputField{name: name, parent: parent, input: input}
}

func (f *inputField) Name() string { return f.name }
func (f *inputField) Kind() FocusKind { return FocusTextInput }
func (f *inputField) ContentEditable() bool { return false }

func (f *inputField) Parent() FocusTarget { return f.parent }

func (f *inputField) focus() tea.Cmd { return f.input.Focus() }
func (f *inputField) blur() { f.input.Blur() }
func (f *inputField) view() string { return f.input.View() }

func (f *inputField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *inputField) Value() string { return f.input.Value() }
func (f *inputField) SetValue(value string) { f.input.SetValue(value) }
func (f *inputField) SetWidth(width int) { f.input.SetWidth(max(1, width)) }
func (f *inputField) Reset() { f.input.Reset() }

type areaField struct {
	name   string
	parent FocusTarget
	area   textarea.Model
}

func newAreaField(name, placeholder string, parent FocusTarget) *areaField {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.SetHeight(3)
	area.KeyMap.InsertNewline.SetKeys("shift+enter", "ctrl+j")
	return &areaField{name: name, parent: parent, area: area}
}

func (f *areaField) Name() string { return f.name }
func (f *areaField) Kind() FocusKind { return FocusTextArea }
func (f *areaField) ContentEditable() bool { return false }

func (f *areaField) Parent() FocusTarget { return f.parent }

func (f *areaField) focus() tea.Cmd { return f.area.Focus() }
func (f *areaField) blur() { f.area.Blur() }
func (f *areaField) view() string { return f.area.View() }

func (f *areaField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.area, cmd = f.area.Update(msg)
	return cmd
}

func (f *areaField) Value() string { return f.area.Value() }
func (f *areaField) SetWidth(width int) { f.area.SetWidth(max(1, width)) }
func (f *areaField) Reset() { f.area.Reset() }

// fieldSet is the FocusHost for the dashboard. At most one field is focused.
type fieldSet struct {
	fields  map[string]focusField
	focused focusField
}

func newFieldSet(fields ...focusField) *fieldSet {
	set := &fieldSet{fields: make(map[string]focusField, len(fields))}
	for _, field := range fields {
		set.fields[field.Name()] = field
	}
	return set
}

func (s *fieldSet) Add(field focusField) {
	s.fields[field.Name()] = field
}

func (s *fieldSet) Focus(name string) tea.Cmd {
	field, ok := s.fields[name]
	if !ok {
		return nil
	}
	if s.focused != nil && s.focused != field {
		s.focused.blur()
	}
	s.focused = field
	return field.focus()
}

func (s *fieldSet) Blur() {
	if s.focused == nil {
		return
	}
	s.focused.blur()
	s.focused = nil
}

func (s *fieldSet) Deliver(ev KeyEvent) tea.Cmd {
	if s.focused == nil {
		return nil
	}
	return s.focused.update(ev.Msg())
}

// Focused returns the focused field, or nil. The nil is untyped so callers
// can compare the result against nil.
func (s *fieldSet) Focused() FocusTarget {
	if s.focused == nil {
		return nil
	}
	return s.focused
}

func (s *fieldSet) IsFocused(name string) bool {
	return s.focused != nil && s.focused.Name() == name
}

// Update forwards non-key messages, such as cursor blinks, to the focused
// field.
func (s *fieldSet) Update(msg tea.Msg) tea.Cmd {
	if s.focused == nil {
		return nil
	}
	return s.focused.update(msg)
}
