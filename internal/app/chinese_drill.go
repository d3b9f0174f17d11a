package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
)

type drillCard struct {
	Hanzi   string
	Pinyin  string
	Meaning string
}

var defaultDrillCards = []drillCard{
	{Hanzi: "你好", Pinyin: "ni hao", Meaning: "hello"},
	{Hanzi: "谢谢", Pinyin: "xie xie", Meaning: "thank you"},
	{Hanzi: "早上", Pinyin: "zao shang", Meaning: "morning"},
	{Hanzi: "朋友", Pinyin: "peng you", Meaning: "friend"},
	{Hanzi: "学习", Pinyin: "xue xi", Meaning: "study"},
	{Hanzi: "水", Pinyin: "shui", Meaning: "water"},
}

// chineseDrill is the language drill modal. Its own key listener types into
// the answer field and checks the answer on enter.
type chineseDrill struct {
	panel   *modalPanel
	host    *ModalHost
	fields  *fieldSet
	answer  *inputField
	cards   []drillCard
	index   int
	correct int
	notify  func(level toastLevel, message string) tea.Cmd
}

func newChineseDrill(host *ModalHost, cards []drillCard, notify func(toastLevel, string) tea.Cmd) *chineseDrill {
	if len(cards) == 0 {
		cards = defaultDrillCards
	}
	d := &chineseDrill{
		panel:  newModalPanel(ModalChinese, "Chinese", ContextChinese, ""),
		host:   host,
		cards:  cards,
		notify: notify,
	}
	d.answer = newInputField(FieldAnswer, "pinyin or meaning", &formNode{name: "chinese-drill", submit: d.Check})
	d.render()
	return d
}

// attach registers the answer field with the dashboard's focus host.
func (d *chineseDrill) attach(fields *fieldSet) {
	d.fields = fields
	fields.Add(d.answer)
}

func (d *chineseDrill) Show(seed ContextTag) tea.Cmd {
	d.panel.Show(seed)
	d.answer.Reset()
	d.render()
	if d.fields == nil {
		return nil
	}
	return d.fields.Focus(FieldAnswer)
}

func (d *chineseDrill) Hide() {
	if d.fields != nil && d.fields.IsFocused(FieldAnswer) {
		d.fields.Blur()
	}
	d.panel.Hide()
}

func (d *chineseDrill) descriptor() ModalDescriptor {
	return ModalDescriptor{
		ID:      ModalChinese,
		Context: ContextChinese,
		Capability: ModalCapability{
			Show: d.Show,
			Hide: d.Hide,
		},
	}
}

func (d *chineseDrill) Listener(ev KeyEvent) tea.Cmd {
	top, ok := d.host.Top()
	if !ok || top.ID != ModalChinese {
		return nil
	}
	if d.fields == nil {
		return nil
	}
	if ev.Target != nil && ev.Target.Name() == FieldAnswer {
		if ev.Is("tab") {
			d.fields.Blur()
			d.render()
			return nil
		}
		if ev.Is("enter") {
			if submitter := nearestSubmitter(ev.Target); submitter != nil {
				return submitter.Submit()
			}
			return nil
		}
		cmd := d.fields.Deliver(ev)
		d.render()
		return cmd
	}
	switch {
	case ev.Is("tab"):
		cmd := d.fields.Focus(FieldAnswer)
		d.render()
		return cmd
	case ev.Is("j"), ev.Is("down"):
		d.panel.Scroll(1)
	case ev.Is("k"), ev.Is("up"):
		d.panel.Scroll(-1)
	}
	return nil
}

// Check grades the typed answer and moves to the next card.
func (d *chineseDrill) Check() tea.Cmd {
	value := strings.TrimSpace(d.answer.Value())
	if value == "" {
		return nil
	}
	card := d.cards[d.index]
	var cmd tea.Cmd
	if drillAnswerMatches(card, value) {
		d.correct++
		cmd = d.toast(toastLevelInfo, "Correct: "+card.Pinyin)
	} else {
		cmd = d.toast(toastLevelWarning, fmt.Sprintf("Not quite: %s (%s)", card.Pinyin, card.Meaning))
	}
	d.index = (d.index + 1) % len(d.cards)
	d.answer.Reset()
	d.render()
	return cmd
}

func (d *chineseDrill) Card() drillCard {
	return d.cards[d.index]
}

func (d *chineseDrill) render() {
	card := d.cards[d.index]
	lines := []string{
		headerStyle.Render(card.Hanzi),
		"",
		fieldLabelStyle.Render("answer ") + d.answer.view(),
		"",
		helpStyle.Render(fmt.Sprintf("card %d of %d · %d correct", d.index+1, len(d.cards), d.correct)),
	}
	d.panel.SetContent(strings.Join(lines, "\n"))
}

func (d *chineseDrill) toast(level toastLevel, message string) tea.Cmd {
	if d.notify == nil {
		return nil
	}
	return d.notify(level, message)
}

func drillAnswerMatches(card drillCard, answer string) bool {
	answer = normalizeDrillAnswer(answer)
	return answer == normalizeDrillAnswer(card.Pinyin) || answer == normalizeDrillAnswer(card.Meaning)
}

func normalizeDrillAnswer(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), ""))
}
