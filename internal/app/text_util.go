package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func truncateToWidth(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(value) <= width {
		return value
	}
	if width == 1 {
		return xansi.Cut(value, 0, 1)
	}
	return xansi.Cut(value, 0, width-1) + "…"
}

func padToWidth(value string, width int) string {
	gap := width - xansi.StringWidth(value)
	if gap <= 0 {
		return value
	}
	return value + strings.Repeat(" ", gap)
}

// keyColumn pads a plain key label so hint columns line up for wide runes.
func keyColumn(label string, width int) string {
	return runewidth.FillRight(label, width)
}

func indentBlock(text string, indent int) string {
	if text == "" || indent <= 0 {
		return text
	}
	prefix := strings.Repeat(" ", indent)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// padBlock pads every line to width and joins them.
func padBlock(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = padToWidth(line, width)
	}
	return strings.Join(out, "\n")
}
