package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme styles the question text composed by the resolvers. Styling is
// purely presentational: under non-TTY output lipgloss degrades to plain
// text, so resolution behavior never depends on it.
type Theme struct {
	// Counter styles the "[n/m]" progress prefix on visible questions.
	Counter lipgloss.Style
	// Key styles variable names embedded in synthesized questions.
	Key lipgloss.Style
	// Indent is one level of visual nesting for sub-schema prompts.
	Indent string
}

// DefaultTheme mirrors the classic presentation: dim counters, emphasized
// variable names, four-space nesting.
func DefaultTheme() Theme {
	return Theme{
		Counter: lipgloss.NewStyle().Faint(true),
		Key:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Indent:  "    ",
	}
}

// Progress renders the "  [n/m] " prefix placed before the nth visible
// question out of m.
func (t Theme) Progress(n, m int) string {
	return "  " + t.Counter.Render(fmt.Sprintf("[%d/%d]", n, m)) + " "
}

// NestedLabel synthesizes the default question for a nested field when the
// schema declares no custom label.
func (t Theme) NestedLabel(indent, name string, defaultValue any) string {
	return fmt.Sprintf("%s%s (default: %v):", indent, t.Key.Render(name), defaultValue)
}

// NextIndent returns the indentation for one more level of nesting.
func (t Theme) NextIndent(indent string) string {
	unit := t.Indent
	if unit == "" {
		unit = "    "
	}
	return indent + unit
}

// ChoiceLabel formats one selectable row, numbered from 1 the way the
// choice prompt reports indexes.
func (t Theme) ChoiceLabel(index int, label string) string {
	return fmt.Sprintf("%d - %s", index+1, strings.TrimSpace(label))
}
