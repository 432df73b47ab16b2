package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"hackmatch/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type chatItem struct {
	conv model.Conversation
}

func (i chatItem) FilterValue() string { return i.conv.Name }
func (i chatItem) Title() string {
	name := i.conv.Name
	if i.conv.Online {
		name = name + " " + lipgloss.NewStyle().Foreground(colorOnline).Render(glyphDot())
	}
	preview := ""
	if n := len(i.conv.Messages); n > 0 {
		preview = strings.TrimSpace(i.conv.Messages[n-1].Content)
	}
	line := name
	if preview != "" {
		line = line + "  " + styleMuted().Render(preview)
	}
	if i.conv.Unread > 0 {
		badge := lipgloss.NewStyle().Foreground(colorUnread).Bold(true).Render(fmt.Sprintf("(%d)", i.conv.Unread))
		line = line + " " + badge
	}
	if ago := relTime(i.conv.LastActivity); ago != "" {
		line = line + "  " + styleMuted().Render(ago)
	}
	return line
}
func (i chatItem) Description() string { return i.conv.ID }

type personItem struct {
	person model.Person
}

func (i personItem) FilterValue() string {
	return strings.TrimSpace(i.person.Name + " " + i.person.Role + " " + strings.Join(i.person.Skills, " "))
}
func (i personItem) Title() string {
	name := i.person.Name
	if i.person.Online {
		name = name + " " + lipgloss.NewStyle().Foreground(colorOnline).Render(glyphDot())
	}
	rating := styleMuted().Render(fmt.Sprintf("%s %.1f", glyphStar(), i.person.Rating))
	return fmt.Sprintf("%s  %s  %s", name, styleMuted().Render(i.person.Role), rating)
}
func (i personItem) Description() string { return i.person.ID }

type teamItem struct {
	team model.Team
}

func (i teamItem) FilterValue() string {
	return strings.TrimSpace(i.team.Name + " " + i.team.Project + " " + strings.Join(i.team.Skills, " "))
}
func (i teamItem) Title() string {
	line := i.team.Name
	if p := strings.TrimSpace(i.team.Project); p != "" {
		line = line + "  " + styleMuted().Render(p)
	}
	line = line + renderProgressBar(i.team.Progress)
	return line
}
func (i teamItem) Description() string { return i.team.ID }

// headingItem is a non-interactive section header inside a list
// (e.g. "My Teams" / "Suggested Teams"). The delegate styles it and keeps
// the cursor from resting on it.
type headingItem struct {
	label string
}

func (i headingItem) FilterValue() string { return "" }
func (i headingItem) Title() string       { return strings.TrimSpace(i.label) }
func (i headingItem) Description() string { return "" }

type sectionItem struct {
	section model.SettingsSection
}

func (i sectionItem) FilterValue() string { return i.section.Label() }
func (i sectionItem) Title() string       { return i.section.Label() }
func (i sectionItem) Description() string { return string(i.section) }

var (
	progressFillBg  lipgloss.TerminalColor = ac("189", "242")
	progressEmptyBg lipgloss.TerminalColor = ac("255", "237")
	progressFillFg  lipgloss.TerminalColor = ac("235", "255")
	progressEmptyFg lipgloss.TerminalColor = ac("240", "252")
)

// renderProgressBar renders a compact inline bar for a 0-100 percentage.
func renderProgressBar(percent int) string {
	percent = model.ClampProgress(percent)

	inner := fmt.Sprintf("%d%%", percent)
	innerRunes := []rune(inner)

	ratio := float64(percent) / 100
	width := 10
	if minW := len(innerRunes) + 2; minW > width {
		width = minW
	}
	filledN := int(math.Round(ratio * float64(width)))
	if filledN < 0 {
		filledN = 0
	}
	if filledN > width {
		filledN = width
	}
	start := (width - len(innerRunes)) / 2

	var b strings.Builder
	for i := 0; i < width; i++ {
		bg := progressEmptyBg
		fg := progressEmptyFg
		if i < filledN {
			bg = progressFillBg
			fg = progressFillFg
		}
		ch := " "
		if i >= start && i < start+len(innerRunes) {
			ch = string(innerRunes[i-start])
		}
		b.WriteString(lipgloss.NewStyle().Background(bg).Foreground(fg).Render(ch))
	}
	return " " + b.String()
}

func relTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

func newList(items []list.Item) list.Model {
	l := list.New(items, newCompactItemDelegate(), 0, 0)
	// We render our own global header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Add Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
