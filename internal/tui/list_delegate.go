package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// compactItemDelegate renders every row on a single line and understands
// the non-selectable headingItem rows that group the teams list.
type compactItemDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	heading  lipgloss.Style
}

func newCompactItemDelegate() compactItemDelegate {
	return compactItemDelegate{
		normal:   lipgloss.NewStyle().Foreground(colorSurfaceFg),
		selected: lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true),
		heading:  styleHeading(),
	}
}

func (d compactItemDelegate) Height() int  { return 1 }
func (d compactItemDelegate) Spacing() int { return 0 }

// Update keeps the cursor off heading rows: when a navigation key lands the
// selection on one, the cursor continues past it in the same direction.
func (d compactItemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	if _, ok := m.SelectedItem().(headingItem); !ok {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k", "ctrl+p":
		if m.Index() == 0 {
			m.Select(1)
		} else {
			m.Select(m.Index() - 1)
		}
	default:
		if m.Index() < len(m.Items())-1 {
			m.Select(m.Index() + 1)
		}
	}
	return nil
}

func (d compactItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	txt := ""
	if t, ok := item.(interface{ Title() string }); ok {
		txt = t.Title()
	} else {
		txt = fmt.Sprint(item)
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}
	if _, ok := item.(headingItem); ok {
		// Section labels, never rendered as selected.
		style = d.heading
	}

	line := txt
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}
