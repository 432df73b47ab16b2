package tui

import (
	"strings"
	"testing"

	"hackmatch/internal/model"
	"hackmatch/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) appModel {
	t.Helper()
	db, err := store.LoadSeeded()
	if err != nil {
		t.Fatalf("LoadSeeded: %v", err)
	}
	// Blank state dir: UI state persistence becomes a no-op.
	m := newAppModel(store.Store{}, db)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mm.(appModel)
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		mm, _ := m.Update(keyMsg(k))
		m = mm.(appModel)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabSwitching(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	if m.screen != screenChats {
		t.Fatalf("initial screen = %v", m.screen)
	}

	m = press(t, m, "3")
	if m.screen != screenDiscover {
		t.Fatalf("after '3': screen = %v", m.screen)
	}

	m = press(t, m, "tab")
	if m.screen != screenProfile {
		t.Fatalf("after tab: screen = %v", m.screen)
	}

	m = press(t, m, "tab", "tab")
	if m.screen != screenChats {
		t.Fatalf("tab should wrap to chats, got %v", m.screen)
	}
}

func TestOpenConversationClearsUnread(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	// The seeded inbox sorts Project Phoenix (3 unread) first.
	it, ok := m.chatList.SelectedItem().(chatItem)
	if !ok {
		t.Fatalf("selected item is %T", m.chatList.SelectedItem())
	}
	if it.conv.ID != "conv-phoenix" || it.conv.Unread != 3 {
		t.Fatalf("unexpected first conversation: %#v", it.conv)
	}

	m = press(t, m, "enter")
	if !m.chatOpen {
		t.Fatalf("enter should open the conversation")
	}
	c, ok := m.db.Conversations.Active()
	if !ok || c.ID != "conv-phoenix" {
		t.Fatalf("active conversation: %v %v", c, ok)
	}
	if c.Unread != 0 {
		t.Fatalf("unread after open = %d, want 0", c.Unread)
	}

	// Esc goes back to the inbox.
	m = press(t, m, "esc")
	if m.chatOpen {
		t.Fatalf("esc should close the conversation")
	}
	if _, ok := m.db.Conversations.Active(); ok {
		t.Fatalf("no conversation should remain active")
	}
}

func TestSendMessageFromConversation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, "enter") // open Project Phoenix
	before := len(mustActive(t, m).Messages)

	m = press(t, m, "hi team", "enter")
	c := mustActive(t, m)
	if len(c.Messages) != before+1 {
		t.Fatalf("message count = %d, want %d", len(c.Messages), before+1)
	}
	last := c.Messages[len(c.Messages)-1]
	if last.Content != "hi team" || !last.Mine {
		t.Fatalf("unexpected last message: %#v", last)
	}
	if m.chatInput.Value() != "" {
		t.Fatalf("input should clear after send, got %q", m.chatInput.Value())
	}

	// Blank input sends nothing.
	m = press(t, m, "   ", "enter")
	if got := len(mustActive(t, m).Messages); got != before+1 {
		t.Fatalf("blank send added a message: %d", got)
	}
}

func mustActive(t *testing.T, m appModel) *model.Conversation {
	t.Helper()
	c, ok := m.db.Conversations.Active()
	if !ok {
		t.Fatalf("no active conversation")
	}
	return c
}

func TestTeamDetailPlaceholderForUnknownID(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.screen = screenTeams
	m.openTeamID = "999"

	view := m.View()
	if !strings.Contains(view, "Team #999") {
		t.Fatalf("expected placeholder team header in view:\n%s", view)
	}

	m = press(t, m, "esc")
	if m.openTeamID != "" {
		t.Fatalf("esc should close the team detail")
	}
}

func TestTeamsListNeverSelectsHeadings(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, "2")
	if _, ok := m.teamList.SelectedItem().(teamItem); !ok {
		t.Fatalf("initial selection is %T, want a team row", m.teamList.SelectedItem())
	}

	// Walk the whole list down and back up; the cursor must step over the
	// section heading rows in both directions.
	for i := 0; i < len(m.teamList.Items()); i++ {
		m = press(t, m, "down")
		if _, ok := m.teamList.SelectedItem().(headingItem); ok {
			t.Fatalf("cursor rested on a heading at index %d going down", m.teamList.Index())
		}
	}
	for i := 0; i < len(m.teamList.Items()); i++ {
		m = press(t, m, "up")
		if _, ok := m.teamList.SelectedItem().(headingItem); ok {
			t.Fatalf("cursor rested on a heading at index %d going up", m.teamList.Index())
		}
	}
}

func TestDiscoverCategoryAndSearch(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, "3") // discover

	total := len(m.discoverList.Items())
	if total == 0 {
		t.Fatalf("discover list is empty")
	}

	m = press(t, m, "]") // all -> frontend
	if m.category.Label() != "Frontend" {
		t.Fatalf("category = %v", m.category)
	}
	for _, it := range m.discoverList.Items() {
		p := it.(personItem).person
		if p.Name == "Ethan Carter" {
			t.Fatalf("frontend filter kept a non-frontend person: %#v", p)
		}
	}

	m = press(t, m, "/", "pragya", "enter")
	if len(m.discoverList.Items()) != 1 {
		t.Fatalf("search 'pragya' in frontend: got %d items", len(m.discoverList.Items()))
	}

	// Esc resets both query and category.
	m = press(t, m, "esc")
	if m.category.Label() != "All" || m.searchInput.Value() != "" {
		t.Fatalf("esc should reset filters: cat=%v query=%q", m.category, m.searchInput.Value())
	}
	if len(m.discoverList.Items()) != total {
		t.Fatalf("reset should restore the full list")
	}
}

func TestProfileEditCommitAndDiscard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, "4") // profile
	origin := m.db.Editor.Current()

	// Commit path: edit the name, save.
	m = press(t, m, "e")
	if !m.db.Editor.Editing() {
		t.Fatalf("'e' should start an edit session")
	}
	m = press(t, m, "!", "ctrl+s")
	if m.db.Editor.Editing() {
		t.Fatalf("ctrl+s should close the edit session")
	}
	if got := m.db.Editor.Current().Name; got != origin.Name+"!" {
		t.Fatalf("committed name = %q, want %q", got, origin.Name+"!")
	}

	// Discard path: add a skill, then esc.
	skillsBefore := len(m.db.Editor.Current().Skills)
	m = press(t, m, "e", "tab", "tab", "tab") // name -> location -> bio -> skills
	if m.editFocus != editFocusSkill {
		t.Fatalf("focus = %v, want skills", m.editFocus)
	}
	m = press(t, m, "Rust", "enter")
	if d, ok := m.db.Editor.Draft(); !ok || len(d.Skills) != skillsBefore+1 {
		t.Fatalf("draft should hold the added skill")
	}
	m = press(t, m, "esc")
	if m.db.Editor.Editing() {
		t.Fatalf("esc should discard the edit session")
	}
	if got := len(m.db.Editor.Current().Skills); got != skillsBefore {
		t.Fatalf("discard leaked skills: %d, want %d", got, skillsBefore)
	}
}

func TestSettingsSectionNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, "5") // settings
	if len(m.settingsList.Items()) != 7 {
		t.Fatalf("settings list has %d items, want 7", len(m.settingsList.Items()))
	}

	m = press(t, m, "enter") // notifications
	if !m.sectionOpen {
		t.Fatalf("enter should open the section")
	}

	push := m.notif.Push
	m = press(t, m, "a")
	if m.notif.Push == push {
		t.Fatalf("'a' should toggle push notifications")
	}

	m = press(t, m, "esc")
	if m.sectionOpen {
		t.Fatalf("esc should close the section")
	}
}

func TestChatJumpToTeamDetail(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, "enter") // open Project Phoenix (team conversation)
	m = press(t, m, "ctrl+o")
	if m.screen != screenTeams || m.openTeamID != "team-phoenix" {
		t.Fatalf("ctrl+o should land on the team detail: screen=%v team=%q", m.screen, m.openTeamID)
	}
	if m.chatOpen {
		t.Fatalf("conversation should close when jumping away")
	}

	// And back again via 'm'.
	m = press(t, m, "m")
	if m.screen != screenChats || !m.chatOpen {
		t.Fatalf("'m' should reopen the team conversation")
	}
	c, ok := m.db.Conversations.Active()
	if !ok || c.CounterpartID != "team-phoenix" {
		t.Fatalf("active conversation: %#v %v", c, ok)
	}
}
