package tui

import (
	"strings"

	"hackmatch/internal/directory"
	"hackmatch/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setListSizes()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.String() == "ctrl+c" {
		m.persistUIState()
		return m, tea.Quit
	}

	// Global tab switching, unless a text input owns the keyboard.
	if !m.textEntryActive() {
		switch k.String() {
		case "q":
			m.persistUIState()
			return m, tea.Quit
		case "1":
			m.switchScreen(screenChats)
			return m, nil
		case "2":
			m.switchScreen(screenTeams)
			return m, nil
		case "3":
			m.switchScreen(screenDiscover)
			return m, nil
		case "4":
			m.switchScreen(screenProfile)
			return m, nil
		case "5":
			m.switchScreen(screenSettings)
			return m, nil
		case "tab":
			m.switchScreen((m.screen + 1) % 5)
			return m, nil
		case "shift+tab":
			m.switchScreen((m.screen + 4) % 5)
			return m, nil
		}
	}

	switch m.screen {
	case screenChats:
		return m.handleChatsKey(k)
	case screenTeams:
		return m.handleTeamsKey(k)
	case screenDiscover:
		return m.handleDiscoverKey(k)
	case screenProfile:
		return m.handleProfileKey(k)
	case screenSettings:
		return m.handleSettingsKey(k)
	}
	return m, nil
}

// textEntryActive reports whether keystrokes should be routed to a text
// input instead of global shortcuts.
func (m appModel) textEntryActive() bool {
	if m.screen == screenChats && m.chatOpen {
		return true
	}
	if m.screen == screenDiscover && m.searching {
		return true
	}
	if m.screen == screenProfile && m.db.Editor.Editing() {
		return true
	}
	return false
}

func (m appModel) handleChatsKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.chatOpen {
		switch k.String() {
		case "esc", "backspace":
			if m.chatInput.Value() != "" && k.String() == "backspace" {
				break // let the input eat it
			}
			m.db.Conversations.CloseActive()
			m.chatOpen = false
			m.chatInput.SetValue("")
			m.chatInput.Blur()
			m.refreshChatList()
			m.persistUIState()
			return m, nil
		case "enter":
			if c, ok := m.db.Conversations.Active(); ok {
				if _, err := m.db.Conversations.Append(c.ID, m.chatInput.Value()); err == nil {
					m.chatInput.SetValue("")
				}
			}
			return m, nil
		case "ctrl+o":
			return m.openChatCounterpart()
		}
		var cmd tea.Cmd
		m.chatInput, cmd = m.chatInput.Update(k)
		return m, cmd
	}

	if k.String() == "enter" {
		if it, ok := m.chatList.SelectedItem().(chatItem); ok {
			if _, err := m.db.Conversations.Open(it.conv.ID); err == nil {
				m.chatOpen = true
				m.chatInput.Focus()
				m.refreshChatList()
				m.persistUIState()
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.chatList, cmd = m.chatList.Update(k)
	return m, cmd
}

// openChatCounterpart jumps from an open conversation to the team or
// person behind it. Unknown team ids still land on a placeholder detail.
func (m appModel) openChatCounterpart() (tea.Model, tea.Cmd) {
	c, ok := m.db.Conversations.Active()
	if !ok {
		return m, nil
	}
	switch c.Kind {
	case model.ConversationTeam:
		m.db.Conversations.CloseActive()
		m.chatOpen = false
		m.chatInput.Blur()
		m.openTeamID = c.CounterpartID
		m.screen = screenTeams
		m.persistUIState()
	case model.ConversationDirect:
		if _, found := m.db.FindPerson(c.CounterpartID); found {
			m.db.Conversations.CloseActive()
			m.chatOpen = false
			m.chatInput.Blur()
			m.openPersonID = c.CounterpartID
			m.screen = screenDiscover
			m.persistUIState()
		} else {
			m.status = "person not found: " + c.CounterpartID
		}
	}
	return m, nil
}

func (m appModel) handleTeamsKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.openTeamID != "" {
		switch k.String() {
		case "esc", "backspace":
			m.openTeamID = ""
			m.persistUIState()
			return m, nil
		case "m":
			if !m.jumpToConversation(m.openTeamID) {
				m.status = "no conversation with this team yet"
			}
			return m, nil
		}
		return m, nil
	}

	if k.String() == "enter" {
		if it, ok := m.teamList.SelectedItem().(teamItem); ok {
			m.openTeamID = it.team.ID
			m.persistUIState()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.teamList, cmd = m.teamList.Update(k)
	return m, cmd
}

func (m appModel) handleDiscoverKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.openPersonID != "" {
		switch k.String() {
		case "esc", "backspace":
			m.openPersonID = ""
			m.persistUIState()
			return m, nil
		case "m":
			if !m.jumpToConversation(m.openPersonID) {
				m.status = "no conversation with this person yet"
			}
			return m, nil
		}
		return m, nil
	}

	if m.searching {
		switch k.String() {
		case "esc":
			m.searching = false
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.refreshDiscoverList()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(k)
		m.refreshDiscoverList()
		return m, cmd
	}

	switch k.String() {
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil
	case "esc":
		if m.searchInput.Value() != "" || m.category != directory.CategoryAll {
			m.searchInput.SetValue("")
			m.category = directory.CategoryAll
			m.refreshDiscoverList()
		}
		return m, nil
	case "left", "h", "[":
		m.cycleCategory(-1)
		return m, nil
	case "right", "l", "]":
		m.cycleCategory(1)
		return m, nil
	case "enter":
		if it, ok := m.discoverList.SelectedItem().(personItem); ok {
			m.openPersonID = it.person.ID
			m.persistUIState()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.discoverList, cmd = m.discoverList.Update(k)
	return m, cmd
}

func (m *appModel) cycleCategory(delta int) {
	cats := directory.Categories()
	idx := 0
	for i, c := range cats {
		if c == m.category {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(cats)) % len(cats)
	m.category = cats[idx]
	m.refreshDiscoverList()
	m.persistUIState()
}

// jumpToConversation opens the conversation whose counterpart matches the
// given team/person id, if one exists.
func (m *appModel) jumpToConversation(counterpartID string) bool {
	for _, c := range m.db.Conversations.List() {
		if c.CounterpartID != counterpartID {
			continue
		}
		if _, err := m.db.Conversations.Open(c.ID); err != nil {
			return false
		}
		m.screen = screenChats
		m.chatOpen = true
		m.openTeamID = ""
		m.openPersonID = ""
		m.chatInput.Focus()
		m.refreshChatList()
		m.persistUIState()
		return true
	}
	return false
}

func (m appModel) handleProfileKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.db.Editor.Editing() {
		if k.String() == "e" {
			m.beginProfileEdit()
		}
		return m, nil
	}

	switch k.String() {
	case "esc":
		m.discardProfileEdit()
		m.status = "edit discarded"
		return m, nil
	case "ctrl+s":
		m.syncDraftScalars()
		if _, err := m.db.Editor.Commit(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.blurEditInputs()
		m.status = "profile saved"
		return m, nil
	case "tab":
		m.editFocus = (m.editFocus + 1) % 5
		m.applyEditFocus()
		return m, nil
	case "shift+tab":
		m.editFocus = (m.editFocus + 4) % 5
		m.applyEditFocus()
		return m, nil
	case "enter":
		switch m.editFocus {
		case editFocusName, editFocusLocation:
			m.editFocus++
			m.applyEditFocus()
			return m, nil
		case editFocusSkill:
			m.db.Editor.AddSkill(m.skillInput.Value())
			m.skillInput.SetValue("")
			return m, nil
		case editFocusInterest:
			m.db.Editor.AddInterest(m.interestInput.Value())
			m.interestInput.SetValue("")
			return m, nil
		}
	case "ctrl+x":
		// Remove the last chip in the focused set.
		if d, ok := m.db.Editor.Draft(); ok {
			switch m.editFocus {
			case editFocusSkill:
				if n := len(d.Skills); n > 0 {
					m.db.Editor.RemoveSkill(d.Skills[n-1])
				}
				return m, nil
			case editFocusInterest:
				if n := len(d.Interests); n > 0 {
					m.db.Editor.RemoveInterest(d.Interests[n-1])
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.editFocus {
	case editFocusName:
		m.nameInput, cmd = m.nameInput.Update(k)
	case editFocusLocation:
		m.locationInput, cmd = m.locationInput.Update(k)
	case editFocusBio:
		m.bioArea, cmd = m.bioArea.Update(k)
	case editFocusSkill:
		m.skillInput, cmd = m.skillInput.Update(k)
	case editFocusInterest:
		m.interestInput, cmd = m.interestInput.Update(k)
	}
	return m, cmd
}

func (m appModel) handleSettingsKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sectionOpen {
		switch k.String() {
		case "esc", "backspace":
			m.sectionOpen = false
			return m, nil
		}
		if m.openSection == model.SectionNotifications {
			switch k.String() {
			case "a":
				m.notif.Push = !m.notif.Push
			case "b":
				m.notif.Email = !m.notif.Email
			case "c":
				m.notif.TeamInvites = !m.notif.TeamInvites
			case "d":
				m.notif.NewMessages = !m.notif.NewMessages
			case "e":
				m.notif.HackathonUpdates = !m.notif.HackathonUpdates
			case "f":
				m.notif.WeeklyDigest = !m.notif.WeeklyDigest
			}
		}
		if m.openSection == model.SectionPrivacy {
			switch k.String() {
			case "a":
				m.privacy.ProfileVisibility = !m.privacy.ProfileVisibility
			case "b":
				m.privacy.ShowSkills = !m.privacy.ShowSkills
			case "c":
				m.privacy.ShowLocation = !m.privacy.ShowLocation
			case "d":
				m.privacy.AllowDirectMessages = !m.privacy.AllowDirectMessages
			}
		}
		return m, nil
	}

	if k.String() == "enter" {
		if it, ok := m.settingsList.SelectedItem().(sectionItem); ok {
			m.openSection = it.section
			m.sectionOpen = true
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.settingsList, cmd = m.settingsList.Update(k)
	return m, cmd
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
