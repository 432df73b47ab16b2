package tui

import (
	"context"

	"hackmatch/internal/directory"
	"hackmatch/internal/model"
	"hackmatch/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	st store.Store
	db *store.DB

	screen screen
	width  int
	height int

	// Chats.
	chatList  list.Model
	chatOpen  bool
	chatInput textinput.Model

	// Teams.
	teamList   list.Model
	openTeamID string

	// Discover.
	discoverList list.Model
	searchInput  textinput.Model
	searching    bool
	category     directory.Category
	openPersonID string

	// Profile editing. The committed/draft split lives in db.Editor; the
	// inputs here only mirror the draft while a session is open.
	editFocus     editFocus
	nameInput     textinput.Model
	locationInput textinput.Model
	bioArea       textarea.Model
	skillInput    textinput.Model
	interestInput textinput.Model

	// Settings.
	settingsList list.Model
	sectionOpen  bool
	openSection  model.SettingsSection
	notif        model.NotificationPrefs
	privacy      model.PrivacyPrefs

	status string
}

func newAppModel(st store.Store, db *store.DB) appModel {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	m := appModel{
		st:       st,
		db:       db,
		screen:   screenChats,
		category: directory.CategoryAll,
		notif: model.NotificationPrefs{
			Push:             true,
			TeamInvites:      true,
			NewMessages:      true,
			HackathonUpdates: true,
		},
		privacy: model.PrivacyPrefs{
			ProfileVisibility:   true,
			ShowSkills:          true,
			AllowDirectMessages: true,
		},
	}

	m.chatList = newList(nil)
	m.teamList = newList(nil)
	m.discoverList = newList(nil)
	m.settingsList = newList(nil)

	m.chatInput = textinput.New()
	m.chatInput.Placeholder = "Type a message..."
	m.chatInput.CharLimit = 500

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search people..."
	m.searchInput.CharLimit = 100

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Name"
	m.locationInput = textinput.New()
	m.locationInput.Placeholder = "Location"
	m.bioArea = textarea.New()
	m.bioArea.Placeholder = "Bio"
	m.bioArea.SetHeight(4)
	m.skillInput = textinput.New()
	m.skillInput.Placeholder = "Add skill"
	m.interestInput = textinput.New()
	m.interestInput.Placeholder = "Add interest"

	m.refreshChatList()
	m.refreshTeamList()
	m.refreshDiscoverList()
	m.refreshSettingsList()

	m.restoreUIState()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) refreshChatList() {
	convs := m.db.Conversations.List()
	items := make([]list.Item, 0, len(convs))
	for _, c := range convs {
		items = append(items, chatItem{conv: c})
	}
	m.chatList.SetItems(items)
}

func (m *appModel) refreshTeamList() {
	var items []list.Item
	if mine := m.db.MyTeams(); len(mine) > 0 {
		items = append(items, headingItem{label: "My Teams"})
		for _, t := range mine {
			items = append(items, teamItem{team: t})
		}
	}
	if sugg := m.db.SuggestedTeams(); len(sugg) > 0 {
		items = append(items, headingItem{label: "Suggested Teams"})
		for _, t := range sugg {
			items = append(items, teamItem{team: t})
		}
	}
	m.teamList.SetItems(items)
	// Land on the first selectable row, not the heading.
	if len(items) > 1 {
		if _, ok := items[m.teamList.Index()].(headingItem); ok {
			m.teamList.Select(1)
		}
	}
}

func (m *appModel) refreshDiscoverList() {
	people := directory.FilterPeople(m.db.People, m.searchInput.Value(), m.category)
	items := make([]list.Item, 0, len(people))
	for _, p := range people {
		items = append(items, personItem{person: p})
	}
	m.discoverList.SetItems(items)
}

func (m *appModel) refreshSettingsList() {
	sections := model.SettingsSections()
	items := make([]list.Item, 0, len(sections))
	for _, s := range sections {
		items = append(items, sectionItem{section: s})
	}
	m.settingsList.SetItems(items)
}

// beginProfileEdit opens a draft and seeds the edit inputs from it.
func (m *appModel) beginProfileEdit() {
	d := m.db.Editor.BeginEdit()
	m.nameInput.SetValue(d.Name)
	m.locationInput.SetValue(d.Location)
	m.bioArea.SetValue(d.Bio)
	m.skillInput.SetValue("")
	m.interestInput.SetValue("")
	m.editFocus = editFocusName
	m.applyEditFocus()
}

// syncDraftScalars pushes the current input values into the draft.
func (m *appModel) syncDraftScalars() {
	m.db.Editor.SetName(m.nameInput.Value())
	m.db.Editor.SetLocation(m.locationInput.Value())
	m.db.Editor.SetBio(m.bioArea.Value())
}

func (m *appModel) discardProfileEdit() {
	m.db.Editor.Discard()
	m.blurEditInputs()
}

func (m *appModel) applyEditFocus() {
	m.blurEditInputs()
	switch m.editFocus {
	case editFocusName:
		m.nameInput.Focus()
	case editFocusLocation:
		m.locationInput.Focus()
	case editFocusBio:
		m.bioArea.Focus()
	case editFocusSkill:
		m.skillInput.Focus()
	case editFocusInterest:
		m.interestInput.Focus()
	}
}

func (m *appModel) blurEditInputs() {
	m.nameInput.Blur()
	m.locationInput.Blur()
	m.bioArea.Blur()
	m.skillInput.Blur()
	m.interestInput.Blur()
}

// restoreUIState reopens the last screen/detail from the previous session.
// Stale ids are validated against the current data and silently dropped.
func (m *appModel) restoreUIState() {
	st, err := m.st.LoadUIState(context.Background())
	if err != nil || st == nil {
		return
	}
	if sc, ok := screenFromString(st.Screen); ok {
		m.screen = sc
	}
	if st.OpenConversationID != "" {
		if _, err := m.db.Conversations.Open(st.OpenConversationID); err == nil {
			m.chatOpen = true
			m.chatInput.Focus()
			m.refreshChatList()
		}
	}
	if st.OpenTeamID != "" {
		if _, ok := m.db.FindTeam(st.OpenTeamID); ok {
			m.openTeamID = st.OpenTeamID
		}
	}
	if st.OpenPersonID != "" {
		if _, ok := m.db.FindPerson(st.OpenPersonID); ok {
			m.openPersonID = st.OpenPersonID
		}
	}
	if cat, err := directory.ParseCategory(st.DiscoverCategory); err == nil {
		m.category = cat
		m.refreshDiscoverList()
	}
}

// persistUIState is best-effort; a broken state dir never blocks the UI.
func (m *appModel) persistUIState() {
	st := &store.UIState{
		Version:          1,
		Screen:           screenToString(m.screen),
		OpenTeamID:       m.openTeamID,
		OpenPersonID:     m.openPersonID,
		DiscoverCategory: string(m.category),
	}
	if m.chatOpen {
		if c, ok := m.db.Conversations.Active(); ok {
			st.OpenConversationID = c.ID
		}
	}
	_ = m.st.SaveUIState(context.Background(), st)
}

// switchScreen changes the active tab. Leaving the profile screen discards
// any open edit session.
func (m *appModel) switchScreen(sc screen) {
	if m.screen == screenProfile && sc != screenProfile && m.db.Editor.Editing() {
		m.discardProfileEdit()
	}
	m.screen = sc
	m.status = ""
	m.persistUIState()
}

func (m *appModel) setListSizes() {
	w := m.width
	h := m.height - 4 // header + footer chrome
	if h < 1 {
		h = 1
	}
	m.chatList.SetSize(w, h)
	m.teamList.SetSize(w, h)
	m.discoverList.SetSize(w, h-2)
	m.settingsList.SetSize(w, h)
	m.chatInput.Width = w - 4
	m.searchInput.Width = w - 4
	m.bioArea.SetWidth(w - 4)
}
