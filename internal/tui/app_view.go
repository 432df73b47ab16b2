package tui

import (
	"fmt"
	"strings"

	"hackmatch/internal/directory"
	"hackmatch/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(strings.Repeat(glyphHRule(), max(m.width, 1)))
	b.WriteString("\n")

	switch m.screen {
	case screenChats:
		if m.chatOpen {
			b.WriteString(m.renderConversation())
		} else {
			b.WriteString(m.chatList.View())
		}
	case screenTeams:
		if m.openTeamID != "" {
			b.WriteString(m.renderTeamDetail())
		} else {
			b.WriteString(m.teamList.View())
		}
	case screenDiscover:
		if m.openPersonID != "" {
			b.WriteString(m.renderPersonDetail())
		} else {
			b.WriteString(m.renderDiscover())
		}
	case screenProfile:
		if m.db.Editor.Editing() {
			b.WriteString(m.renderProfileEdit())
		} else {
			b.WriteString(m.renderProfile())
		}
	case screenSettings:
		if m.sectionOpen {
			b.WriteString(m.renderSection())
		} else {
			b.WriteString(m.settingsList.View())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m appModel) renderTabs() string {
	labels := []string{"Chats", "Teams", "Discover", "Profile", "Settings"}
	if n := m.db.Conversations.TotalUnread(); n > 0 {
		labels[0] = fmt.Sprintf("Chats (%d)", n)
	}
	active := lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(colorChromeMutedFg).Padding(0, 1)

	parts := make([]string, 0, len(labels))
	for i, lbl := range labels {
		lbl = fmt.Sprintf("%d %s", i+1, lbl)
		if screen(i) == m.screen {
			parts = append(parts, active.Render(lbl))
		} else {
			parts = append(parts, inactive.Render(lbl))
		}
	}
	return strings.Join(parts, " ")
}

func (m appModel) renderFooter() string {
	hint := ""
	switch {
	case m.screen == screenChats && m.chatOpen:
		hint = "enter send " + glyphBullet() + " ctrl+o open team/person " + glyphBullet() + " esc back"
	case m.screen == screenTeams && m.openTeamID != "":
		hint = "m message team " + glyphBullet() + " esc back"
	case m.screen == screenDiscover && m.openPersonID != "":
		hint = "m message " + glyphBullet() + " esc back"
	case m.screen == screenDiscover && m.searching:
		hint = "enter apply " + glyphBullet() + " esc clear"
	case m.screen == screenDiscover:
		hint = "/ search " + glyphBullet() + " " + glyphArrow() + " category " + glyphBullet() + " enter open"
	case m.screen == screenProfile && m.db.Editor.Editing():
		hint = "tab next field " + glyphBullet() + " enter add chip " + glyphBullet() + " ctrl+x remove chip " + glyphBullet() + " ctrl+s save " + glyphBullet() + " esc discard"
	case m.screen == screenProfile:
		hint = "e edit profile"
	case m.screen == screenSettings && m.sectionOpen:
		hint = "esc back"
	default:
		hint = "enter open " + glyphBullet() + " 1-5/tab switch " + glyphBullet() + " q quit"
	}
	line := styleMuted().Render(hint)
	if m.status != "" {
		line = line + "  " + lipgloss.NewStyle().Foreground(colorAccent).Render(m.status)
	}
	return line
}

func (m appModel) renderConversation() string {
	c, ok := m.db.Conversations.Active()
	if !ok {
		return styleMuted().Render("(no conversation open)")
	}

	var b strings.Builder
	head := styleHeading().Render(c.Name)
	if c.Online {
		head += " " + lipgloss.NewStyle().Foreground(colorOnline).Render(glyphDot()+" online")
	} else if c.LastSeen != "" {
		head += " " + styleMuted().Render(c.LastSeen)
	}
	b.WriteString(head)
	b.WriteString("\n\n")

	mineStyle := lipgloss.NewStyle().Foreground(colorAccent)
	msgs := c.Messages
	// Show the most recent messages that fit above the input row.
	avail := m.height - 8
	if avail < 1 {
		avail = 1
	}
	if len(msgs) > avail {
		msgs = msgs[len(msgs)-avail:]
	}
	for _, msg := range msgs {
		sender := msg.Sender
		if msg.Mine {
			b.WriteString(mineStyle.Render(sender) + " " + msg.Content + "\n")
		} else {
			b.WriteString(styleHeading().Render(sender) + " " + msg.Content + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.chatInput.View())
	return b.String()
}

func (m appModel) renderTeamDetail() string {
	t := m.db.TeamOrPlaceholder(m.openTeamID)

	var b strings.Builder
	b.WriteString(styleHeading().Render(t.Name))
	if t.Status != "" {
		b.WriteString("  " + styleMuted().Render(t.Status))
	}
	b.WriteString("\n\n")
	if t.Project != "" {
		b.WriteString(t.Project + "\n")
	}
	b.WriteString("Progress:" + renderProgressBar(t.Progress) + "\n")
	if t.Role != "" {
		b.WriteString("Your role: " + t.Role + "\n")
	}
	if len(t.Skills) > 0 {
		b.WriteString("Skills: " + strings.Join(t.Skills, ", ") + "\n")
	}
	if len(t.LookingFor) > 0 {
		b.WriteString("Looking for: " + strings.Join(t.LookingFor, ", ") + "\n")
	}
	if len(t.MemberIDs) > 0 {
		names := make([]string, 0, len(t.MemberIDs))
		for _, id := range t.MemberIDs {
			if p, ok := m.db.FindPerson(id); ok {
				names = append(names, p.Name)
			} else {
				names = append(names, id)
			}
		}
		b.WriteString(fmt.Sprintf("Members (%d): %s\n", len(names), strings.Join(names, ", ")))
	}
	if t.Description != "" {
		b.WriteString("\n" + renderMarkdown(t.Description, max(m.width-2, 20)) + "\n")
	}
	return b.String()
}

func (m appModel) renderDiscover() string {
	var b strings.Builder

	chips := make([]string, 0, 6)
	chipActive := lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Padding(0, 1)
	chipIdle := lipgloss.NewStyle().Foreground(colorChromeMutedFg).Padding(0, 1)
	for _, c := range directory.Categories() {
		if c == m.category {
			chips = append(chips, chipActive.Render(c.Label()))
		} else {
			chips = append(chips, chipIdle.Render(c.Label()))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n")
	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
	} else {
		b.WriteString(styleMuted().Render("/ to search"))
	}
	b.WriteString("\n")
	b.WriteString(m.discoverList.View())
	return b.String()
}

func (m appModel) renderPersonDetail() string {
	p, ok := m.db.FindPerson(m.openPersonID)
	if !ok {
		return styleMuted().Render("person not found: " + m.openPersonID)
	}

	var b strings.Builder
	head := styleHeading().Render(p.Name)
	if p.Online {
		head += " " + lipgloss.NewStyle().Foreground(colorOnline).Render(glyphDot()+" online")
	}
	b.WriteString(head + "\n\n")
	b.WriteString(p.Role + "\n")
	if p.Location != "" {
		b.WriteString(p.Location + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %.1f\n", glyphStar(), p.Rating))
	if p.Availability != "" {
		b.WriteString(p.Availability + "\n")
	}
	if len(p.Skills) > 0 {
		b.WriteString("Skills: " + strings.Join(p.Skills, ", ") + "\n")
	}
	return b.String()
}

func (m appModel) renderProfile() string {
	p := m.db.Editor.Current()

	var b strings.Builder
	b.WriteString(styleHeading().Render(p.Name) + "\n")
	b.WriteString(styleMuted().Render(joinNonEmpty("  ", p.Location, p.Email, "Joined "+p.JoinedDate)) + "\n\n")
	if p.Bio != "" {
		b.WriteString(p.Bio + "\n\n")
	}
	if p.Experience != "" {
		b.WriteString("Experience: " + p.Experience + "\n")
	}
	if len(p.Skills) > 0 {
		b.WriteString("Skills: " + strings.Join(p.Skills, ", ") + "\n")
	}
	if len(p.Interests) > 0 {
		b.WriteString("Interests: " + strings.Join(p.Interests, ", ") + "\n")
	}
	if links := joinNonEmpty("  ", p.GitHubURL, p.LinkedInURL, p.PortfolioURL); links != "" {
		b.WriteString(styleMuted().Render(links) + "\n")
	}
	if len(p.Achievements) > 0 {
		b.WriteString("\n" + styleHeading().Render("Achievements") + "\n")
		for _, a := range p.Achievements {
			b.WriteString(fmt.Sprintf("%s %s  %s\n", a.Icon, a.Title, styleMuted().Render(a.Date)))
		}
	}
	if len(p.TeamHistory) > 0 {
		b.WriteString("\n" + styleHeading().Render("Teams") + "\n")
		for _, t := range p.TeamHistory {
			b.WriteString(fmt.Sprintf("%s  %s  %s  %d members\n", t.Name, t.Role, styleMuted().Render(t.Status), t.Members))
		}
	}
	return b.String()
}

func (m appModel) renderProfileEdit() string {
	d, ok := m.db.Editor.Draft()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleHeading().Render("Edit Profile") + "\n\n")
	b.WriteString("Name      " + m.nameInput.View() + "\n")
	b.WriteString("Location  " + m.locationInput.View() + "\n")
	b.WriteString("Bio\n" + m.bioArea.View() + "\n")
	b.WriteString("Skills: " + strings.Join(d.Skills, ", ") + "\n")
	b.WriteString("  " + m.skillInput.View() + "\n")
	b.WriteString("Interests: " + strings.Join(d.Interests, ", ") + "\n")
	b.WriteString("  " + m.interestInput.View() + "\n")
	return b.String()
}

func (m appModel) renderSection() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render(m.openSection.Label()) + "\n\n")

	switch m.openSection {
	case model.SectionNotifications:
		rows := []struct {
			key   string
			label string
			on    bool
		}{
			{"a", "Push notifications", m.notif.Push},
			{"b", "Email notifications", m.notif.Email},
			{"c", "Team invites", m.notif.TeamInvites},
			{"d", "New messages", m.notif.NewMessages},
			{"e", "Hackathon updates", m.notif.HackathonUpdates},
			{"f", "Weekly digest", m.notif.WeeklyDigest},
		}
		for _, r := range rows {
			b.WriteString(fmt.Sprintf("%s %s  %s\n", checkbox(r.on), r.label, styleMuted().Render("("+r.key+")")))
		}
	case model.SectionPrivacy:
		rows := []struct {
			key   string
			label string
			on    bool
		}{
			{"a", "Profile visibility", m.privacy.ProfileVisibility},
			{"b", "Show skills", m.privacy.ShowSkills},
			{"c", "Show location", m.privacy.ShowLocation},
			{"d", "Allow direct messages", m.privacy.AllowDirectMessages},
		}
		for _, r := range rows {
			b.WriteString(fmt.Sprintf("%s %s  %s\n", checkbox(r.on), r.label, styleMuted().Render("("+r.key+")")))
		}
	default:
		b.WriteString(renderMarkdown(sectionBody(m.openSection), max(m.width-2, 20)))
		b.WriteString("\n")
	}
	return b.String()
}
