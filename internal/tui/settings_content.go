package tui

import "hackmatch/internal/model"

// sectionBody returns the static markdown body for informational settings
// sections. Notifications and Privacy render interactive toggles instead.
func sectionBody(s model.SettingsSection) string {
	switch s {
	case model.SectionAppearance:
		return `The TUI adapts to your terminal's light or dark background
automatically. To force a palette, set:

- ` + "`HACKMATCH_TUI_THEME=light|dark|auto`" + `
- ` + "`HACKMATCH_TUI_GLYPHS=unicode|ascii`" + ` for fonts that render
  some glyphs poorly
- ` + "`NO_COLOR=1`" + ` to disable colors entirely`
	case model.SectionLanguage:
		return `HackMatch is currently available in **English** only.
Dates and times follow your system locale.`
	case model.SectionHelp:
		return `## Getting started

- **Discover** people by skill category or free-text search
- **Teams** shows your teams and suggestions looking for members
- **Chats** keeps team and direct conversations in one inbox

## Shortcuts

Press the number keys 1-5 (or tab) to switch screens. Esc always goes
back one level.`
	case model.SectionContact:
		return `Questions or problems? Reach us at **support@hackmatch.dev**.
Include your platform and what you were doing when the issue occurred.`
	case model.SectionGuidelines:
		return `## Community Guidelines

1. Be respectful. Teammates come from every background and skill level.
2. Keep conversations on topic and harassment-free.
3. Represent your skills honestly on your profile.
4. Report behavior that breaks these rules via Contact Support.`
	default:
		return ""
	}
}
