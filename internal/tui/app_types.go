package tui

type screen int

const (
	screenChats screen = iota
	screenTeams
	screenDiscover
	screenProfile
	screenSettings
)

func screenToString(s screen) string {
	switch s {
	case screenChats:
		return "chats"
	case screenTeams:
		return "teams"
	case screenDiscover:
		return "discover"
	case screenProfile:
		return "profile"
	case screenSettings:
		return "settings"
	}
	return ""
}

func screenFromString(v string) (screen, bool) {
	switch v {
	case "chats":
		return screenChats, true
	case "teams":
		return screenTeams, true
	case "discover":
		return screenDiscover, true
	case "profile":
		return screenProfile, true
	case "settings":
		return screenSettings, true
	}
	return screenChats, false
}

type editFocus int

const (
	editFocusName editFocus = iota
	editFocusLocation
	editFocusBio
	editFocusSkill
	editFocusInterest
)
