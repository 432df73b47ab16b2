package model

import (
	"fmt"
	"strings"
	"time"
)

// Person is a directory entry: someone who can be browsed, matched, and
// messaged. IDs are assigned by the directory source and are stable and
// unique for the lifetime of a session.
type Person struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Location     string   `json:"location"`
	Avatar       string   `json:"avatar,omitempty"`
	Skills       []string `json:"skills"`
	Rating       float64  `json:"rating"`
	Availability string   `json:"availability,omitempty"`
	Online       bool     `json:"online"`
}

type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Project     string `json:"project"`
	Description string `json:"description,omitempty"`
	// Status is a free-text label, e.g. "Live Hackathon" or "Hackathon 2022".
	Status string `json:"status,omitempty"`
	// Progress is clamped to [0,100] at the source boundary.
	Progress  int      `json:"progress"`
	MemberIDs []string `json:"memberIds"`
	// Role is the current user's role on this team ("Team Lead", "Developer", ...).
	// Empty for teams the user is not a member of.
	Role       string   `json:"role,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	LookingFor []string `json:"lookingFor,omitempty"`
}

// ClampProgress bounds a raw progress value to [0,100].
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// PlaceholderTeam synthesizes a minimal Team for an id that cannot be
// resolved, so detail views never fail outright (e.g. a stale deep link).
func PlaceholderTeam(id string) Team {
	return Team{
		ID:          id,
		Name:        fmt.Sprintf("Team #%s", id),
		Project:     "Project details coming soon",
		Description: "We couldn't load the full context for this team. Try navigating from the Teams screen to see all details.",
		Progress:    0,
		MemberIDs:   []string{},
		Skills:      []string{},
	}
}

type ConversationKind string

const (
	ConversationTeam   ConversationKind = "team"
	ConversationDirect ConversationKind = "direct"
)

// Message is immutable once appended to a conversation; ordering within a
// conversation is insertion order.
type Message struct {
	ID       string    `json:"id"`
	SenderID string    `json:"senderId"`
	Sender   string    `json:"sender"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sentAt"`
	// Mine marks messages authored by the current user.
	Mine bool `json:"mine"`
}

// Conversation is a message thread tied to either a team or a single other
// person (the counterpart). Messages are append-only.
type Conversation struct {
	ID   string           `json:"id"`
	Kind ConversationKind `json:"kind"`
	// CounterpartID references a Team id (kind=team) or Person id (kind=direct).
	CounterpartID string    `json:"counterpartId"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar,omitempty"`
	Online        bool      `json:"online"`
	LastSeen      string    `json:"lastSeen,omitempty"`
	Unread        int       `json:"unread"`
	Messages      []Message `json:"messages"`
	LastActivity  time.Time `json:"lastActivity"`
}

type Achievement struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Icon  string `json:"icon,omitempty"`
}

// TeamMembership is a read-only entry in the profile's team history.
type TeamMembership struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Status  string `json:"status"`
	Members int    `json:"members"`
}

// ProfileData is the current user's own record. Skills and interests have
// set semantics (no duplicates); Achievements and TeamHistory are read-only.
type ProfileData struct {
	Name         string   `json:"name"`
	Bio          string   `json:"bio,omitempty"`
	Location     string   `json:"location,omitempty"`
	Email        string   `json:"email,omitempty"`
	GitHubURL    string   `json:"githubUrl,omitempty"`
	LinkedInURL  string   `json:"linkedinUrl,omitempty"`
	PortfolioURL string   `json:"portfolioUrl,omitempty"`
	JoinedDate   string   `json:"joinedDate,omitempty"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	Experience   string   `json:"experience,omitempty"`

	Achievements []Achievement    `json:"achievements,omitempty"`
	TeamHistory  []TeamMembership `json:"teamHistory,omitempty"`
}

// Clone returns a deep copy so callers can hand out profile data without
// exposing the committed record to mutation.
func (p ProfileData) Clone() ProfileData {
	out := p
	out.Skills = append([]string(nil), p.Skills...)
	out.Interests = append([]string(nil), p.Interests...)
	out.Achievements = append([]Achievement(nil), p.Achievements...)
	out.TeamHistory = append([]TeamMembership(nil), p.TeamHistory...)
	return out
}

type SettingsSection string

const (
	SectionNotifications SettingsSection = "notifications"
	SectionPrivacy       SettingsSection = "privacy"
	SectionAppearance    SettingsSection = "appearance"
	SectionLanguage      SettingsSection = "language"
	SectionHelp          SettingsSection = "help"
	SectionContact       SettingsSection = "contact"
	SectionGuidelines    SettingsSection = "guidelines"
)

// SettingsSections returns the fixed section list in display order
// (Account group first, then Support).
func SettingsSections() []SettingsSection {
	return []SettingsSection{
		SectionNotifications,
		SectionPrivacy,
		SectionAppearance,
		SectionLanguage,
		SectionHelp,
		SectionContact,
		SectionGuidelines,
	}
}

func ParseSettingsSection(s string) (SettingsSection, error) {
	sec := SettingsSection(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SettingsSections() {
		if sec == known {
			return sec, nil
		}
	}
	return "", fmt.Errorf("invalid settings section: %q", s)
}

func (s SettingsSection) Label() string {
	switch s {
	case SectionNotifications:
		return "Notifications"
	case SectionPrivacy:
		return "Privacy & Security"
	case SectionAppearance:
		return "Appearance"
	case SectionLanguage:
		return "Language & Region"
	case SectionHelp:
		return "Help Center"
	case SectionContact:
		return "Contact Support"
	case SectionGuidelines:
		return "Community Guidelines"
	default:
		return string(s)
	}
}

// NotificationPrefs and PrivacyPrefs back the toggle rows on the settings
// screen. Session-local: they are not persisted.
type NotificationPrefs struct {
	Push             bool `json:"push"`
	Email            bool `json:"email"`
	TeamInvites      bool `json:"teamInvites"`
	NewMessages      bool `json:"newMessages"`
	HackathonUpdates bool `json:"hackathonUpdates"`
	WeeklyDigest     bool `json:"weeklyDigest"`
}

type PrivacyPrefs struct {
	ProfileVisibility   bool `json:"profileVisibility"`
	ShowSkills          bool `json:"showSkills"`
	ShowLocation        bool `json:"showLocation"`
	AllowDirectMessages bool `json:"allowDirectMessages"`
}
