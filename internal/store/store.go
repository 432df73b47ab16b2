package store

import (
	"hackmatch/internal/model"
)

// CurrentUserID identifies the session owner in seeded data and message
// authorship checks.
const CurrentUserID = "usr-you"

// DB holds the session's entity collections. Everything is seeded at
// startup from the configured sources and treated as read-mostly: only the
// profile (via ProfileEditor) and conversations (via ConversationStore)
// mutate during a session, and nothing is written back on exit.
type DB struct {
	UserID string         `json:"userId"`
	People []model.Person `json:"people"`
	Teams  []model.Team   `json:"teams"`

	Conversations *ConversationStore `json:"-"`
	Editor        *ProfileEditor     `json:"-"`
}

// Load seeds a DB from the given sources. Team progress is clamped at this
// boundary so the rest of the app can rely on the [0,100] invariant.
func Load(dir DirectorySource, conv ConversationSource, prof ProfileSource, sink PersistenceSink, userID string) (*DB, error) {
	people, err := dir.LoadPeople()
	if err != nil {
		return nil, err
	}
	teams, err := dir.LoadTeams()
	if err != nil {
		return nil, err
	}
	for i := range teams {
		teams[i].Progress = model.ClampProgress(teams[i].Progress)
	}
	convs, err := conv.LoadConversations(userID)
	if err != nil {
		return nil, err
	}
	profile, err := prof.LoadProfile(userID)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NopSink{}
	}

	db := &DB{
		UserID: userID,
		People: people,
		Teams:  teams,
	}
	db.Conversations = NewConversationStore(convs, sink)
	db.Editor = NewProfileEditor(profile, sink)
	return db, nil
}

func (db *DB) FindPerson(id string) (*model.Person, bool) {
	for i := range db.People {
		if db.People[i].ID == id {
			return &db.People[i], true
		}
	}
	return nil, false
}

func (db *DB) FindTeam(id string) (*model.Team, bool) {
	for i := range db.Teams {
		if db.Teams[i].ID == id {
			return &db.Teams[i], true
		}
	}
	return nil, false
}

// TeamOrPlaceholder resolves a team id, falling back to the documented
// placeholder record for unknown ids so detail views never fail.
func (db *DB) TeamOrPlaceholder(id string) model.Team {
	if t, ok := db.FindTeam(id); ok {
		return *t
	}
	return model.PlaceholderTeam(id)
}

// MyTeams returns teams the current user belongs to (those with a role).
func (db *DB) MyTeams() []model.Team {
	var out []model.Team
	for _, t := range db.Teams {
		if t.Role != "" {
			out = append(out, t)
		}
	}
	return out
}

// SuggestedTeams returns teams the user is not on, i.e. candidates to join.
func (db *DB) SuggestedTeams() []model.Team {
	var out []model.Team
	for _, t := range db.Teams {
		if t.Role == "" {
			out = append(out, t)
		}
	}
	return out
}
