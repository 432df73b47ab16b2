package store

import (
	"testing"

	"hackmatch/internal/model"
)

type fakeDirectory struct {
	people []model.Person
	teams  []model.Team
}

func (f fakeDirectory) LoadPeople() ([]model.Person, error) { return f.people, nil }
func (f fakeDirectory) LoadTeams() ([]model.Team, error)    { return f.teams, nil }

func TestLoad_ClampsTeamProgress(t *testing.T) {
	t.Parallel()

	dir := fakeDirectory{
		teams: []model.Team{
			{ID: "t1", Name: "Over", Progress: 150, Role: "Developer"},
			{ID: "t2", Name: "Under", Progress: -5},
			{ID: "t3", Name: "OK", Progress: 42},
		},
	}
	seed := SeedSource{}
	db, err := Load(dir, seed, seed, nil, CurrentUserID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := map[string]int{"t1": 100, "t2": 0, "t3": 42}
	for id, p := range want {
		team, ok := db.FindTeam(id)
		if !ok {
			t.Fatalf("team %s missing", id)
		}
		if team.Progress != p {
			t.Fatalf("team %s progress = %d, want %d", id, team.Progress, p)
		}
	}
}

func TestDB_TeamOrPlaceholder(t *testing.T) {
	t.Parallel()

	db, err := LoadSeeded()
	if err != nil {
		t.Fatalf("LoadSeeded: %v", err)
	}

	if got := db.TeamOrPlaceholder("team-phoenix"); got.Name != "Project Phoenix" {
		t.Fatalf("known team: %#v", got)
	}

	ph := db.TeamOrPlaceholder("999")
	if ph.Name != "Team #999" {
		t.Fatalf("placeholder name = %q", ph.Name)
	}
	if ph.ID != "999" || len(ph.MemberIDs) != 0 || len(ph.Skills) != 0 || ph.Progress != 0 {
		t.Fatalf("placeholder shape: %#v", ph)
	}
}

func TestDB_MyTeamsVsSuggested(t *testing.T) {
	t.Parallel()

	db, err := LoadSeeded()
	if err != nil {
		t.Fatalf("LoadSeeded: %v", err)
	}

	mine := db.MyTeams()
	for _, team := range mine {
		if team.Role == "" {
			t.Fatalf("MyTeams included team without role: %#v", team)
		}
	}
	sugg := db.SuggestedTeams()
	for _, team := range sugg {
		if team.Role != "" {
			t.Fatalf("SuggestedTeams included membership team: %#v", team)
		}
	}
	if len(mine)+len(sugg) != len(db.Teams) {
		t.Fatalf("partition mismatch: %d + %d != %d", len(mine), len(sugg), len(db.Teams))
	}
}

func TestSeed_ConversationCounterpartsResolve(t *testing.T) {
	t.Parallel()

	db, err := LoadSeeded()
	if err != nil {
		t.Fatalf("LoadSeeded: %v", err)
	}

	for _, c := range db.Conversations.List() {
		switch c.Kind {
		case model.ConversationTeam:
			if _, ok := db.FindTeam(c.CounterpartID); !ok {
				t.Fatalf("team conversation %s has unknown counterpart %s", c.ID, c.CounterpartID)
			}
		case model.ConversationDirect:
			if _, ok := db.FindPerson(c.CounterpartID); !ok {
				t.Fatalf("direct conversation %s has unknown counterpart %s", c.ID, c.CounterpartID)
			}
		default:
			t.Fatalf("conversation %s has unknown kind %q", c.ID, c.Kind)
		}
	}
}
