package directory

import (
	"reflect"
	"testing"

	"hackmatch/internal/model"
)

func testPeople() []model.Person {
	return []model.Person{
		{ID: "p1", Name: "Ethan Carter", Role: "Python, Data Analysis", Location: "San Francisco, CA", Skills: []string{"Python", "Machine Learning", "Data Science"}},
		{ID: "p2", Name: "Sophia Bennett", Role: "UI/UX Design, Figma", Location: "New York, NY", Skills: []string{"UI/UX", "Figma", "Design Systems"}},
		{ID: "p3", Name: "Pragya Misra", Role: "React, JavaScript", Location: "Austin, TX", Skills: []string{"React", "JavaScript", "Frontend"}},
		{ID: "p4", Name: "Noah Foster", Role: "Java, Android Development", Location: "Boston, MA", Skills: []string{"Java", "Android", "Mobile"}},
	}
}

func TestFilterPeople_QueryMatchesNameRoleSkills(t *testing.T) {
	t.Parallel()

	people := testPeople()

	byName := FilterPeople(people, "pragya", CategoryAll)
	if len(byName) != 1 || byName[0].ID != "p3" {
		t.Fatalf("query by name: got %#v", byName)
	}

	byRole := FilterPeople(people, "data analysis", CategoryAll)
	if len(byRole) != 1 || byRole[0].ID != "p1" {
		t.Fatalf("query by role: got %#v", byRole)
	}

	bySkill := FilterPeople(people, "figma", CategoryAll)
	if len(bySkill) != 1 || bySkill[0].ID != "p2" {
		t.Fatalf("query by skill: got %#v", bySkill)
	}
}

func TestFilterPeople_CategoryIntersectsSkills(t *testing.T) {
	t.Parallel()

	people := testPeople()

	frontend := FilterPeople(people, "", CategoryFrontend)
	if len(frontend) != 1 || frontend[0].ID != "p3" {
		t.Fatalf("frontend: got %#v", frontend)
	}

	mobile := FilterPeople(people, "", CategoryMobile)
	if len(mobile) != 1 || mobile[0].ID != "p4" {
		t.Fatalf("mobile: got %#v", mobile)
	}

	// Query and category combine conjunctively.
	both := FilterPeople(people, "react", CategoryMobile)
	if len(both) != 0 {
		t.Fatalf("react+mobile should be empty: got %#v", both)
	}
}

func TestFilterPeople_EmptyFilterIsIdentityAndPure(t *testing.T) {
	t.Parallel()

	people := testPeople()
	got := FilterPeople(people, "", CategoryAll)
	if !reflect.DeepEqual(got, people) {
		t.Fatalf("identity filter changed result:\nwant: %#v\ngot:  %#v", people, got)
	}

	// Filtering twice with the same filter is idempotent.
	once := FilterPeople(people, "a", CategoryAll)
	twice := FilterPeople(once, "a", CategoryAll)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
	}

	// Inputs must not be mutated.
	if !reflect.DeepEqual(people, testPeople()) {
		t.Fatalf("input slice mutated: %#v", people)
	}
}

func TestFilterTeams(t *testing.T) {
	t.Parallel()

	teams := []model.Team{
		{ID: "t1", Name: "Team Alpha", Project: "AI-powered fitness tracker", Skills: []string{"React", "Python", "ML"}},
		{ID: "t2", Name: "Team Beta", Project: "Sustainable energy dashboard", Skills: []string{"Vue.js", "Node.js", "IoT"}},
		{ID: "t3", Name: "Team Gamma", Project: "Social impact marketplace", Skills: []string{"React Native", "Firebase", "Design"}},
	}

	ml := FilterTeams(teams, "", CategoryML)
	if len(ml) != 1 || ml[0].ID != "t1" {
		t.Fatalf("ml: got %#v", ml)
	}

	byProject := FilterTeams(teams, "marketplace", CategoryAll)
	if len(byProject) != 1 || byProject[0].ID != "t3" {
		t.Fatalf("query by project: got %#v", byProject)
	}

	// Relative order of survivors is preserved.
	frontend := FilterTeams(teams, "", CategoryFrontend)
	if len(frontend) != 2 || frontend[0].ID != "t1" || frontend[1].ID != "t2" {
		t.Fatalf("frontend order: got %#v", frontend)
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	if c, err := ParseCategory("  Frontend "); err != nil || c != CategoryFrontend {
		t.Fatalf("ParseCategory(Frontend): %v %v", c, err)
	}
	if c, err := ParseCategory(""); err != nil || c != CategoryAll {
		t.Fatalf("ParseCategory(empty): %v %v", c, err)
	}
	if _, err := ParseCategory("gamedev"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}
