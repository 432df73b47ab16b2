// Package directory filters and ranks the browsable People/Teams
// collections. All functions are pure: they never mutate their inputs and
// preserve the original relative order of matches.
package directory

import (
	"fmt"
	"strings"

	"hackmatch/internal/model"
)

type Category string

const (
	CategoryAll      Category = "all"
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDesign   Category = "design"
	CategoryML       Category = "ml"
	CategoryMobile   Category = "mobile"
)

// Categories returns the fixed filter set in display order.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryFrontend,
		CategoryBackend,
		CategoryDesign,
		CategoryML,
		CategoryMobile,
	}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryAll, nil
	}
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q (expected all|frontend|backend|design|ml|mobile)", s)
}

func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "All"
	case CategoryFrontend:
		return "Frontend"
	case CategoryBackend:
		return "Backend"
	case CategoryDesign:
		return "Design"
	case CategoryML:
		return "ML/AI"
	case CategoryMobile:
		return "Mobile"
	default:
		return string(c)
	}
}

// categorySkills maps each category to the skill tags it matches
// (compared case-insensitively against entity skill tags).
var categorySkills = map[Category][]string{
	CategoryFrontend: {"react", "javascript", "typescript", "frontend", "vue.js", "html", "css"},
	CategoryBackend:  {"backend", "node.js", "python", "java", "go", "iot", "firebase"},
	CategoryDesign:   {"ui/ux", "figma", "design systems", "design", "ui/ux design"},
	CategoryML:       {"ml", "ai", "machine learning", "tensorflow", "data science", "data analysis"},
	CategoryMobile:   {"mobile", "ios", "swift", "android", "react native"},
}

// FilterPeople returns the ordered subsequence of people whose searchable
// fields (name, role, location, skills) contain query as a case-insensitive
// substring and whose skills intersect the category's skill set. An empty
// query and CategoryAll are both no-op passes.
func FilterPeople(people []model.Person, query string, cat Category) []model.Person {
	out := make([]model.Person, 0, len(people))
	for _, p := range people {
		if !matchesQuery(query, p.Name, p.Role, p.Location, strings.Join(p.Skills, " ")) {
			continue
		}
		if !matchesCategory(cat, p.Skills) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterTeams is FilterPeople for teams; searchable fields are name,
// project description, and team skills.
func FilterTeams(teams []model.Team, query string, cat Category) []model.Team {
	out := make([]model.Team, 0, len(teams))
	for _, t := range teams {
		if !matchesQuery(query, t.Name, t.Project, strings.Join(t.Skills, " ")) {
			continue
		}
		if !matchesCategory(cat, t.Skills) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesCategory(cat Category, skills []string) bool {
	if cat == "" || cat == CategoryAll {
		return true
	}
	wanted := categorySkills[cat]
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		for _, w := range wanted {
			if s == w {
				return true
			}
		}
	}
	return false
}
