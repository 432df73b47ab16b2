package store

import (
	"time"

	"hackmatch/internal/model"
)

// SeedSource is the static, in-process data source used until a real
// backend exists. It implements DirectorySource, ConversationSource, and
// ProfileSource.
type SeedSource struct {
	// Now anchors relative "last activity" timestamps; zero means time.Now.
	Now time.Time
}

var (
	_ DirectorySource    = SeedSource{}
	_ ConversationSource = SeedSource{}
	_ ProfileSource      = SeedSource{}
)

// LoadSeeded builds a DB from the static seed with a no-op persistence sink.
func LoadSeeded() (*DB, error) {
	src := SeedSource{}
	return Load(src, src, src, NopSink{}, CurrentUserID)
}

func (s SeedSource) now() time.Time {
	if s.Now.IsZero() {
		return time.Now()
	}
	return s.Now
}

func (s SeedSource) LoadPeople() ([]model.Person, error) {
	return []model.Person{
		{
			ID:           "usr-ethan",
			Name:         "Ethan Carter",
			Role:         "Python, Data Analysis",
			Location:     "San Francisco, CA",
			Skills:       []string{"Python", "Machine Learning", "Data Science"},
			Rating:       4.9,
			Availability: "Available now",
		},
		{
			ID:           "usr-sophia",
			Name:         "Sophia Bennett",
			Role:         "UI/UX Design, Figma",
			Location:     "New York, NY",
			Skills:       []string{"UI/UX", "Figma", "Design Systems"},
			Rating:       4.8,
			Availability: "Available weekends",
		},
		{
			ID:           "usr-pragya",
			Name:         "Pragya Misra",
			Role:         "React, JavaScript",
			Location:     "Austin, TX",
			Skills:       []string{"React", "JavaScript", "Frontend"},
			Rating:       4.7,
			Availability: "Available now",
			Online:       true,
		},
		{
			ID:           "usr-olivia",
			Name:         "Olivia Hayes",
			Role:         "Machine Learning, TensorFlow",
			Location:     "Seattle, WA",
			Skills:       []string{"ML", "TensorFlow", "AI"},
			Rating:       5.0,
			Availability: "Available evenings",
		},
		{
			ID:           "usr-noah",
			Name:         "Noah Foster",
			Role:         "Java, Android Development",
			Location:     "Boston, MA",
			Skills:       []string{"Java", "Android", "Mobile"},
			Rating:       4.6,
			Availability: "Available now",
		},
		{
			ID:           "usr-ava",
			Name:         "Ava Mitchell",
			Role:         "iOS Development, Swift",
			Location:     "Los Angeles, CA",
			Skills:       []string{"iOS", "Swift", "Mobile"},
			Rating:       4.9,
			Availability: "Available weekends",
		},
		{
			ID:           "usr-sarah",
			Name:         "Sarah Bennett",
			Role:         "Product Design",
			Location:     "Portland, OR",
			Skills:       []string{"UI/UX", "Design", "Figma"},
			Rating:       4.8,
			Availability: "Available now",
			Online:       true,
		},
	}, nil
}

func (s SeedSource) LoadTeams() ([]model.Team, error) {
	return []model.Team{
		{
			ID:        "team-phoenix",
			Name:      "Project Phoenix",
			Project:   "EcoTrack - Sustainability tracker app",
			Status:    "Live Hackathon",
			Progress:  75,
			MemberIDs: []string{"usr-alex", "usr-maria", "usr-david", CurrentUserID},
			Role:      "Team Lead",
			Skills:    []string{"React", "Python", "Sustainability"},
		},
		{
			ID:        "team-crusaders",
			Name:      "Code Crusaders",
			Project:   "HealthHub - Wellness platform",
			Status:    "Hackathon 2022",
			Progress:  100,
			MemberIDs: []string{"usr-sarah", "usr-ben", "usr-chloe", CurrentUserID},
			Role:      "Developer",
			Skills:    []string{"Vue.js", "Node.js", "Design"},
		},
		{
			ID:         "team-alpha",
			Name:       "Team Alpha",
			Project:    "AI-powered fitness tracker",
			Progress:   40,
			MemberIDs:  []string{"usr-ethan", "usr-olivia", "usr-pragya", "usr-noah"},
			Skills:     []string{"React", "Python", "ML"},
			LookingFor: []string{"Frontend Developer", "UI Designer"},
		},
		{
			ID:         "team-beta",
			Name:       "Team Beta",
			Project:    "Sustainable energy dashboard",
			Progress:   60,
			MemberIDs:  []string{"usr-sophia", "usr-ava", "usr-noah", "usr-ethan", "usr-olivia", "usr-pragya"},
			Skills:     []string{"Vue.js", "Node.js", "IoT"},
			LookingFor: []string{"Backend Developer", "Data Scientist"},
		},
		{
			ID:         "team-gamma",
			Name:       "Team Gamma",
			Project:    "Social impact marketplace",
			Progress:   25,
			MemberIDs:  []string{"usr-ava", "usr-sophia", "usr-sarah"},
			Skills:     []string{"React Native", "Firebase", "Design"},
			LookingFor: []string{"Mobile Developer", "Product Manager"},
		},
	}, nil
}

func (s SeedSource) LoadConversations(userID string) ([]model.Conversation, error) {
	now := s.now()
	return []model.Conversation{
		{
			ID:            "conv-phoenix",
			Kind:          model.ConversationTeam,
			CounterpartID: "team-phoenix",
			Name:          "Project Phoenix",
			Online:        true,
			Unread:        3,
			LastActivity:  now.Add(-2 * time.Minute),
			Messages: []model.Message{
				{ID: "msg-ph-1", SenderID: "usr-alex", Sender: "Alex", Content: "Hey team! Just pushed the latest changes to the repo", SentAt: now.Add(-10 * time.Minute)},
				{ID: "msg-ph-2", SenderID: userID, Sender: "You", Content: "Awesome! I'll review them now and start working on the UI components", SentAt: now.Add(-8 * time.Minute), Mine: true},
				{ID: "msg-ph-3", SenderID: "usr-maria", Sender: "Maria", Content: "The data visualization is looking great! 📊", SentAt: now.Add(-5 * time.Minute)},
				{ID: "msg-ph-4", SenderID: userID, Sender: "You", Content: "Thanks! Should we schedule a demo for this afternoon?", SentAt: now.Add(-3 * time.Minute), Mine: true},
				{ID: "msg-ph-5", SenderID: "usr-alex", Sender: "Alex", Content: "Great work on the frontend! 🚀", SentAt: now.Add(-2 * time.Minute)},
			},
		},
		{
			ID:            "conv-sarah",
			Kind:          model.ConversationDirect,
			CounterpartID: "usr-sarah",
			Name:          "Sarah Bennett",
			Online:        true,
			Unread:        1,
			LastActivity:  now.Add(-15 * time.Minute),
			Messages: []model.Message{
				{ID: "msg-sb-1", SenderID: "usr-sarah", Sender: "Sarah Bennett", Content: "Let's schedule the design review for tomorrow", SentAt: now.Add(-15 * time.Minute)},
			},
		},
		{
			ID:            "conv-crusaders",
			Kind:          model.ConversationTeam,
			CounterpartID: "team-crusaders",
			Name:          "Code Crusaders",
			Unread:        0,
			LastActivity:  now.Add(-1 * time.Hour),
			Messages: []model.Message{
				{ID: "msg-cc-1", SenderID: "usr-ben", Sender: "Ben", Content: "Hackathon submission is ready!", SentAt: now.Add(-1 * time.Hour)},
			},
		},
		{
			ID:            "conv-ethan",
			Kind:          model.ConversationDirect,
			CounterpartID: "usr-ethan",
			Name:          "Ethan Carter",
			LastSeen:      "Last seen 2h ago",
			Unread:        0,
			LastActivity:  now.Add(-3 * time.Hour),
			Messages: []model.Message{
				{ID: "msg-ec-1", SenderID: "usr-ethan", Sender: "Ethan Carter", Content: "Thanks for the Python help earlier!", SentAt: now.Add(-3 * time.Hour)},
			},
		},
	}, nil
}

func (s SeedSource) LoadProfile(userID string) (model.ProfileData, error) {
	return model.ProfileData{
		Name:         "Alex Johnson",
		Bio:          "Full-stack developer passionate about creating innovative solutions. Love working on hackathons and building products that make a difference.",
		Location:     "San Francisco, CA",
		Email:        "alex.johnson@email.com",
		GitHubURL:    "https://github.com/alexjohnson",
		LinkedInURL:  "https://linkedin.com/in/alexjohnson",
		PortfolioURL: "https://alexjohnson.dev",
		JoinedDate:   "March 2023",
		Skills:       []string{"React", "TypeScript", "Node.js", "Python", "UI/UX Design"},
		Interests:    []string{"Sustainability", "AI/ML", "Web3", "Mobile Development"},
		Experience:   "3+ years in software development",
		Achievements: []model.Achievement{
			{Title: "First Place - EcoHack 2023", Date: "November 2023", Icon: "🏆"},
			{Title: "Best Design - HealthTech Challenge", Date: "August 2023", Icon: "🎨"},
			{Title: "People's Choice - AI Innovation Summit", Date: "May 2023", Icon: "⭐"},
		},
		TeamHistory: []model.TeamMembership{
			{Name: "Project Phoenix", Role: "Team Lead", Status: "Active", Members: 5},
			{Name: "Code Crusaders", Role: "Developer", Status: "Completed", Members: 3},
			{Name: "Innovation Squad", Role: "UI Designer", Status: "Completed", Members: 4},
		},
	}, nil
}
