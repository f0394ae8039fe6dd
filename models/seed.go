package models

import "time"

// Seed dataset used whenever the snapshot store has no saved state (or the
// saved blob fails to parse). Each function returns a fresh copy so callers
// can mutate freely.

// CurrentUserID is the default session identity.
const CurrentUserID = "user-1"

func DefaultProgression() ProgressionSnapshot {
	return ProgressionSnapshot{
		UserLevel: 1,
		UserXP:    150,
		MaxXP:     1000,
		Phases:    DefaultPhases(),
		Badges:    DefaultBadges(),
		UserStats: UserStats{
			Username:        "StartupFounder",
			IdeasShared:     2,
			UpvotesGiven:    7,
			CompletedPhases: []string{},
		},
	}
}

func DefaultPhases() []Phase {
	return []Phase{
		{ID: "validation", Title: "Idea Validation", Description: "Validate your startup idea with real customers", Status: PhaseUnlocked, Progress: 60, XPReward: 200},
		{ID: "mvp", Title: "Build MVP", Description: "Create your minimum viable product", Status: PhaseLocked, Progress: 0, XPReward: 300},
		{ID: "launch", Title: "Product Launch", Description: "Launch your product to the market", Status: PhaseLocked, Progress: 0, XPReward: 400},
		{ID: "monetization", Title: "Monetization", Description: "Implement revenue streams", Status: PhaseLocked, Progress: 0, XPReward: 350},
		{ID: "feedback", Title: "Feedback & Iterate", Description: "Collect feedback and improve", Status: PhaseLocked, Progress: 0, XPReward: 250},
		{ID: "scale", Title: "Pitch & Scale", Description: "Scale your business and get funding", Status: PhaseLocked, Progress: 0, XPReward: 500},
	}
}

func DefaultBadges() []Badge {
	return []Badge{
		{ID: "first-steps", Name: "First Steps", Description: "Complete your first phase"},
		{ID: "validator", Name: "Idea Validator", Description: "Complete the validation phase"},
		{ID: "builder", Name: "MVP Builder", Description: "Successfully build and launch your MVP"},
		{ID: "entrepreneur", Name: "True Entrepreneur", Description: "Complete all startup phases"},
		{ID: "community-member", Name: "Community Member", Description: "Share 5 ideas in the community"},
		{ID: "supporter", Name: "Supportive Member", Description: "Give 10 upvotes to community ideas"},
	}
}

func DefaultUsers() []User {
	return []User{
		{ID: "user-1", Username: "StartupFounder", Level: 3, Avatar: "🚀", IsOnline: true},
		{ID: "user-2", Username: "EcoTechFounder", Level: 5, Avatar: "🌱", IsOnline: true},
		{ID: "user-3", Username: "WellnessBuilder", Level: 4, Avatar: "💊", IsOnline: false},
		{ID: "user-4", Username: "EduChainVision", Level: 6, Avatar: "🎓", IsOnline: true},
	}
}

func DefaultSocial() SocialSnapshot {
	users := DefaultUsers()
	return SocialSnapshot{
		Guilds: []Guild{
			{
				ID:          "guild-1",
				Name:        "Green Tech Innovators",
				Description: "Building sustainable technology solutions for a better planet",
				Category:    "environment",
				OwnerID:     "user-2",
				IsPrivate:   false,
				CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Members: []GuildMember{
					{User: users[1], Role: RoleOwner, JoinedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
					{User: users[0], Role: RoleMember, JoinedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
				},
			},
			{
				ID:          "guild-2",
				Name:        "HealthTech Pioneers",
				Description: "Revolutionizing healthcare with digital solutions",
				Category:    "health",
				OwnerID:     "user-3",
				IsPrivate:   false,
				CreatedAt:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				Members: []GuildMember{
					{User: users[2], Role: RoleOwner, JoinedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
				},
			},
			{
				ID:          "guild-3",
				Name:        "FinTech Disruptors",
				Description: "Creating the future of financial services",
				Category:    "fintech",
				OwnerID:     "user-4",
				IsPrivate:   true,
				CreatedAt:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				Members: []GuildMember{
					{User: users[3], Role: RoleOwner, JoinedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
				},
			},
		},
		GuildRequests: []GuildRequest{
			{
				ID:        "req-1",
				GuildID:   "guild-2",
				UserID:    "user-1",
				Username:  "StartupFounder",
				Message:   "I have experience in health monitoring apps and would love to contribute!",
				Status:    RequestPending,
				CreatedAt: time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
			},
		},
		DirectMessages: []DirectMessage{
			{
				ID:         "dm-1",
				FromUserID: "user-2",
				ToUserID:   "user-1",
				Message:    "Hey! Great work on the sustainability project. Want to collaborate?",
				Timestamp:  time.Date(2024, 1, 21, 10, 30, 0, 0, time.UTC),
				Read:       true,
			},
		},
		GuildMessages: []GuildMessage{
			{
				ID:        "gm-1",
				GuildID:   "guild-1",
				UserID:    "user-2",
				Username:  "EcoTechFounder",
				Message:   "Welcome everyone! Let's discuss our next green tech project.",
				Timestamp: time.Date(2024, 1, 21, 9, 0, 0, 0, time.UTC),
			},
			{
				ID:        "gm-2",
				GuildID:   "guild-1",
				UserID:    "user-1",
				Username:  "StartupFounder",
				Message:   "Excited to be here! I have some ideas about solar energy optimization.",
				Timestamp: time.Date(2024, 1, 21, 9, 15, 0, 0, time.UTC),
			},
		},
	}
}

// MentorGreeting opens every mentor chat session.
const MentorGreeting = "Hi! I'm your startup mentor bot. I'm here to help you navigate your entrepreneurial journey. What phase are you working on?"

// MentorReplies is the canned response table the mentor bot picks from.
var MentorReplies = []string{
	"That's a great question! For the validation phase, I recommend starting with customer interviews.",
	"Building an MVP is exciting! Focus on core features that solve your main problem.",
	"Launching can be nerve-wracking, but remember - done is better than perfect!",
	"For monetization, consider multiple revenue streams but start with the simplest one.",
	"Feedback is gold! Use it to iterate and improve your product continuously.",
	"Scaling requires systems. Document your processes as you grow!",
	"Remember, every successful entrepreneur started exactly where you are now. Keep going!",
}
