package models

// User is a founder profile. Exactly one user is the session's current
// user; everyone else is a read-only peer from the seed dataset.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	Avatar   string `json:"avatar"`
	IsOnline bool   `json:"isOnline"`
}

// UserStats holds the profile counters shown alongside progression.
// CompletedPhases keeps phase titles with set semantics: re-completing a
// phase replaces its entry instead of appending a duplicate.
type UserStats struct {
	Username        string   `json:"username"`
	IdeasShared     int      `json:"ideasShared"`
	UpvotesGiven    int      `json:"upvotesGiven"`
	CompletedPhases []string `json:"completedPhases"`
}
