package models

// ProgressionSnapshot is the persisted form of the progression engine's
// full state. Field names match the stored JSON blob.
type ProgressionSnapshot struct {
	UserLevel int       `json:"userLevel"`
	UserXP    int       `json:"userXP"`
	MaxXP     int       `json:"maxXP"`
	Phases    []Phase   `json:"phases"`
	Badges    []Badge   `json:"badges"`
	UserStats UserStats `json:"userStats"`
}

// SocialSnapshot is the persisted form of the social directory's state.
type SocialSnapshot struct {
	Guilds         []Guild         `json:"guilds"`
	GuildRequests  []GuildRequest  `json:"guildRequests"`
	DirectMessages []DirectMessage `json:"directMessages"`
	GuildMessages  []GuildMessage  `json:"guildMessages"`
}
