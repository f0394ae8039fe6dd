package models

import "time"

// DirectMessage is one entry of the append-only user-to-user log.
type DirectMessage struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// GuildMessage is one entry of a guild's append-only chat log.
type GuildMessage struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guildId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// MentorMessage is one entry of the mentor chat history. The history is
// session-local and never persisted.
type MentorMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
}
