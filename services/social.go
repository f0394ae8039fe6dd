package services

import (
	"encoding/json"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"startup-quest-system/models"
	"startup-quest-system/storage"
)

const defaultJoinMessage = "I would like to join this guild."

// SocialService owns the guild directory, join requests and both message
// logs. Users themselves are static seed data; only the current user ever
// acts. Every mutation ends with a full snapshot write.
type SocialService struct {
	Store         storage.Store
	CurrentUserID string

	mu         sync.Mutex
	users      []models.User
	state      models.SocialSnapshot
	saveFailed bool
}

// JoinResult reports what RequestOrJoinGuild did: a direct join carries the
// new (or existing) membership, a private guild carries the created request.
type JoinResult struct {
	Joined        bool                 `json:"joined"`
	AlreadyMember bool                 `json:"already_member"`
	Member        *models.GuildMember  `json:"member,omitempty"`
	Request       *models.GuildRequest `json:"request,omitempty"`
}

func NewSocialService(store storage.Store, currentUserID string) *SocialService {
	s := &SocialService{
		Store:         store,
		CurrentUserID: currentUserID,
		users:         models.DefaultUsers(),
	}

	data, err := store.Load(storage.SocialKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			log.Printf("⚠️  Failed to load social snapshot, using defaults: %v", err)
		}
		s.state = models.DefaultSocial()
		return s
	}
	var snap models.SocialSnapshot
	if err := json.Unmarshal(data, &snap); err != nil || len(snap.Guilds) == 0 {
		log.Printf("⚠️  Malformed social snapshot, using defaults")
		s.state = models.DefaultSocial()
		return s
	}
	s.state = snap
	return s
}

// RequestOrJoinGuild joins a public guild directly, or files a pending
// request for a private one. Joining a guild the user already belongs to
// changes nothing.
func (s *SocialService) RequestOrJoinGuild(guildID, message string) (*JoinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guild := s.findGuild(guildID)
	if guild == nil {
		return nil, ErrNotFound
	}

	if guild.IsPrivate {
		if guild.HasMember(s.CurrentUserID) {
			return &JoinResult{Joined: true, AlreadyMember: true}, nil
		}
		if strings.TrimSpace(message) == "" {
			message = defaultJoinMessage
		}
		req := models.GuildRequest{
			ID:        "req-" + uuid.NewString(),
			GuildID:   guildID,
			UserID:    s.CurrentUserID,
			Username:  s.usernameOf(s.CurrentUserID),
			Message:   message,
			Status:    models.RequestPending,
			CreatedAt: time.Now(),
		}
		s.state.GuildRequests = append(s.state.GuildRequests, req)
		s.save()
		return &JoinResult{Request: &req}, nil
	}

	member, added := s.addMember(guild, s.CurrentUserID)
	if added {
		s.save()
	}
	return &JoinResult{Joined: true, AlreadyMember: !added, Member: member}, nil
}

// ResolveGuildRequest accepts or rejects a pending request. Both outcomes
// are terminal; resolving an already-resolved request is an error.
func (s *SocialService) ResolveGuildRequest(requestID, action string) (*models.GuildRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req *models.GuildRequest
	for i := range s.state.GuildRequests {
		if s.state.GuildRequests[i].ID == requestID {
			req = &s.state.GuildRequests[i]
			break
		}
	}
	if req == nil {
		return nil, ErrNotFound
	}
	if req.Status != models.RequestPending {
		return nil, ErrRequestResolved
	}

	switch action {
	case "accept":
		req.Status = models.RequestAccepted
		if guild := s.findGuild(req.GuildID); guild != nil {
			s.addMember(guild, req.UserID)
		}
	case "reject":
		req.Status = models.RequestRejected
	default:
		return nil, ErrNotFound
	}

	log.Printf("🏛️ Guild request %s → %s", requestID, req.Status)
	s.save()
	out := *req
	return &out, nil
}

// CreateGuild opens a new guild owned by the current user. The id comes
// from the slugified name, with a uuid suffix if the slug is taken.
func (s *SocialService) CreateGuild(name, description, category string, isPrivate bool) (*models.Guild, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := slug.Make(name)
	if id == "" {
		id = "guild-" + uuid.NewString()[:8]
	} else if s.findGuild(id) != nil {
		id = id + "-" + uuid.NewString()[:8]
	}

	owner := s.findUser(s.CurrentUserID)
	if owner == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	guild := models.Guild{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: description,
		Category:    category,
		OwnerID:     s.CurrentUserID,
		IsPrivate:   isPrivate,
		CreatedAt:   now,
		Members: []models.GuildMember{
			{User: *owner, Role: models.RoleOwner, JoinedAt: now},
		},
	}
	s.state.Guilds = append(s.state.Guilds, guild)

	log.Printf("🏛️ Guild created: %s (%s)", guild.Name, guild.ID)
	s.save()
	return &guild, nil
}

// SendDirectMessage appends to the DM log. Text must be non-empty after
// trimming; the recipient must exist.
func (s *SocialService) SendDirectMessage(toUserID, text string) (*models.DirectMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUser(toUserID) == nil {
		return nil, ErrNotFound
	}

	msg := models.DirectMessage{
		ID:         "dm-" + uuid.NewString(),
		FromUserID: s.CurrentUserID,
		ToUserID:   toUserID,
		Message:    text,
		Timestamp:  time.Now(),
		Read:       false,
	}
	s.state.DirectMessages = append(s.state.DirectMessages, msg)
	s.save()
	return &msg, nil
}

// SendGuildMessage appends to a guild's chat log.
func (s *SocialService) SendGuildMessage(guildID, text string) (*models.GuildMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findGuild(guildID) == nil {
		return nil, ErrNotFound
	}

	msg := models.GuildMessage{
		ID:        "gm-" + uuid.NewString(),
		GuildID:   guildID,
		UserID:    s.CurrentUserID,
		Username:  s.usernameOf(s.CurrentUserID),
		Message:   text,
		Timestamp: time.Now(),
	}
	s.state.GuildMessages = append(s.state.GuildMessages, msg)
	s.save()
	return &msg, nil
}

// IsMember reports whether the current user belongs to the guild.
func (s *SocialService) IsMember(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	guild := s.findGuild(guildID)
	return guild != nil && guild.HasMember(s.CurrentUserID)
}

// GuildsForUser returns every guild the current user is a member of.
func (s *SocialService) GuildsForUser() []models.Guild {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Guild
	for i := range s.state.Guilds {
		if s.state.Guilds[i].HasMember(s.CurrentUserID) {
			out = append(out, cloneGuild(&s.state.Guilds[i]))
		}
	}
	return out
}

// PendingRequestsForOwnedGuilds returns pending requests whose target guild
// the current user owns.
func (s *SocialService) PendingRequestsForOwnedGuilds() []models.GuildRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.GuildRequest
	for _, req := range s.state.GuildRequests {
		if req.Status != models.RequestPending {
			continue
		}
		if guild := s.findGuild(req.GuildID); guild != nil && guild.OwnerID == s.CurrentUserID {
			out = append(out, req)
		}
	}
	return out
}

// Conversation returns both directions of the DM log between the current
// user and withUserID, oldest first.
func (s *SocialService) Conversation(withUserID string) []models.DirectMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.DirectMessage
	for _, m := range s.state.DirectMessages {
		if (m.FromUserID == s.CurrentUserID && m.ToUserID == withUserID) ||
			(m.FromUserID == withUserID && m.ToUserID == s.CurrentUserID) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// GuildMessages returns one guild's chat log, oldest first.
func (s *SocialService) GuildMessages(guildID string) []models.GuildMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.GuildMessage
	for _, m := range s.state.GuildMessages {
		if m.GuildID == guildID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func (s *SocialService) Guilds() []models.Guild {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Guild, 0, len(s.state.Guilds))
	for i := range s.state.Guilds {
		out = append(out, cloneGuild(&s.state.Guilds[i]))
	}
	return out
}

func (s *SocialService) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

// State returns a deep copy of the persisted social snapshot.
func (s *SocialService) State() models.SocialSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.Guilds = make([]models.Guild, 0, len(s.state.Guilds))
	for i := range s.state.Guilds {
		snap.Guilds = append(snap.Guilds, cloneGuild(&s.state.Guilds[i]))
	}
	snap.GuildRequests = append([]models.GuildRequest(nil), s.state.GuildRequests...)
	snap.DirectMessages = append([]models.DirectMessage(nil), s.state.DirectMessages...)
	snap.GuildMessages = append([]models.GuildMessage(nil), s.state.GuildMessages...)
	return snap
}

// Flush re-writes the snapshot if the last save failed.
func (s *SocialService) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saveFailed {
		return nil
	}
	return s.save()
}

// addMember appends userID to the guild as a plain member unless already
// present. Reports whether the member set changed.
func (s *SocialService) addMember(guild *models.Guild, userID string) (*models.GuildMember, bool) {
	for i := range guild.Members {
		if guild.Members[i].ID == userID {
			m := guild.Members[i]
			return &m, false
		}
	}
	user := s.findUser(userID)
	if user == nil {
		return nil, false
	}
	member := models.GuildMember{User: *user, Role: models.RoleMember, JoinedAt: time.Now()}
	guild.Members = append(guild.Members, member)
	return &member, true
}

func (s *SocialService) findGuild(guildID string) *models.Guild {
	for i := range s.state.Guilds {
		if s.state.Guilds[i].ID == guildID {
			return &s.state.Guilds[i]
		}
	}
	return nil
}

func (s *SocialService) findUser(userID string) *models.User {
	for i := range s.users {
		if s.users[i].ID == userID {
			return &s.users[i]
		}
	}
	return nil
}

func (s *SocialService) usernameOf(userID string) string {
	if u := s.findUser(userID); u != nil {
		return u.Username
	}
	return "Unknown"
}

func cloneGuild(g *models.Guild) models.Guild {
	out := *g
	out.Members = append([]models.GuildMember(nil), g.Members...)
	return out
}

func (s *SocialService) save() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("⚠️  Failed to encode social snapshot: %v", err)
		s.saveFailed = true
		return err
	}
	if err := s.Store.Save(storage.SocialKey, data); err != nil {
		log.Printf("⚠️  Failed to save social snapshot: %v", err)
		s.saveFailed = true
		return err
	}
	s.saveFailed = false
	return nil
}
