package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-quest-system/models"
	"startup-quest-system/storage"
)

func newSocialFixture(t *testing.T, currentUserID string, mutate func(*models.SocialSnapshot)) (*SocialService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	if mutate != nil {
		snap := models.DefaultSocial()
		mutate(&snap)
		data, err := json.Marshal(snap)
		require.NoError(t, err)
		require.NoError(t, store.Save(storage.SocialKey, data))
	}
	return NewSocialService(store, currentUserID), store
}

func memberCount(g models.Guild, userID string) int {
	n := 0
	for _, m := range g.Members {
		if m.ID == userID {
			n++
		}
	}
	return n
}

func findGuild(t *testing.T, svc *SocialService, id string) models.Guild {
	t.Helper()
	for _, g := range svc.Guilds() {
		if g.ID == id {
			return g
		}
	}
	t.Fatalf("guild %s not found", id)
	return models.Guild{}
}

func TestJoinPublicGuild_AddsSingleMember(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)

	result, err := svc.RequestOrJoinGuild("guild-2", "")
	require.NoError(t, err)
	assert.True(t, result.Joined)
	assert.False(t, result.AlreadyMember)
	require.NotNil(t, result.Member)
	assert.Equal(t, "user-1", result.Member.ID)
	assert.Equal(t, models.RoleMember, result.Member.Role)

	guild := findGuild(t, svc, "guild-2")
	assert.Equal(t, 1, memberCount(guild, "user-1"))

	// Joining again must not create a duplicate.
	result, err = svc.RequestOrJoinGuild("guild-2", "")
	require.NoError(t, err)
	assert.True(t, result.AlreadyMember)
	guild = findGuild(t, svc, "guild-2")
	assert.Equal(t, 1, memberCount(guild, "user-1"))
}

func TestJoinPrivateGuild_CreatesPendingRequest(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)

	result, err := svc.RequestOrJoinGuild("guild-3", "Let me in please")
	require.NoError(t, err)
	assert.False(t, result.Joined)
	require.NotNil(t, result.Request)
	assert.Equal(t, models.RequestPending, result.Request.Status)
	assert.Equal(t, "guild-3", result.Request.GuildID)
	assert.Equal(t, "user-1", result.Request.UserID)

	// Membership untouched until the owner accepts.
	guild := findGuild(t, svc, "guild-3")
	assert.Equal(t, 0, memberCount(guild, "user-1"))
}

func TestJoinPrivateGuild_BlankMessageGetsDefault(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)

	result, err := svc.RequestOrJoinGuild("guild-3", "   ")
	require.NoError(t, err)
	assert.Equal(t, defaultJoinMessage, result.Request.Message)
}

func TestJoinGuild_Unknown(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)
	_, err := svc.RequestOrJoinGuild("guild-99", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveGuildRequest_AcceptIsTerminal(t *testing.T) {
	// Seed request req-1 targets guild-2, owned by user-3.
	svc, _ := newSocialFixture(t, "user-3", nil)

	req, err := svc.ResolveGuildRequest("req-1", "accept")
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, req.Status)

	guild := findGuild(t, svc, "guild-2")
	assert.Equal(t, 1, memberCount(guild, "user-1"))

	// Terminal: neither accept nor reject may run again.
	_, err = svc.ResolveGuildRequest("req-1", "accept")
	assert.ErrorIs(t, err, ErrRequestResolved)
	_, err = svc.ResolveGuildRequest("req-1", "reject")
	assert.ErrorIs(t, err, ErrRequestResolved)

	// And the accepted member was not duplicated.
	guild = findGuild(t, svc, "guild-2")
	assert.Equal(t, 1, memberCount(guild, "user-1"))
}

func TestResolveGuildRequest_Reject(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-3", nil)

	req, err := svc.ResolveGuildRequest("req-1", "reject")
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, req.Status)

	guild := findGuild(t, svc, "guild-2")
	assert.Equal(t, 0, memberCount(guild, "user-1"))
}

func TestResolveGuildRequest_Unknown(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-3", nil)
	_, err := svc.ResolveGuildRequest("req-99", "accept")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateGuild_OwnerIsSeededAsMember(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)

	guild, err := svc.CreateGuild("Solar Punk Collective", "Sun-powered startups", "environment", true)
	require.NoError(t, err)
	assert.Equal(t, "solar-punk-collective", guild.ID)
	assert.Equal(t, "user-1", guild.OwnerID)
	assert.True(t, guild.IsPrivate)
	require.Len(t, guild.Members, 1)
	assert.Equal(t, models.RoleOwner, guild.Members[0].Role)
	assert.Equal(t, "user-1", guild.Members[0].ID)

	assert.True(t, svc.IsMember(guild.ID))
}

func TestCreateGuild_EmptyName(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)
	_, err := svc.CreateGuild("   ", "", "", false)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSendDirectMessage_Validation(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)

	_, err := svc.SendDirectMessage("user-2", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.SendDirectMessage("user-99", "hello")
	assert.ErrorIs(t, err, ErrNotFound)

	msg, err := svc.SendDirectMessage("user-2", "  hello there  ")
	require.NoError(t, err)
	assert.Equal(t, "hello there", msg.Message)
	assert.Equal(t, "user-1", msg.FromUserID)
	assert.False(t, msg.Read)
}

func TestSendGuildMessage_Validation(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)

	_, err := svc.SendGuildMessage("guild-1", "")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.SendGuildMessage("guild-99", "hi all")
	assert.ErrorIs(t, err, ErrNotFound)

	msg, err := svc.SendGuildMessage("guild-1", "hi all")
	require.NoError(t, err)
	assert.Equal(t, "StartupFounder", msg.Username)
	assert.Equal(t, "guild-1", msg.GuildID)
}

func TestConversation_SortsByTimestamp(t *testing.T) {
	base := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newSocialFixture(t, "user-1", func(snap *models.SocialSnapshot) {
		// Deliberately appended out of order.
		snap.DirectMessages = []models.DirectMessage{
			{ID: "dm-b", FromUserID: "user-1", ToUserID: "user-2", Message: "second", Timestamp: base.Add(time.Minute)},
			{ID: "dm-x", FromUserID: "user-3", ToUserID: "user-1", Message: "other thread", Timestamp: base},
			{ID: "dm-a", FromUserID: "user-2", ToUserID: "user-1", Message: "first", Timestamp: base},
			{ID: "dm-c", FromUserID: "user-1", ToUserID: "user-2", Message: "third", Timestamp: base.Add(2 * time.Minute)},
		}
	})

	conv := svc.Conversation("user-2")
	require.Len(t, conv, 3)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{conv[0].Message, conv[1].Message, conv[2].Message})
}

func TestGuildMessages_SortedAndScoped(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)

	msgs := svc.GuildMessages("guild-1")
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].Timestamp.Before(msgs[1].Timestamp))

	assert.Empty(t, svc.GuildMessages("guild-2"))
}

func TestMembershipQueries(t *testing.T) {
	svc, _ := newSocialFixture(t, "user-1", nil)

	assert.True(t, svc.IsMember("guild-1"))
	assert.False(t, svc.IsMember("guild-2"))
	assert.False(t, svc.IsMember("guild-99"))

	mine := svc.GuildsForUser()
	require.Len(t, mine, 1)
	assert.Equal(t, "guild-1", mine[0].ID)
}

func TestPendingRequestsForOwnedGuilds(t *testing.T) {
	owner, _ := newSocialFixture(t, "user-3", nil)
	pending := owner.PendingRequestsForOwnedGuilds()
	require.Len(t, pending, 1)
	assert.Equal(t, "req-1", pending[0].ID)

	// user-1 owns nothing in the seed data.
	outsider, _ := newSocialFixture(t, "user-1", nil)
	assert.Empty(t, outsider.PendingRequestsForOwnedGuilds())
}

func TestSocial_SnapshotRoundTrip(t *testing.T) {
	svc, store := newSocialFixture(t, "user-1", nil)

	_, err := svc.RequestOrJoinGuild("guild-2", "")
	require.NoError(t, err)
	_, err = svc.SendDirectMessage("user-2", "ping")
	require.NoError(t, err)

	reloaded := NewSocialService(store, "user-1")

	want, err := json.Marshal(svc.State())
	require.NoError(t, err)
	got, err := json.Marshal(reloaded.State())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestSocial_MalformedSnapshotFallsBack(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(storage.SocialKey, []byte("💥")))

	svc := NewSocialService(store, "user-1")
	assert.Len(t, svc.Guilds(), 3)
}
