package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-quest-system/models"
)

func TestMentor_StartsWithGreeting(t *testing.T) {
	svc, err := NewMentorService()
	require.NoError(t, err)
	defer svc.Close()

	history := svc.History()
	require.Len(t, history, 1)
	assert.True(t, history[0].IsBot)
	assert.Equal(t, models.MentorGreeting, history[0].Text)
}

func TestMentor_AskRejectsEmptyText(t *testing.T) {
	svc, err := NewMentorService()
	require.NoError(t, err)
	defer svc.Close()

	_, err = svc.Ask("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, svc.History(), 1)
}

func TestMentor_ReplyArrivesAfterDelay(t *testing.T) {
	svc, err := NewMentorService()
	require.NoError(t, err)
	defer svc.Close()

	msg, err := svc.Ask("How do I validate my idea?")
	require.NoError(t, err)
	assert.False(t, msg.IsBot)

	// User message is visible immediately, the reply only after the
	// simulated typing delay.
	require.Len(t, svc.History(), 2)

	assert.Eventually(t, func() bool {
		return len(svc.History()) == 3
	}, 3*time.Second, 50*time.Millisecond)

	history := svc.History()
	reply := history[2]
	assert.True(t, reply.IsBot)
	assert.Contains(t, models.MentorReplies, reply.Text)
}

func TestMentor_CloseDropsPendingReply(t *testing.T) {
	svc, err := NewMentorService()
	require.NoError(t, err)

	_, err = svc.Ask("Anyone there?")
	require.NoError(t, err)
	require.NoError(t, svc.Close())

	time.Sleep(ReplyDelay + ReplyJitter + 200*time.Millisecond)
	assert.Len(t, svc.History(), 2)
}
