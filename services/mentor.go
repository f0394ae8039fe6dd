package services

import (
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"startup-quest-system/models"
)

// MentorService is the scripted mentor bot. Replies come from a canned
// response table after a short simulated typing delay. The delay runs as a
// one-shot scheduler job owned by the service, so Close guarantees no reply
// fires after teardown.
type MentorService struct {
	sched gocron.Scheduler

	mu      sync.Mutex
	history []models.MentorMessage
}

// ReplyDelay is the base simulated typing latency; up to ReplyJitter is
// added on top.
const (
	ReplyDelay  = 800 * time.Millisecond
	ReplyJitter = 700 * time.Millisecond
)

func NewMentorService() (*MentorService, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	sched.Start()

	s := &MentorService{
		sched: sched,
		history: []models.MentorMessage{
			{
				ID:        uuid.NewString(),
				Text:      models.MentorGreeting,
				IsBot:     true,
				Timestamp: time.Now(),
			},
		},
	}
	return s, nil
}

// Ask appends the user's message and schedules the bot reply. The returned
// message is the user's own entry; the reply lands in History once the
// typing delay elapses.
func (s *MentorService) Ask(text string) (*models.MentorMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	msg := models.MentorMessage{
		ID:        uuid.NewString(),
		Text:      text,
		IsBot:     false,
		Timestamp: time.Now(),
	}
	s.history = append(s.history, msg)
	s.mu.Unlock()

	delay := ReplyDelay + time.Duration(rand.Int63n(int64(ReplyJitter)))
	reply := models.MentorReplies[rand.Intn(len(models.MentorReplies))]

	_, err := s.sched.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(time.Now().Add(delay))),
		gocron.NewTask(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.history = append(s.history, models.MentorMessage{
				ID:        uuid.NewString(),
				Text:      reply,
				IsBot:     true,
				Timestamp: time.Now(),
			})
		}),
	)
	if err != nil {
		log.Printf("⚠️  Failed to schedule mentor reply: %v", err)
	}

	return &msg, nil
}

// History returns a copy of the chat log, oldest first.
func (s *MentorService) History() []models.MentorMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MentorMessage(nil), s.history...)
}

// Close stops the scheduler; pending replies are dropped.
func (s *MentorService) Close() error {
	return s.sched.Shutdown()
}
