package services

import (
	"encoding/json"
	"log"
	"sync"

	"startup-quest-system/models"
	"startup-quest-system/storage"
)

// MaxXPStep is how much the level threshold grows on each level-up.
const MaxXPStep = 200

// ProgressionService owns the phase curriculum, XP/level counters, badges
// and profile stats. All mutations run under the lock and end with a full
// snapshot write to the store.
type ProgressionService struct {
	Store storage.Store

	mu         sync.Mutex
	state      models.ProgressionSnapshot
	saveFailed bool
}

// PhaseCompletion reports what a CompletePhase call changed.
type PhaseCompletion struct {
	Phase            models.Phase   `json:"phase"`
	XPAwarded        int            `json:"xp_awarded"`
	LevelsGained     int            `json:"levels_gained"`
	UnlockedPhaseID  string         `json:"unlocked_phase_id,omitempty"`
	BadgesEarned     []models.Badge `json:"badges_earned"`
	AlreadyCompleted bool           `json:"already_completed"`
}

// UpvoteResult reports the counter and any badge flipped by an upvote.
type UpvoteResult struct {
	UpvotesGiven int            `json:"upvotes_given"`
	BadgesEarned []models.Badge `json:"badges_earned"`
}

// NewProgressionService loads the saved snapshot, falling back to the seed
// dataset when the key is absent or the blob doesn't parse.
func NewProgressionService(store storage.Store) *ProgressionService {
	s := &ProgressionService{Store: store}

	data, err := store.Load(storage.ProgressionKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			log.Printf("⚠️  Failed to load progression snapshot, using defaults: %v", err)
		}
		s.state = models.DefaultProgression()
		return s
	}
	var snap models.ProgressionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil || len(snap.Phases) == 0 {
		log.Printf("⚠️  Malformed progression snapshot, using defaults")
		s.state = models.DefaultProgression()
		return s
	}
	s.state = snap
	return s
}

// CompletePhase marks the phase completed, awards its XP (carrying overflow
// into level-ups until xp < maxXP again), records the title in the profile,
// unlocks the next phase and evaluates badge triggers. Calling it again on a
// completed phase is a no-op — XP is never awarded twice.
func (s *ProgressionService) CompletePhase(phaseID string) (*PhaseCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.state.Phases {
		if s.state.Phases[i].ID == phaseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	phase := &s.state.Phases[idx]
	switch phase.Status {
	case models.PhaseCompleted:
		return &PhaseCompletion{Phase: *phase, AlreadyCompleted: true, BadgesEarned: []models.Badge{}}, nil
	case models.PhaseLocked:
		return nil, ErrPhaseLocked
	}

	firstEver := len(s.state.UserStats.CompletedPhases) == 0

	phase.Status = models.PhaseCompleted
	phase.Progress = 100

	result := &PhaseCompletion{
		XPAwarded:    phase.XPReward,
		BadgesEarned: []models.Badge{},
	}

	// Carry XP overflow into level-ups until the invariant 0 <= xp < maxXP
	// holds again. A single reward can cross several thresholds.
	s.state.UserXP += phase.XPReward
	for s.state.UserXP >= s.state.MaxXP {
		s.state.UserXP -= s.state.MaxXP
		s.state.UserLevel++
		s.state.MaxXP += MaxXPStep
		result.LevelsGained++
	}

	// Set semantics: replace any earlier entry for this phase.
	kept := s.state.UserStats.CompletedPhases[:0]
	for _, title := range s.state.UserStats.CompletedPhases {
		if title != phase.Title {
			kept = append(kept, title)
		}
	}
	s.state.UserStats.CompletedPhases = append(kept, phase.Title)

	if next := idx + 1; next < len(s.state.Phases) && s.state.Phases[next].Status == models.PhaseLocked {
		s.state.Phases[next].Status = models.PhaseUnlocked
		result.UnlockedPhaseID = s.state.Phases[next].ID
	}

	if firstEver {
		s.earnBadge("first-steps", &result.BadgesEarned)
	}
	if phaseID == "validation" {
		s.earnBadge("validator", &result.BadgesEarned)
	}
	if phaseID == "mvp" {
		s.earnBadge("builder", &result.BadgesEarned)
	}
	// entrepreneur and community-member are defined in the badge list but
	// have no trigger wired here.

	result.Phase = *phase
	if result.LevelsGained > 0 {
		log.Printf("🎮 Phase %s completed: +%d XP, level %d (xp %d/%d)",
			phaseID, result.XPAwarded, s.state.UserLevel, s.state.UserXP, s.state.MaxXP)
	}

	s.save()
	return result, nil
}

// RegisterUpvote increments the profile's upvote counter; the supporter
// badge flips once the counter reaches 10.
func (s *ProgressionService) RegisterUpvote() *UpvoteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.UserStats.UpvotesGiven++
	result := &UpvoteResult{
		UpvotesGiven: s.state.UserStats.UpvotesGiven,
		BadgesEarned: []models.Badge{},
	}
	if s.state.UserStats.UpvotesGiven >= 10 {
		s.earnBadge("supporter", &result.BadgesEarned)
	}

	s.save()
	return result
}

// RecordIdeaShared bumps the ideas-shared counter. The community-member
// badge exists for this track but its trigger is not wired.
func (s *ProgressionService) RecordIdeaShared() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.UserStats.IdeasShared++
	s.save()
	return s.state.UserStats.IdeasShared
}

// earnBadge flips the badge to earned if it wasn't already and appends it to
// out. Badges only ever move false → true.
func (s *ProgressionService) earnBadge(badgeID string, out *[]models.Badge) {
	for i := range s.state.Badges {
		if s.state.Badges[i].ID == badgeID {
			if !s.state.Badges[i].Earned {
				s.state.Badges[i].Earned = true
				*out = append(*out, s.state.Badges[i])
				log.Printf("🎖️ Badge earned: %s", s.state.Badges[i].Name)
			}
			return
		}
	}
}

// State returns a deep copy of the full progression snapshot.
func (s *ProgressionService) State() models.ProgressionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneLocked()
}

func (s *ProgressionService) Phases() []models.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Phase(nil), s.state.Phases...)
}

func (s *ProgressionService) Badges() []models.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Badge(nil), s.state.Badges...)
}

func (s *ProgressionService) Stats() models.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := s.state.UserStats
	stats.CompletedPhases = append([]string(nil), stats.CompletedPhases...)
	return stats
}

// Flush re-writes the snapshot if the last save failed. In-memory state
// stays authoritative over the store between successful writes.
func (s *ProgressionService) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saveFailed {
		return nil
	}
	return s.save()
}

func (s *ProgressionService) cloneLocked() models.ProgressionSnapshot {
	snap := s.state
	snap.Phases = append([]models.Phase(nil), s.state.Phases...)
	snap.Badges = append([]models.Badge(nil), s.state.Badges...)
	snap.UserStats.CompletedPhases = append([]string(nil), s.state.UserStats.CompletedPhases...)
	return snap
}

// save writes the full snapshot. Callers must hold the lock. A failed write
// is logged, never surfaced — the next mutation or Flush retries.
func (s *ProgressionService) save() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("⚠️  Failed to encode progression snapshot: %v", err)
		s.saveFailed = true
		return err
	}
	if err := s.Store.Save(storage.ProgressionKey, data); err != nil {
		log.Printf("⚠️  Failed to save progression snapshot: %v", err)
		s.saveFailed = true
		return err
	}
	s.saveFailed = false
	return nil
}
