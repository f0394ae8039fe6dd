package models

// Phase statuses — a phase only ever moves locked → unlocked → completed.
const (
	PhaseLocked    = "locked"
	PhaseUnlocked  = "unlocked"
	PhaseCompleted = "completed"
)

// Phase is one milestone of the startup curriculum. Phases are ordered;
// the next phase unlocks only after the current one is completed.
type Phase struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"` // 0–100
	XPReward    int    `json:"xpReward"`
}

// Badge is a one-way achievement flag. Earned never reverts to false.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}
