package storage

import "errors"

// Snapshot keys. The two subsystems persist independent blobs.
const (
	ProgressionKey = "startupQuestData"
	SocialKey      = "userData"
)

// ErrKeyNotFound is returned by Load when no snapshot exists for a key.
var ErrKeyNotFound = errors.New("snapshot key not found")

// Store is the key-value collaborator the engines persist to. Each key maps
// to one full-state JSON blob, overwritten on every save.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}
