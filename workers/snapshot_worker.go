package workers

import (
	"context"
	"log"
	"time"
)

// Flusher is anything that can retry its last snapshot write.
type Flusher interface {
	Flush() error
}

// PollSnapshots periodically asks each service to retry a failed snapshot
// write. Saves happen synchronously after every mutation; this loop only
// closes the gap where a transient store error would otherwise leave the
// persisted copy stale until the next user action.
func PollSnapshots(ctx context.Context, interval time.Duration, flushers ...Flusher) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Snapshot flusher stopped")
			return
		case <-ticker.C:
			for _, f := range flushers {
				if err := f.Flush(); err != nil {
					log.Printf("⚠️  Snapshot flush retry failed: %v", err)
				}
			}
		}
	}
}
