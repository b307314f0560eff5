package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// DuplicatesDetectedEvent announces a completed detection run so the UI
// can refresh its duplicate-review list.
type DuplicatesDetectedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	PairCount int    `json:"pair_count"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyDuplicatesDetected(userID uuid.UUID, pairCount int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := DuplicatesDetectedEvent{
		Type:      "duplicates_detected",
		UserID:    userID.String(),
		PairCount: pairCount,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
