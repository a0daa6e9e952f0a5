package stream

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	KindUserCreated     = "user.created"
	KindPostCreated     = "post.created"
	KindMediaCreated    = "media.created"
	KindCommentCreated  = "comment.created"
	KindFollowerCreated = "follower.created"
	KindFollowerDeleted = "follower.deleted"
)

// Event is the JSON document pushed to subscribers of a user's channel.
type Event struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	UserID     int64          `json:"user_id"`
	Data       map[string]any `json:"data"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Publish wraps data in an Event addressed to userID and broadcasts it.
func (h *Hub) Publish(_ context.Context, userID int64, kind string, data map[string]any) error {
	payload, err := json.Marshal(Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		UserID:     userID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	h.Broadcast(strconv.FormatInt(userID, 10), payload)
	return nil
}
