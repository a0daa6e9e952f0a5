package model

// Follower is a directed edge: UserFromID follows UserToID. Both columns
// reference "user"; duplicates and self-edges are not rejected.
type Follower struct {
	ID         int64 `json:"id"`
	UserFromID int64 `json:"user_from_id"`
	UserToID   int64 `json:"user_to_id"`
}

func (f Follower) Serialize() map[string]any {
	return map[string]any{
		"id":           f.ID,
		"user_from_id": f.UserFromID,
		"user_to_id":   f.UserToID,
	}
}
