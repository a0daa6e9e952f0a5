package model

type Post struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

func (p Post) Serialize() map[string]any {
	return map[string]any{
		"id":      p.ID,
		"user_id": p.UserID,
	}
}
