package model

type Comment struct {
	ID          int64  `json:"id"`
	CommentText string `json:"comment_text"`
	AuthorID    int64  `json:"author_id"`
	PostID      int64  `json:"post_id"`
}

func (c Comment) Serialize() map[string]any {
	return map[string]any{
		"id":           c.ID,
		"comment_text": c.CommentText,
		"author_id":    c.AuthorID,
		"post_id":      c.PostID,
	}
}
