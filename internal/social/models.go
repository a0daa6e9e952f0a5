package social

import "backend-socialnet/internal/model"

// Request bodies. Missing fields are left to the storage constraints.

type UserInput struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

func (in UserInput) toModel() model.User {
	return model.User{Username: in.Username, Firstname: in.Firstname, Lastname: in.Lastname, Email: in.Email}
}

type PostInput struct {
	UserID int64 `json:"user_id"`
}

type MediaInput struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	PostID int64  `json:"post_id"`
	UserID int64  `json:"user_id"`
}

type CommentInput struct {
	CommentText string `json:"comment_text"`
	AuthorID    int64  `json:"author_id"`
	PostID      int64  `json:"post_id"`
}

type FollowInput struct {
	UserFromID int64 `json:"user_from_id"`
	UserToID   int64 `json:"user_to_id"`
}
