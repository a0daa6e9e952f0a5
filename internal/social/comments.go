package social

import (
	"context"
	"fmt"

	"backend-socialnet/internal/db"
	"backend-socialnet/internal/model"
	"backend-socialnet/internal/stream"

	"github.com/jackc/pgx/v5"
)

const commentColumns = `id, comment_text, author_id, post_id`

func scanComment(row pgx.Row, c *model.Comment) error {
	return row.Scan(&c.ID, &c.CommentText, &c.AuthorID, &c.PostID)
}

func (s *Service) CreateComment(ctx context.Context, input model.Comment) (model.Comment, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO comment (comment_text, author_id, post_id)
		VALUES ($1,$2,$3)
		RETURNING id
	`, nullIfEmpty(input.CommentText), nullIfZero(input.AuthorID), nullIfZero(input.PostID))
	if err := row.Scan(&input.ID); err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", db.Classify(err))
	}
	s.publish(ctx, input.AuthorID, stream.KindCommentCreated, input.Serialize())
	return input, nil
}

func (s *Service) GetComment(ctx context.Context, id int64) (model.Comment, error) {
	row := s.db.QueryRow(ctx, `SELECT `+commentColumns+` FROM comment WHERE id=$1`, id)
	var c model.Comment
	if err := scanComment(row, &c); err != nil {
		return model.Comment{}, fmt.Errorf("get comment %d: %w", id, db.Classify(err))
	}
	return c, nil
}

func (s *Service) UpdateComment(ctx context.Context, id int64, text string) (model.Comment, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE comment
		SET comment_text = COALESCE($2, comment_text)
		WHERE id=$1
		RETURNING `+commentColumns,
		id, nullIfEmpty(text))
	var c model.Comment
	if err := scanComment(row, &c); err != nil {
		return model.Comment{}, fmt.Errorf("update comment %d: %w", id, db.Classify(err))
	}
	return c, nil
}

func (s *Service) DeleteComment(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM comment WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, db.Classify(err))
	}
	if err := deleted(tag); err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	return nil
}

func (s *Service) CommentAuthor(ctx context.Context, commentID int64) (model.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT u.id, u.username, u.firstname, u.lastname, u.email
		FROM comment c
		JOIN "user" u ON u.id = c.author_id
		WHERE c.id=$1
	`, commentID)
	var u model.User
	if err := scanUser(row, &u); err != nil {
		return model.User{}, fmt.Errorf("author of comment %d: %w", commentID, db.Classify(err))
	}
	return u, nil
}

func (s *Service) CommentPost(ctx context.Context, commentID int64) (model.Post, error) {
	row := s.db.QueryRow(ctx, `
		SELECT p.id, p.user_id
		FROM comment c
		JOIN post p ON p.id = c.post_id
		WHERE c.id=$1
	`, commentID)
	var p model.Post
	if err := scanPost(row, &p); err != nil {
		return model.Post{}, fmt.Errorf("post of comment %d: %w", commentID, db.Classify(err))
	}
	return p, nil
}
