package social

import (
	"context"
	"fmt"

	"backend-socialnet/internal/db"
	"backend-socialnet/internal/model"
	"backend-socialnet/internal/stream"

	"github.com/jackc/pgx/v5"
)

const postColumns = `id, user_id`

func scanPost(row pgx.Row, p *model.Post) error {
	return row.Scan(&p.ID, &p.UserID)
}

func (s *Service) CreatePost(ctx context.Context, input model.Post) (model.Post, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO post (user_id)
		VALUES ($1)
		RETURNING id
	`, nullIfZero(input.UserID))
	if err := row.Scan(&input.ID); err != nil {
		return model.Post{}, fmt.Errorf("create post: %w", db.Classify(err))
	}
	s.publish(ctx, input.UserID, stream.KindPostCreated, input.Serialize())
	return input, nil
}

func (s *Service) GetPost(ctx context.Context, id int64) (model.Post, error) {
	row := s.db.QueryRow(ctx, `SELECT `+postColumns+` FROM post WHERE id=$1`, id)
	var p model.Post
	if err := scanPost(row, &p); err != nil {
		return model.Post{}, fmt.Errorf("get post %d: %w", id, db.Classify(err))
	}
	return p, nil
}

func (s *Service) ListPosts(ctx context.Context) ([]model.Post, error) {
	rows, err := s.db.Query(ctx, `SELECT `+postColumns+` FROM post ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", db.Classify(err))
	}
	posts, err := collect(rows, scanPost)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// DeletePost fails with db.ErrForeignKeyViolation while comments or media
// still reference the post.
func (s *Service) DeletePost(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM post WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, db.Classify(err))
	}
	if err := deleted(tag); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}

func (s *Service) PostUser(ctx context.Context, postID int64) (model.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT u.id, u.username, u.firstname, u.lastname, u.email
		FROM post p
		JOIN "user" u ON u.id = p.user_id
		WHERE p.id=$1
	`, postID)
	var u model.User
	if err := scanUser(row, &u); err != nil {
		return model.User{}, fmt.Errorf("user of post %d: %w", postID, db.Classify(err))
	}
	return u, nil
}

func (s *Service) PostComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	rows, err := s.db.Query(ctx, `SELECT `+commentColumns+` FROM comment WHERE post_id=$1 ORDER BY id`, postID)
	if err != nil {
		return nil, fmt.Errorf("comments of post %d: %w", postID, db.Classify(err))
	}
	comments, err := collect(rows, scanComment)
	if err != nil {
		return nil, fmt.Errorf("comments of post %d: %w", postID, err)
	}
	return comments, nil
}

func (s *Service) PostMedia(ctx context.Context, postID int64) ([]model.Media, error) {
	rows, err := s.db.Query(ctx, `SELECT `+mediaColumns+` FROM media WHERE post_id=$1 ORDER BY id`, postID)
	if err != nil {
		return nil, fmt.Errorf("media of post %d: %w", postID, db.Classify(err))
	}
	media, err := collect(rows, scanMedia)
	if err != nil {
		return nil, fmt.Errorf("media of post %d: %w", postID, err)
	}
	return media, nil
}
