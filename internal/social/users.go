package social

import (
	"context"
	"fmt"

	"backend-socialnet/internal/db"
	"backend-socialnet/internal/model"
	"backend-socialnet/internal/stream"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, firstname, lastname, email`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.Username, &u.Firstname, &u.Lastname, &u.Email)
}

func (s *Service) CreateUser(ctx context.Context, input model.User) (model.User, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO "user" (username, firstname, lastname, email)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, nullIfEmpty(input.Username), nullIfEmpty(input.Firstname), nullIfEmpty(input.Lastname), nullIfEmpty(input.Email))
	if err := row.Scan(&input.ID); err != nil {
		return model.User{}, fmt.Errorf("create user: %w", db.Classify(err))
	}
	s.publish(ctx, input.ID, stream.KindUserCreated, input.Serialize())
	return input, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id=$1`, id)
	var u model.User
	if err := scanUser(row, &u); err != nil {
		return model.User{}, fmt.Errorf("get user %d: %w", id, db.Classify(err))
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.Query(ctx, `SELECT `+userColumns+` FROM "user" ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", db.Classify(err))
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser overwrites the scalar fields that are non-empty in patch.
func (s *Service) UpdateUser(ctx context.Context, id int64, patch model.User) (model.User, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE "user"
		SET username  = COALESCE($2, username),
		    firstname = COALESCE($3, firstname),
		    lastname  = COALESCE($4, lastname),
		    email     = COALESCE($5, email)
		WHERE id=$1
		RETURNING `+userColumns,
		id, nullIfEmpty(patch.Username), nullIfEmpty(patch.Firstname), nullIfEmpty(patch.Lastname), nullIfEmpty(patch.Email))
	var u model.User
	if err := scanUser(row, &u); err != nil {
		return model.User{}, fmt.Errorf("update user %d: %w", id, db.Classify(err))
	}
	return u, nil
}

// DeleteUser fails with db.ErrForeignKeyViolation while posts, comments,
// media or follower edges still reference the user.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM "user" WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, db.Classify(err))
	}
	if err := deleted(tag); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (s *Service) UserPosts(ctx context.Context, userID int64) ([]model.Post, error) {
	rows, err := s.db.Query(ctx, `SELECT `+postColumns+` FROM post WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("posts of user %d: %w", userID, db.Classify(err))
	}
	posts, err := collect(rows, scanPost)
	if err != nil {
		return nil, fmt.Errorf("posts of user %d: %w", userID, err)
	}
	return posts, nil
}

func (s *Service) UserComments(ctx context.Context, userID int64) ([]model.Comment, error) {
	rows, err := s.db.Query(ctx, `SELECT `+commentColumns+` FROM comment WHERE author_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("comments of user %d: %w", userID, db.Classify(err))
	}
	comments, err := collect(rows, scanComment)
	if err != nil {
		return nil, fmt.Errorf("comments of user %d: %w", userID, err)
	}
	return comments, nil
}

func (s *Service) UserMedia(ctx context.Context, userID int64) ([]model.Media, error) {
	rows, err := s.db.Query(ctx, `SELECT `+mediaColumns+` FROM media WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("media of user %d: %w", userID, db.Classify(err))
	}
	media, err := collect(rows, scanMedia)
	if err != nil {
		return nil, fmt.Errorf("media of user %d: %w", userID, err)
	}
	return media, nil
}
