package social

import (
	"context"
	"fmt"

	"backend-socialnet/internal/db"
	"backend-socialnet/internal/model"
	"backend-socialnet/internal/stream"

	"github.com/jackc/pgx/v5"
)

const followerColumns = `id, user_from_id, user_to_id`

func scanFollower(row pgx.Row, f *model.Follower) error {
	return row.Scan(&f.ID, &f.UserFromID, &f.UserToID)
}

// Follow records that from follows to. Repeated edges and self-follows are
// stored as given; the schema has no constraint against either.
func (s *Service) Follow(ctx context.Context, from, to int64) (model.Follower, error) {
	f := model.Follower{UserFromID: from, UserToID: to}
	row := s.db.QueryRow(ctx, `
		INSERT INTO follower (user_from_id, user_to_id)
		VALUES ($1,$2)
		RETURNING id
	`, nullIfZero(from), nullIfZero(to))
	if err := row.Scan(&f.ID); err != nil {
		return model.Follower{}, fmt.Errorf("follow %d -> %d: %w", from, to, db.Classify(err))
	}
	s.publish(ctx, to, stream.KindFollowerCreated, f.Serialize())
	return f, nil
}

func (s *Service) GetFollower(ctx context.Context, id int64) (model.Follower, error) {
	row := s.db.QueryRow(ctx, `SELECT `+followerColumns+` FROM follower WHERE id=$1`, id)
	var f model.Follower
	if err := scanFollower(row, &f); err != nil {
		return model.Follower{}, fmt.Errorf("get follower %d: %w", id, db.Classify(err))
	}
	return f, nil
}

// Unfollow deletes one edge by id.
func (s *Service) Unfollow(ctx context.Context, id int64) error {
	row := s.db.QueryRow(ctx, `DELETE FROM follower WHERE id=$1 RETURNING `+followerColumns, id)
	var f model.Follower
	if err := scanFollower(row, &f); err != nil {
		return fmt.Errorf("unfollow %d: %w", id, db.Classify(err))
	}
	s.publish(ctx, f.UserToID, stream.KindFollowerDeleted, f.Serialize())
	return nil
}

// Following lists the edges userID starts (user_from_id = userID).
func (s *Service) Following(ctx context.Context, userID int64) ([]model.Follower, error) {
	rows, err := s.db.Query(ctx, `SELECT `+followerColumns+` FROM follower WHERE user_from_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("following of user %d: %w", userID, db.Classify(err))
	}
	edges, err := collect(rows, scanFollower)
	if err != nil {
		return nil, fmt.Errorf("following of user %d: %w", userID, err)
	}
	return edges, nil
}

// Followers lists the edges pointing at userID (user_to_id = userID).
func (s *Service) Followers(ctx context.Context, userID int64) ([]model.Follower, error) {
	rows, err := s.db.Query(ctx, `SELECT `+followerColumns+` FROM follower WHERE user_to_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("followers of user %d: %w", userID, db.Classify(err))
	}
	edges, err := collect(rows, scanFollower)
	if err != nil {
		return nil, fmt.Errorf("followers of user %d: %w", userID, err)
	}
	return edges, nil
}

// FollowerUser resolves the user_from_id side of an edge.
func (s *Service) FollowerUser(ctx context.Context, followerID int64) (model.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT u.id, u.username, u.firstname, u.lastname, u.email
		FROM follower f
		JOIN "user" u ON u.id = f.user_from_id
		WHERE f.id=$1
	`, followerID)
	var u model.User
	if err := scanUser(row, &u); err != nil {
		return model.User{}, fmt.Errorf("follower user of %d: %w", followerID, db.Classify(err))
	}
	return u, nil
}

// FollowedUser resolves the user_to_id side of an edge.
func (s *Service) FollowedUser(ctx context.Context, followerID int64) (model.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT u.id, u.username, u.firstname, u.lastname, u.email
		FROM follower f
		JOIN "user" u ON u.id = f.user_to_id
		WHERE f.id=$1
	`, followerID)
	var u model.User
	if err := scanUser(row, &u); err != nil {
		return model.User{}, fmt.Errorf("followed user of %d: %w", followerID, db.Classify(err))
	}
	return u, nil
}
