package social

import (
	"context"
	"fmt"

	"backend-socialnet/internal/db"
	"backend-socialnet/internal/model"
	"backend-socialnet/internal/stream"

	"github.com/jackc/pgx/v5"
)

const mediaColumns = `id, type::text, url, post_id, user_id`

func scanMedia(row pgx.Row, m *model.Media) error {
	var typ string
	if err := row.Scan(&m.ID, &typ, &m.URL, &m.PostID, &m.UserID); err != nil {
		return err
	}
	m.Type = model.MediaType(typ)
	return nil
}

func mediaTypeArg(t model.MediaType) any {
	if t == "" {
		return nil
	}
	return string(t)
}

// CreateMedia stores the row; an unset type takes the column default.
func (s *Service) CreateMedia(ctx context.Context, input model.Media) (model.Media, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO media (type, url, post_id, user_id)
		VALUES (COALESCE($1::type_enum, 'image'), $2, $3, $4)
		RETURNING id, type::text
	`, mediaTypeArg(input.Type), nullIfEmpty(input.URL), nullIfZero(input.PostID), nullIfZero(input.UserID))
	var typ string
	if err := row.Scan(&input.ID, &typ); err != nil {
		return model.Media{}, fmt.Errorf("create media: %w", db.Classify(err))
	}
	input.Type = model.MediaType(typ)
	s.publish(ctx, input.UserID, stream.KindMediaCreated, input.Serialize())
	return input, nil
}

func (s *Service) GetMedia(ctx context.Context, id int64) (model.Media, error) {
	row := s.db.QueryRow(ctx, `SELECT `+mediaColumns+` FROM media WHERE id=$1`, id)
	var m model.Media
	if err := scanMedia(row, &m); err != nil {
		return model.Media{}, fmt.Errorf("get media %d: %w", id, db.Classify(err))
	}
	return m, nil
}

// UpdateMedia overwrites type and url when they are set in patch.
func (s *Service) UpdateMedia(ctx context.Context, id int64, patch model.Media) (model.Media, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE media
		SET type = COALESCE($2::type_enum, type),
		    url  = COALESCE($3, url)
		WHERE id=$1
		RETURNING `+mediaColumns,
		id, mediaTypeArg(patch.Type), nullIfEmpty(patch.URL))
	var m model.Media
	if err := scanMedia(row, &m); err != nil {
		return model.Media{}, fmt.Errorf("update media %d: %w", id, db.Classify(err))
	}
	return m, nil
}

func (s *Service) DeleteMedia(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM media WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete media %d: %w", id, db.Classify(err))
	}
	if err := deleted(tag); err != nil {
		return fmt.Errorf("delete media %d: %w", id, err)
	}
	return nil
}

func (s *Service) MediaPost(ctx context.Context, mediaID int64) (model.Post, error) {
	row := s.db.QueryRow(ctx, `
		SELECT p.id, p.user_id
		FROM media m
		JOIN post p ON p.id = m.post_id
		WHERE m.id=$1
	`, mediaID)
	var p model.Post
	if err := scanPost(row, &p); err != nil {
		return model.Post{}, fmt.Errorf("post of media %d: %w", mediaID, db.Classify(err))
	}
	return p, nil
}

func (s *Service) MediaUser(ctx context.Context, mediaID int64) (model.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT u.id, u.username, u.firstname, u.lastname, u.email
		FROM media m
		JOIN "user" u ON u.id = m.user_id
		WHERE m.id=$1
	`, mediaID)
	var u model.User
	if err := scanUser(row, &u); err != nil {
		return model.User{}, fmt.Errorf("user of media %d: %w", mediaID, db.Classify(err))
	}
	return u, nil
}
