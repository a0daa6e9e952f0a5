package social

import (
	"context"
	"log"

	"backend-socialnet/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Publisher receives change notifications after successful writes.
type Publisher interface {
	Publish(ctx context.Context, userID int64, kind string, data map[string]any) error
}

// Service persists the social schema. It holds no state besides the storage
// handle passed in by the caller.
type Service struct {
	db  db.Querier
	pub Publisher
}

// NewService wires a storage handle and an optional publisher (nil disables
// change events).
func NewService(q db.Querier, pub Publisher) *Service {
	return &Service{db: q, pub: pub}
}

func (s *Service) publish(ctx context.Context, userID int64, kind string, data map[string]any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, userID, kind, data); err != nil {
		log.Printf("publish %s for user %d: %v", kind, userID, err)
	}
}

// collect drains rows with scan. It returns an empty slice for no rows.
func collect[T any](rows pgx.Rows, scan func(pgx.Row, *T) error) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, db.Classify(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Classify(err)
	}
	return out, nil
}

// Empty strings and zero ids are sent as NULL so the NOT NULL constraints
// report missing fields.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func deleted(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
