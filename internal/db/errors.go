package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrUniqueViolation     = errors.New("unique violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotNullViolation    = errors.New("not null violation")
	ErrValueTooLong        = errors.New("value too long")
	ErrInvalidValue        = errors.New("invalid value")
)

// ConstraintError carries the constraint the storage engine rejected. It
// matches its Kind with errors.Is and the driver error with errors.As.
type ConstraintError struct {
	Kind       error
	Table      string
	Constraint string
	Column     string
	Err        error
}

func (e *ConstraintError) Error() string {
	switch {
	case e.Constraint != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Constraint)
	case e.Column != "":
		return fmt.Sprintf("%s: %s.%s", e.Kind, e.Table, e.Column)
	default:
		return e.Kind.Error()
	}
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Classify maps driver errors onto the package error kinds. Errors it does not
// recognise are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var kind error
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		kind = ErrUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		kind = ErrForeignKeyViolation
	case pgerrcode.NotNullViolation:
		kind = ErrNotNullViolation
	case pgerrcode.StringDataRightTruncationDataException:
		kind = ErrValueTooLong
	case pgerrcode.InvalidTextRepresentation:
		kind = ErrInvalidValue
	default:
		return err
	}

	return &ConstraintError{
		Kind:       kind,
		Table:      pgErr.TableName,
		Constraint: pgErr.ConstraintName,
		Column:     pgErr.ColumnName,
		Err:        pgErr,
	}
}
