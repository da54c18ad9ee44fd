package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/lib/pq"
)

// PostgreSQL error codes we translate.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeInvalidTextRepr     = "22P02"
	codeNumericOutOfRange   = "22003"
)

// Open connects to PostgreSQL through lib/pq and verifies the connection.
func Open(ctx context.Context, url string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Classify converts a driver error into the apperr taxonomy. entity names
// the row being read or written and shows up in the message.
func Classify(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("%s not found", entity)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return apperr.Conflict("%s already exists", entity)
		case codeForeignKeyViolation:
			return apperr.NotFound("%s references a missing record (%s)", entity, pqErr.Constraint)
		case codeInvalidTextRepr:
			return apperr.Validation("invalid value for %s", entity)
		case codeNumericOutOfRange:
			return apperr.Validation("value out of range for %s", entity)
		}
	}
	return apperr.Persistence(err, entity)
}
