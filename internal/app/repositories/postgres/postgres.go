// Package postgres implements the entity store on PostgreSQL. Ids are UUIDs.
package postgres

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ValidUUID reports whether id parses as a UUID
func ValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// parseUUIDs keeps the well-formed ids only
func parseUUIDs(ids []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if u, err := uuid.Parse(id); err == nil {
			out = append(out, u)
		}
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
