package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
	"github.com/MegaNoam/CitizensCMD/internal/ports/output"
)

var _ output.TablePublisher = (*MessageRepository)(nil)

// MessageRepository mirrors resolved message tables into lang_messages.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// Publish replaces every row of the table's language in one transaction.
func (r *MessageRepository) Publish(ctx context.Context, table *entities.MessageTable) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin publish: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM lang_messages WHERE language = $1`, table.Language()); err != nil {
		return fmt.Errorf("clear %s messages: %w", table.Language(), err)
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"lang_messages"}, messageColumns, pgx.CopyFromRows(tableRows(table)))
	if err != nil {
		return fmt.Errorf("copy %s messages: %w", table.Language(), err)
	}
	if int(n) != table.Len() {
		return fmt.Errorf("copy %s messages: wrote %d of %d rows", table.Language(), n, table.Len())
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit publish: %w", err)
	}
	return nil
}

// Fetch reads back the published table for language.
func (r *MessageRepository) Fetch(ctx context.Context, language string) (*entities.MessageTable, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value FROM lang_messages WHERE language = $1 ORDER BY key`, language)
	if err != nil {
		return nil, fmt.Errorf("fetch %s messages: %w", language, err)
	}
	defer rows.Close()

	var keys, values []string
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan %s message: %w", language, err)
		}
		keys = append(keys, k)
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch %s messages: %w", language, err)
	}
	return rowsToTable(language, keys, values), nil
}
