package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// nextSequenceNumber allocates the next number in a "PREFIX-NNNNNN" series
// by locking the current maximum row inside the caller's transaction. The
// zero-padded format keeps lexicographic and numeric order aligned, so
// ORDER BY number is enough to find the latest. A UNIQUE constraint on the
// number column backstops concurrent inserts that race past the lock on an
// empty table.
func nextSequenceNumber(ctx context.Context, tx pgx.Tx, table, prefix string) (string, error) {
	query := fmt.Sprintf(`SELECT number FROM %s ORDER BY number DESC LIMIT 1 FOR UPDATE;`, table)

	var last string
	err := tx.QueryRow(ctx, query).Scan(&last)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to read last %s number: %w", table, err)
	}

	next := 1
	if last != "" {
		n, convErr := strconv.Atoi(strings.TrimPrefix(last, prefix+"-"))
		if convErr != nil {
			return "", fmt.Errorf("malformed %s number %q: %w", table, last, convErr)
		}
		next = n + 1
	}

	return fmt.Sprintf("%s-%06d", prefix, next), nil
}
