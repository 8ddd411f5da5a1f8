package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

func inTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, log *logrus.Logger, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}

	if txErr := fn(tx); txErr != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("error rolling back transaction")
		}
		return txErr
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error commiting transaction: %w", err)
	}

	return nil
}

var readOnly = &sql.TxOptions{ReadOnly: true}

func countRows(ctx context.Context, tx *sql.Tx, query string, args ...any) (int, error) {
	var total int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting rows: %w", err)
	}
	return total, nil
}
