package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/GCrispino/workout-api/internal/database/connection"
	appErrors "github.com/GCrispino/workout-api/internal/errors"
	"github.com/GCrispino/workout-api/internal/models"
	"github.com/GCrispino/workout-api/internal/pagination"
)

type Categories struct {
	dbConn *connection.DBConn
	log    *logrus.Logger
}

func NewCategories(conn *connection.DBConn, log *logrus.Logger) *Categories {
	return &Categories{dbConn: conn, log: log}
}

func (c *Categories) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	query := `INSERT INTO categoria (nome) VALUES ($1) RETURNING pk_id`

	category := models.Category{Name: name}
	if err := c.dbConn.Conn.QueryRowContext(ctx, query, name).Scan(&category.Id); err != nil {
		return nil, translateError(fmt.Errorf("error inserting category: %w", err))
	}

	return &category, nil
}

func (c *Categories) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	query := `SELECT pk_id, nome FROM categoria WHERE pk_id = $1`

	var category models.Category
	err := c.dbConn.Conn.QueryRowContext(ctx, query, id).Scan(&category.Id, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error getting category %d: %w", id, err)
	}

	return &category, nil
}

func (c *Categories) ListCategories(ctx context.Context, p pagination.Params) ([]models.Category, int, error) {
	var (
		categories []models.Category
		total      int
	)

	err := inTx(ctx, c.dbConn.Conn, readOnly, c.log, func(tx *sql.Tx) error {
		var err error
		total, err = countRows(ctx, tx, `SELECT COUNT(*) FROM categoria`)
		if err != nil {
			return err
		}

		query := `SELECT pk_id, nome FROM categoria ORDER BY pk_id LIMIT $1 OFFSET $2`
		rows, err := tx.QueryContext(ctx, query, p.Limit(), p.Offset())
		if err != nil {
			return fmt.Errorf("error listing categories: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var category models.Category
			if err := rows.Scan(&category.Id, &category.Name); err != nil {
				return err
			}
			categories = append(categories, category)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}
