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

type TrainingCenters struct {
	dbConn *connection.DBConn
	log    *logrus.Logger
}

func NewTrainingCenters(conn *connection.DBConn, log *logrus.Logger) *TrainingCenters {
	return &TrainingCenters{dbConn: conn, log: log}
}

func (t *TrainingCenters) CreateTrainingCenter(ctx context.Context, center models.TrainingCenter) (*models.TrainingCenter, error) {
	query := `
      INSERT INTO centro_treinamento (nome, endereco, proprietario)
      VALUES ($1, $2, $3)
      RETURNING pk_id
    `

	row := t.dbConn.Conn.QueryRowContext(ctx, query, center.Name, center.Address, center.Owner)
	if err := row.Scan(&center.Id); err != nil {
		return nil, translateError(fmt.Errorf("error inserting training center: %w", err))
	}

	return &center, nil
}

func (t *TrainingCenters) GetTrainingCenter(ctx context.Context, id int64) (*models.TrainingCenter, error) {
	query := `SELECT pk_id, nome, endereco, proprietario FROM centro_treinamento WHERE pk_id = $1`

	var center models.TrainingCenter
	err := t.dbConn.Conn.QueryRowContext(ctx, query, id).
		Scan(&center.Id, &center.Name, &center.Address, &center.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrTrainingCenterNotFound
		}
		return nil, fmt.Errorf("error getting training center %d: %w", id, err)
	}

	return &center, nil
}

func (t *TrainingCenters) ListTrainingCenters(ctx context.Context, p pagination.Params) ([]models.TrainingCenter, int, error) {
	var (
		centers []models.TrainingCenter
		total   int
	)

	err := inTx(ctx, t.dbConn.Conn, readOnly, t.log, func(tx *sql.Tx) error {
		var err error
		total, err = countRows(ctx, tx, `SELECT COUNT(*) FROM centro_treinamento`)
		if err != nil {
			return err
		}

		query := `
          SELECT pk_id, nome, endereco, proprietario FROM centro_treinamento
          ORDER BY pk_id LIMIT $1 OFFSET $2
        `
		rows, err := tx.QueryContext(ctx, query, p.Limit(), p.Offset())
		if err != nil {
			return fmt.Errorf("error listing training centers: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var center models.TrainingCenter
			if err := rows.Scan(&center.Id, &center.Name, &center.Address, &center.Owner); err != nil {
				return err
			}
			centers = append(centers, center)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}

	return centers, total, nil
}
