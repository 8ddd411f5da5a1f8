package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/GCrispino/workout-api/internal/database/connection"
	appErrors "github.com/GCrispino/workout-api/internal/errors"
	"github.com/GCrispino/workout-api/internal/models"
	"github.com/GCrispino/workout-api/internal/pagination"
)

type Athletes struct {
	dbConn *connection.DBConn
	log    *logrus.Logger
}

func NewAthletes(conn *connection.DBConn, log *logrus.Logger) *Athletes {
	return &Athletes{dbConn: conn, log: log}
}

const athleteRowColumns = `
    a.pk_id, a.nome, a.cpf, a.idade, a.peso, a.altura, a.sexo,
    a.centro_treinamento_id, a.categoria_id,
    c.pk_id, c.nome,
    ct.pk_id, ct.nome, ct.endereco, ct.proprietario
`

const athleteRowJoins = `
    FROM atleta a
    JOIN categoria c ON c.pk_id = a.categoria_id
    JOIN centro_treinamento ct ON ct.pk_id = a.centro_treinamento_id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanAthleteRow(s scanner) (models.AthleteRow, error) {
	var row models.AthleteRow
	err := s.Scan(
		&row.Id,
		&row.Name,
		&row.CPF,
		&row.Age,
		&row.Weight,
		&row.Height,
		&row.Sex,
		&row.TrainingCenterId,
		&row.CategoryId,
		&row.Category.Id,
		&row.Category.Name,
		&row.TrainingCenter.Id,
		&row.TrainingCenter.Name,
		&row.TrainingCenter.Address,
		&row.TrainingCenter.Owner,
	)
	return row, err
}

// CreateAthlete inserts the athlete and reads it back joined with its
// category and training center inside the same transaction.
func (a *Athletes) CreateAthlete(ctx context.Context, athlete models.Athlete) (*models.AthleteRow, error) {
	insertQuery := `
      INSERT INTO atleta (nome, cpf, idade, peso, altura, sexo, centro_treinamento_id, categoria_id)
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
      RETURNING pk_id
    `
	selectQuery := `SELECT ` + athleteRowColumns + athleteRowJoins + `WHERE a.pk_id = $1`

	var created models.AthleteRow
	err := inTx(ctx, a.dbConn.Conn, nil, a.log, func(tx *sql.Tx) error {
		var id int64
		row := tx.QueryRowContext(ctx, insertQuery,
			athlete.Name, athlete.CPF,
			athlete.Age, athlete.Weight, athlete.Height, athlete.Sex,
			athlete.TrainingCenterId, athlete.CategoryId,
		)
		if err := row.Scan(&id); err != nil {
			return translateError(fmt.Errorf("error inserting athlete: %w", err))
		}

		var err error
		created, err = scanAthleteRow(tx.QueryRowContext(ctx, selectQuery, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.ErrIntegrity
			}
			return fmt.Errorf("error reading created athlete: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func athleteFilterClause(filter models.AthleteFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.Name != "" {
		args = append(args, "%"+escapeLike(filter.Name)+"%")
		conds = append(conds, fmt.Sprintf("a.nome ILIKE $%d", len(args)))
	}
	if filter.CPF != "" {
		args = append(args, filter.CPF)
		conds = append(conds, fmt.Sprintf("a.cpf = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (a *Athletes) ListAthletes(ctx context.Context, filter models.AthleteFilter, p pagination.Params) ([]models.AthleteRow, int, error) {
	where, args := athleteFilterClause(filter)

	var (
		athletes []models.AthleteRow
		total    int
	)

	err := inTx(ctx, a.dbConn.Conn, readOnly, a.log, func(tx *sql.Tx) error {
		var err error
		total, err = countRows(ctx, tx, `SELECT COUNT(*) FROM atleta a`+where, args...)
		if err != nil {
			return err
		}

		query := `SELECT ` + athleteRowColumns + athleteRowJoins + where +
			fmt.Sprintf(" ORDER BY a.pk_id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		rows, err := tx.QueryContext(ctx, query, append(args, p.Limit(), p.Offset())...)
		if err != nil {
			return fmt.Errorf("error listing athletes: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			athlete, err := scanAthleteRow(rows)
			if err != nil {
				return err
			}
			athletes = append(athletes, athlete)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}

	return athletes, total, nil
}
