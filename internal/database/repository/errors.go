package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	appErrors "github.com/GCrispino/workout-api/internal/errors"
)

const (
	codeUniqueViolation = "23505"
	integrityClass      = "23"
)

// translateError maps driver integrity errors into application errors. Both
// lib/pq and pgx errors are understood so either driver can back the store.
func translateError(err error) error {
	code, constraint, ok := pgErrorDetails(err)
	if !ok || !strings.HasPrefix(code, integrityClass) {
		return err
	}

	if code == codeUniqueViolation {
		c := strings.ToLower(constraint)
		switch {
		case strings.Contains(c, "cpf"):
			return appErrors.ErrDuplicateCPF
		case strings.Contains(c, "categoria"):
			return appErrors.ErrDuplicateCategory
		case strings.Contains(c, "centro_treinamento"):
			return appErrors.ErrDuplicateTrainingCenter
		}
	}

	return fmt.Errorf("%w (%s)", appErrors.ErrIntegrity, constraint)
}

func pgErrorDetails(err error) (code, constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}

	return "", "", false
}
