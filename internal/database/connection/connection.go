package connection

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/GCrispino/workout-api/internal/utils"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

type DBConn struct {
	Conn *sql.DB
}

func NewDBConn(ctx context.Context, driverName, connString string, log *logrus.Logger) (*DBConn, error) {
	db, err := sql.Open(driverName, connString)
	if err != nil {
		return nil, fmt.Errorf("Could not connect to db: %w", err)
	}

	ping := func() error {
		return db.PingContext(ctx)
	}
	notify := func(err error, wait time.Duration) {
		log.WithError(err).Warnf("database not ready, retrying in %s", wait)
	}
	if err := utils.Retry(ctx, ping, notify); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging db: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	log.WithField("driver", driverName).Info("database connection established")

	return &DBConn{Conn: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS categoria (
    pk_id SERIAL PRIMARY KEY,
    nome VARCHAR(10) NOT NULL,
    CONSTRAINT categoria_nome_key UNIQUE (nome)
);

CREATE TABLE IF NOT EXISTS centro_treinamento (
    pk_id SERIAL PRIMARY KEY,
    nome VARCHAR(20) NOT NULL,
    endereco VARCHAR(60),
    proprietario VARCHAR(30),
    CONSTRAINT centro_treinamento_nome_key UNIQUE (nome)
);

CREATE TABLE IF NOT EXISTS atleta (
    pk_id SERIAL PRIMARY KEY,
    nome VARCHAR(50) NOT NULL,
    cpf VARCHAR(11) NOT NULL,
    idade INTEGER,
    peso DOUBLE PRECISION,
    altura DOUBLE PRECISION,
    sexo VARCHAR(1),
    centro_treinamento_id INTEGER NOT NULL REFERENCES centro_treinamento (pk_id),
    categoria_id INTEGER NOT NULL REFERENCES categoria (pk_id),
    CONSTRAINT atleta_cpf_key UNIQUE (cpf)
);
`

// EnsureSchema creates the tables when they do not exist yet.
func (c *DBConn) EnsureSchema(ctx context.Context) error {
	if _, err := c.Conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}
	return nil
}

func (c *DBConn) Close() error {
	return c.Conn.Close()
}
