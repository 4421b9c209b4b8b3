package pg

import (
	"database/sql"
	"fmt"

	"github.com/itchan-dev/minichan/internal/config"
	"github.com/itchan-dev/minichan/internal/logger"
	"github.com/itchan-dev/minichan/migrations"

	"github.com/lib/pq"
	_ "github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

// Storage is the repository over the relational schema. All state the
// handlers mutate goes through it; there is no ambient database handle.
type Storage struct {
	db  *sql.DB
	cfg config.Public
}

func New(connStr string, cfg config.Public) (*Storage, error) {
	logger.Log.Info("connecting to db")
	db, err := Connect(connStr)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	if _, err := db.Exec(migrations.Init); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{db, cfg}, nil
}

func Connect(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolation
}
