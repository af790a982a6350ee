package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
)

// Storages aggregates every repository the service layer depends on,
// all sharing one connection pool.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.Driver, applies
// the schema migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already connected and
// migrated DB.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		CourseRepository: NewCourseRepository(db, log),
		db:               db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
