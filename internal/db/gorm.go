package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const uniqueViolation = "23505"

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// ConstraintError reports the unique constraint an insert or update collided with.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: constraint %q: %v", ErrDuplicateKey, e.Constraint, e.Err)
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrDuplicateKey
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// newGormLogger reports slow queries and failures. A missing record is a normal lookup outcome and stays silent.
func newGormLogger(out io.Writer) logger.Interface {
	return logger.New(log.New(out, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type GormDB struct {
	db *gorm.DB
}

func NewGormDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(os.Stdout),
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

// NewGormDBWithConn wraps an already opened gorm connection.
func NewGormDBWithConn(conn *gorm.DB) *GormDB {
	return &GormDB{
		db: conn,
	}
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).Create(record).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", translateError(err))
	}
	return nil
}

func (f *GormDB) GetOneWhere(ctx context.Context, conditions map[string]any, entity any) error {
	err := f.db.WithContext(ctx).Where(conditions).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %v: %w", conditions, err)
	}
	return nil
}

// UpdateWhere applies updates to every row of model's table matching conditions and returns the number of rows changed.
func (f *GormDB) UpdateWhere(ctx context.Context, model any, conditions map[string]any, updates map[string]any) (int64, error) {
	tx := f.db.WithContext(ctx).Model(model).Where(conditions).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records by %v: %w", conditions, translateError(tx.Error))
	}
	return tx.RowsAffected, nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &ConstraintError{
			Constraint: pgErr.ConstraintName,
			Err:        err,
		}
	}
	return err
}
