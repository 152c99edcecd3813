package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Query describes a filtered, ordered and optionally bounded read.
// A zero Limit means no limit.
type Query struct {
	Where   map[string]any
	OrderBy []string
	Limit   int
	Offset  int
}

type GormDB struct {
	DB *gorm.DB
}

// NewGormDB opens a postgres connection for the given dsn.
func NewGormDB(dsn string, logs *zap.SugaredLogger) (*GormDB, error) {
	return NewGormDBWithDialector(postgres.Open(dsn), logs)
}

// NewGormDBWithDialector opens gorm over an arbitrary dialector.
func NewGormDBWithDialector(dialector gorm.Dialector, logs *zap.SugaredLogger) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(zapWriter{logs: logs}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Create inserts a single record. Unique constraint violations are reported as ErrDuplicate.
func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// FindAll loads every record matching q into entities, which must be a pointer to a slice.
func (f *GormDB) FindAll(ctx context.Context, q Query, entities any) error {
	tx := f.DB.WithContext(ctx).Where(q.Where)
	for _, order := range q.OrderBy {
		tx = tx.Order(order)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

func (f *GormDB) Count(ctx context.Context, model any, where map[string]any) (int64, error) {
	var count int64
	err := f.DB.WithContext(ctx).Model(model).Where(where).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// DeleteWhere removes the records of model matching every condition in where
// and returns the number of deleted rows.
func (f *GormDB) DeleteWhere(ctx context.Context, model any, where map[string]any) (int64, error) {
	if len(where) == 0 {
		return 0, errors.New("delete without conditions is not allowed")
	}

	tx := f.DB.WithContext(ctx).Where(where).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

// zapWriter routes gorm's logger output to zap.
type zapWriter struct {
	logs *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...any) {
	w.logs.Infof(format, args...)
}
