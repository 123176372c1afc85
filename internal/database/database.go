package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/pathakanu/myAssistant/internal/model"
	"github.com/pathakanu/myAssistant/internal/reminder"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open creates a GORM database connection and migrates the reminder table.
// When databaseURL is provided PostgreSQL is used, otherwise SQLite at sqlitePath.
func Open(databaseURL, sqlitePath string, logger *log.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	if databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), gormConfig)
	} else {
		db, err = gorm.Open(sqlite.Open(sqlitePath), gormConfig)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Reminder{}); err != nil {
		return nil, err
	}

	logBackend(db, sqlitePath, logger)
	return db, nil
}

func logBackend(db *gorm.DB, sqlitePath string, logger *log.Logger) {
	dialector := db.Dialector.Name()
	switch strings.ToLower(dialector) {
	case "postgres":
		logger.Printf("database: connected to PostgreSQL")
	case "sqlite":
		logger.Printf("database: using SQLite %s", sqlitePath)
	default:
		logger.Printf("database: connected via %s", dialector)
	}
}

// Store is a reminder.Store backed by a SQL table. Insertion order is the
// primary key order.
type Store struct {
	db *gorm.DB
}

var _ reminder.Store = (*Store)(nil)

// NewStore wraps an opened and migrated database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Append inserts r and fills in its ID.
func (s *Store) Append(ctx context.Context, r *model.Reminder) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("append reminder: %w", err)
	}
	return nil
}

// List returns every reminder in insertion order.
func (s *Store) List(ctx context.Context) ([]model.Reminder, error) {
	reminders := []model.Reminder{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

// RemoveAt deletes the reminder at the 1-based list position inside a
// transaction so the lookup and delete see the same list.
func (s *Store) RemoveAt(ctx context.Context, position int) (model.Reminder, error) {
	if position < 1 {
		return model.Reminder{}, reminder.ErrNotFound
	}

	var removed model.Reminder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Order("id ASC").Offset(position - 1).Limit(1).Find(&removed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return reminder.ErrNotFound
		}
		return tx.Delete(&model.Reminder{}, removed.ID).Error
	})
	if err != nil {
		if errors.Is(err, reminder.ErrNotFound) {
			return model.Reminder{}, err
		}
		return model.Reminder{}, fmt.Errorf("remove reminder at %d: %w", position, err)
	}
	return removed, nil
}
