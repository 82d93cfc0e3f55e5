package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps the GORM handle and provides access to repositories.
// It is explicitly constructed and passed into services; nothing in the
// engine reaches for an ambient database client.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas
// and runs auto-migration for all engine tables.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := db.AutoMigrate(
		&Question{},
		&Course{},
		&Module{},
		&Lesson{},
		&LessonProgress{},
		&Enrollment{},
		&InterviewSession{},
		&InterviewTurn{},
		&LLMRequestLog{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying GORM handle for raw queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Questions returns a QuestionRepo backed by this store.
func (s *Store) Questions() QuestionRepo {
	return &questionRepo{db: s.db}
}

// Courses returns a CourseRepo backed by this store.
func (s *Store) Courses() CourseRepo {
	return &courseRepo{db: s.db}
}

// Enrollments returns an EnrollmentRepo backed by this store.
func (s *Store) Enrollments() EnrollmentRepo {
	return &enrollmentRepo{db: s.db}
}

// LessonProgressRows returns a LessonProgressRepo backed by this store.
func (s *Store) LessonProgressRows() LessonProgressRepo {
	return &lessonProgressRepo{db: s.db}
}

// Interviews returns an InterviewRepo backed by this store.
func (s *Store) Interviews() InterviewRepo {
	return &interviewRepo{db: s.db}
}

// LLMLogs returns a LLMLogRepo backed by this store.
func (s *Store) LLMLogs() LLMLogRepo {
	return &llmLogRepo{db: s.db}
}

// Transact runs fn inside a single database transaction. The CourseStore
// passed to fn is scoped to that transaction; returning an error rolls
// everything back.
func (s *Store) Transact(ctx context.Context, fn func(CourseStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// applyPragmas configures SQLite for single-writer engine workloads.
func applyPragmas(db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. TECHWELL_DB environment variable
// 2. $XDG_DATA_HOME/techwell/techwell.db
// 3. ~/.local/share/techwell/techwell.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TECHWELL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "techwell", "techwell.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
