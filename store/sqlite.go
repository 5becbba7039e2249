package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// :memory: databases are per connection.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY NOT NULL CHECK(id <> ''),
		name TEXT NOT NULL CHECK(name <> ''),
		email TEXT NOT NULL UNIQUE CHECK(email <> ''),
		password_hash TEXT NOT NULL CHECK(password_hash <> ''),
		created_at TIMESTAMP NOT NULL
	);`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) AddUser(ctx context.Context, user models.StoredUser) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		// Handle unique constraint violation gracefully
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUserExists
		}
		return err
	}
	return nil
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (models.StoredUser, error) {
	var user models.StoredUser
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = ?`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredUser{}, ErrUserNotFound
		}
		logging.ErrorLog("store.GetUserByEmail error: %v", err)
		return models.StoredUser{}, err
	}
	return user, nil
}

func (s *SQLiteStore) Exists(ctx context.Context, email string) bool {
	_, err := s.GetUserByEmail(ctx, email)
	return err == nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
