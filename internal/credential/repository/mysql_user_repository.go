// Package repository provides data persistence implementations for credential records.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/credentials/internal/credential/domain"
	"github.com/allisson/credentials/internal/database"

	apperrors "github.com/allisson/credentials/internal/errors"
)

// MySQLUserRepository handles credential record persistence for MySQL
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new credential record
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO app_users (username, password_hash, algorithm, roles, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, user.Username, user.PasswordHash, user.Algorithm, user.Roles)
	if err != nil {
		// Check for unique constraint violation (duplicate username)
		if isMySQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByUsername retrieves a credential record by username
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT username, password_hash, algorithm, roles, created_at, updated_at
			  FROM app_users WHERE username = ?`

	err := querier.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.PasswordHash, &user.Algorithm, &user.Roles, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}

	return &user, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
