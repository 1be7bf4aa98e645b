package repository

import (
	"context"
	"database/sql"
	"errors"

	domainerr "github.com/wohure/seeder/internal/errors"
	"github.com/wohure/seeder/internal/models"
)

const (
	insertUserSQL = `INSERT INTO users (email, password_hash, user_type, name, organization_type)
VALUES ($1, $2, $3, $4, $5)
RETURNING user_id`

	firstUserIDByTypeSQL = `SELECT user_id FROM users WHERE user_type = $1 LIMIT 1`

	passwordHashByEmailSQL = `SELECT password_hash FROM users WHERE email = $1`
)

// UserRepository — таблица users
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает репозиторий
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create вставляет пользователя и возвращает сгенерированный user_id. u.PasswordHash должен быть заполнен.
func (r *UserRepository) Create(ctx context.Context, u *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, insertUserSQL,
		u.Email, u.PasswordHash, u.UserType, u.Name, u.OrganizationType,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	u.ID = id
	return id, nil
}

// FirstIDByType возвращает произвольного (LIMIT 1) пользователя данного типа
func (r *UserRepository) FirstIDByType(ctx context.Context, userType string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, firstUserIDByTypeSQL, userType).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domainerr.ErrDonorNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// PasswordHashByEmail возвращает хеш пароля пользователя
func (r *UserRepository) PasswordHashByEmail(ctx context.Context, email string) (string, error) {
	var hash string
	if err := r.db.QueryRowContext(ctx, passwordHashByEmailSQL, email).Scan(&hash); err != nil {
		return "", err
	}
	return hash, nil
}
