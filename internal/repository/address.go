package repository

import (
	"context"
	"database/sql"
	"errors"

	domainerr "github.com/wohure/seeder/internal/errors"
	"github.com/wohure/seeder/internal/models"
)

const (
	insertAddressSQL = `INSERT INTO addresses (
    user_id, street_address, city, state,
    postal_code, country, latitude, longitude, is_default
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	firstAddressIDByUserSQL = `SELECT address_id FROM addresses WHERE user_id = $1 LIMIT 1`

	orphanAddressesSQL = `SELECT COUNT(*) FROM addresses a
LEFT JOIN users u ON u.user_id = a.user_id
WHERE u.user_id IS NULL`
)

// AddressRepository — таблица addresses
type AddressRepository struct {
	db DBTX
}

// NewAddressRepository создает репозиторий
func NewAddressRepository(db DBTX) *AddressRepository {
	return &AddressRepository{db: db}
}

// Create вставляет адрес
func (r *AddressRepository) Create(ctx context.Context, a *models.Address) error {
	_, err := r.db.ExecContext(ctx, insertAddressSQL,
		a.UserID, a.StreetAddress, a.City, a.State,
		a.PostalCode, a.Country, a.Latitude, a.Longitude, a.IsDefault,
	)
	return err
}

// FirstIDForUser возвращает произвольный (LIMIT 1) адрес пользователя
func (r *AddressRepository) FirstIDForUser(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, firstAddressIDByUserSQL, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domainerr.ErrAddressNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CountOrphans — адреса, чей user_id не найден в users
func (r *AddressRepository) CountOrphans(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, orphanAddressesSQL).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
