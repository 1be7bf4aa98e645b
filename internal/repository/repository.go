// Package repository — SQL-репозитории таблиц wohure. Работают и с *sql.DB, и с *sql.Tx.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// DBTX — общий интерфейс *sql.DB и *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Таблицы, заполняемые сидером
const (
	TableUsers          = "users"
	TableAddresses      = "addresses"
	TableFoodCategories = "food_categories"
	TableFoodListings   = "food_listings"
)

// uniqueViolation — SQLSTATE unique_violation
const uniqueViolation = "23505"

// IsUniqueViolation — ошибка нарушения уникальности (повторный запуск сидера)
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// Count возвращает число строк в таблице
func Count(ctx context.Context, db DBTX, table string) (int, error) {
	switch table {
	case TableUsers, TableAddresses, TableFoodCategories, TableFoodListings:
	default:
		return 0, fmt.Errorf("count: unknown table %q", table)
	}
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
