package repository

import (
	"context"
	"database/sql"

	"github.com/wohure/seeder/internal/models"
)

const (
	insertCategorySQL = `INSERT INTO food_categories (name, description, storage_requirements)
VALUES ($1, $2, $3)`

	minCategoryIDSQL = `SELECT MIN(category_id) FROM food_categories`
)

// CategoryRepository — таблица food_categories
type CategoryRepository struct {
	db DBTX
}

// NewCategoryRepository создает репозиторий
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create вставляет категорию
func (r *CategoryRepository) Create(ctx context.Context, c *models.FoodCategory) error {
	_, err := r.db.ExecContext(ctx, insertCategorySQL, c.Name, c.Description, c.StorageRequirements)
	return err
}

// MinID — идентификатор первой вставленной категории; 0 если таблица пуста
func (r *CategoryRepository) MinID(ctx context.Context) (int64, error) {
	var id sql.NullInt64
	if err := r.db.QueryRowContext(ctx, minCategoryIDSQL).Scan(&id); err != nil {
		return 0, err
	}
	return id.Int64, nil
}
