package repository

import (
	"context"

	"github.com/wohure/seeder/internal/models"
)

const (
	insertListingSQL = `INSERT INTO food_listings (
    donor_id, address_id, title, description,
    category_id, quantity_kg, feeds_people, best_before
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	listingRefsSQL = `SELECT DISTINCT donor_id, address_id, category_id FROM food_listings`

	listingsNotInStatusSQL = `SELECT COUNT(*) FROM food_listings WHERE status <> $1`
)

// ListingRefs — внешние ключи объявления
type ListingRefs struct {
	DonorID    int64
	AddressID  int64
	CategoryID int64
}

// ListingRepository — таблица food_listings
type ListingRepository struct {
	db DBTX
}

// NewListingRepository создает репозиторий
func NewListingRepository(db DBTX) *ListingRepository {
	return &ListingRepository{db: db}
}

// Create вставляет объявление
func (r *ListingRepository) Create(ctx context.Context, l *models.FoodListing) error {
	_, err := r.db.ExecContext(ctx, insertListingSQL,
		l.DonorID, l.AddressID, l.Title, l.Description,
		l.CategoryID, l.QuantityKg, l.FeedsPeople, l.BestBefore,
	)
	return err
}

// CountNotInStatus — объявления со статусом, отличным от status
func (r *ListingRepository) CountNotInStatus(ctx context.Context, status string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, listingsNotInStatusSQL, status).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctRefs возвращает различные комбинации (donor_id, address_id, category_id)
func (r *ListingRepository) DistinctRefs(ctx context.Context) ([]ListingRefs, error) {
	rows, err := r.db.QueryContext(ctx, listingRefsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []ListingRefs
	for rows.Next() {
		var ref ListingRefs
		if err := rows.Scan(&ref.DonorID, &ref.AddressID, &ref.CategoryID); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
