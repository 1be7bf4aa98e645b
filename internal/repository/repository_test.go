package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/wohure/seeder/internal/errors"
	"github.com/wohure/seeder/internal/models"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	u := &models.User{
		Email:            "donor@test.com",
		PasswordHash:     "$2a$04$hash",
		UserType:         "donor",
		Name:             "Test Donor",
		OrganizationType: "restaurant",
	}
	mock.ExpectQuery(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("donor@test.com", "$2a$04$hash", "donor", "Test Donor", "restaurant").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))

	id, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(7), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(insertUserSQL)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.Create(context.Background(), &models.User{Email: "donor@test.com"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FirstIDByType(t *testing.T) {
	tests := []struct {
		name         string
		mockBehavior func(mock sqlmock.Sqlmock)
		wantID       int64
		wantErr      error
	}{
		{
			name: "Found",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(firstUserIDByTypeSQL)).
					WithArgs("donor").
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))
			},
			wantID: 1,
		},
		{
			name: "No donor",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(firstUserIDByTypeSQL)).
					WithArgs("donor").
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
			},
			wantErr: domainerr.ErrDonorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			tt.mockBehavior(mock)

			id, err := NewUserRepository(db).FirstIDByType(context.Background(), "donor")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAddressRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(insertAddressSQL)).
		WithArgs(int64(3), "123 Test St", "Test City", "Test State", "12345", "Test Country", 40.7128, -74.0060, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewAddressRepository(db).Create(context.Background(), &models.Address{
		UserID:        3,
		StreetAddress: "123 Test St",
		City:          "Test City",
		State:         "Test State",
		PostalCode:    "12345",
		Country:       "Test Country",
		Latitude:      40.7128,
		Longitude:     -74.0060,
		IsDefault:     true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepository_FirstIDForUser_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(firstAddressIDByUserSQL)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"address_id"}))

	_, err := NewAddressRepository(db).FirstIDForUser(context.Background(), 1)
	assert.ErrorIs(t, err, domainerr.ErrAddressNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepository_FirstIDForUser_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(firstAddressIDByUserSQL)).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection timeout"))

	_, err := NewAddressRepository(db).FirstIDForUser(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerr.ErrAddressNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_MinID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(minCategoryIDSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(minCategoryIDSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(nil))

	id, err := repo.MinID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id, err = repo.MinID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_CreateAndRefs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewListingRepository(db)
	best := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(insertListingSQL)).
		WithArgs(int64(1), int64(2), "Fresh Vegetables", "Mixed vegetables from our restaurant", int64(1), 10.5, 25, best).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(listingRefsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"donor_id", "address_id", "category_id"}).AddRow(1, 2, 1))

	err := repo.Create(context.Background(), &models.FoodListing{
		DonorID:     1,
		AddressID:   2,
		Title:       "Fresh Vegetables",
		Description: "Mixed vegetables from our restaurant",
		CategoryID:  1,
		QuantityKg:  10.5,
		FeedsPeople: 25,
		BestBefore:  best,
	})
	require.NoError(t, err)

	refs, err := repo.DistinctRefs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ListingRefs{{DonorID: 1, AddressID: 2, CategoryID: 1}}, refs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_CountNotInStatus(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(listingsNotInStatusSQL)).
		WithArgs("available").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	n, err := NewListingRepository(db).CountNotInStatus(context.Background(), "available")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := Count(context.Background(), db, TableUsers)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = Count(context.Background(), db, "users; DROP TABLE users")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsUniqueViolation(nil))
}
