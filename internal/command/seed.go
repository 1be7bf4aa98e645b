package command

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wohure/seeder/internal/database"
	"github.com/wohure/seeder/internal/password"
	"github.com/wohure/seeder/internal/repository"
	"github.com/wohure/seeder/pkg/constants"
)

// Options — параметры запуска сидера
type Options struct {
	BcryptCost int
	Now        func() time.Time
	Logger     *zap.Logger
}

// Result — итог сидирования
type Result struct {
	Users      int
	Addresses  int
	Categories int
	Listings   int
	DonorID    int64
	AddressID  int64
}

// Seed заполняет БД тестовыми данными в одной транзакции:
// users → addresses → food_categories → food_listings. Не идемпотентен: повторный запуск
// падает на уникальности users.email, транзакция откатывается.
func Seed(ctx context.Context, db *sql.DB, opts Options) (*Result, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = password.DefaultCost
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	res := &Result{}
	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := seedUsers(ctx, tx, opts, res); err != nil {
			return fmt.Errorf("users: %w", err)
		}
		if err := seedCategories(ctx, tx, opts, res); err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		if err := seedListings(ctx, tx, opts, res); err != nil {
			return fmt.Errorf("listings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("Seed committed",
		zap.Int("users", res.Users),
		zap.Int("addresses", res.Addresses),
		zap.Int("categories", res.Categories),
		zap.Int("listings", res.Listings))
	return res, nil
}

func seedUsers(ctx context.Context, tx *sql.Tx, opts Options, res *Result) error {
	users := repository.NewUserRepository(tx)
	addresses := repository.NewAddressRepository(tx)

	for _, u := range TestUsers() {
		hash, err := password.Hash(u.Password, opts.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash %s: %w", u.Email, err)
		}
		u.PasswordHash = hash

		userID, err := users.Create(ctx, &u)
		if err != nil {
			return fmt.Errorf("insert %s: %w", u.Email, err)
		}
		res.Users++

		addr := DefaultAddress(userID)
		if err := addresses.Create(ctx, &addr); err != nil {
			return fmt.Errorf("address for %s: %w", u.Email, err)
		}
		res.Addresses++

		opts.Logger.Debug("User seeded",
			zap.String("email", u.Email),
			zap.String("user_type", u.UserType),
			zap.Int64("user_id", userID))
	}
	return nil
}

func seedCategories(ctx context.Context, tx *sql.Tx, opts Options, res *Result) error {
	categories := repository.NewCategoryRepository(tx)
	for _, c := range Categories() {
		if err := categories.Create(ctx, &c); err != nil {
			return fmt.Errorf("insert %s: %w", c.Name, err)
		}
		res.Categories++
	}
	opts.Logger.Debug("Categories seeded", zap.Int("count", res.Categories))
	return nil
}

func seedListings(ctx context.Context, tx *sql.Tx, opts Options, res *Result) error {
	// TODO: передавать donor/address id из seedUsers, когда в наборе станет больше одного донора.
	donorID, err := repository.NewUserRepository(tx).FirstIDByType(ctx, constants.UserTypeDonor)
	if err != nil {
		return fmt.Errorf("donor lookup: %w", err)
	}
	addressID, err := repository.NewAddressRepository(tx).FirstIDForUser(ctx, donorID)
	if err != nil {
		return fmt.Errorf("address lookup: %w", err)
	}
	res.DonorID, res.AddressID = donorID, addressID

	listings := repository.NewListingRepository(tx)
	for _, l := range Listings(opts.Now()) {
		l.DonorID = donorID
		l.AddressID = addressID
		l.CategoryID = DefaultCategoryID
		if err := listings.Create(ctx, &l); err != nil {
			return fmt.Errorf("insert %q: %w", l.Title, err)
		}
		res.Listings++
	}
	opts.Logger.Debug("Listings seeded",
		zap.Int64("donor_id", donorID),
		zap.Int64("address_id", addressID),
		zap.Int("count", res.Listings))
	return nil
}
