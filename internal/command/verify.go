package command

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	domainerr "github.com/wohure/seeder/internal/errors"
	"github.com/wohure/seeder/internal/password"
	"github.com/wohure/seeder/internal/repository"
	"github.com/wohure/seeder/pkg/constants"
)

// Report — результат проверки засеянной БД
type Report struct {
	Counts          map[string]int
	Credentials     map[string]bool
	OrphanAddresses int
	NotAvailable    int
	ListingRefs     []repository.ListingRefs
	MinCategoryID   int64
	Problems        []string
}

// OK — все проверки прошли
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

func (r *Report) failf(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// ExpectedCounts — сколько строк сидер кладёт в каждую таблицу
func ExpectedCounts() map[string]int {
	users := len(TestUsers())
	return map[string]int{
		repository.TableUsers:          users,
		repository.TableAddresses:      users,
		repository.TableFoodCategories: len(Categories()),
		repository.TableFoodListings:   len(Listings(time.Time{})),
	}
}

// Verify проверяет, что БД засеяна ровно одним прогоном Seed. Ошибки запросов возвращаются как есть,
// несоответствия данных — как ErrVerificationFailed вместе с Report.
func Verify(ctx context.Context, db *sql.DB, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rep := &Report{
		Counts:      make(map[string]int),
		Credentials: make(map[string]bool),
	}

	expected := ExpectedCounts()
	for _, table := range []string{
		repository.TableUsers,
		repository.TableAddresses,
		repository.TableFoodCategories,
		repository.TableFoodListings,
	} {
		n, err := repository.Count(ctx, db, table)
		if err != nil {
			return nil, err
		}
		rep.Counts[table] = n
		if n != expected[table] {
			rep.failf("%s: %d rows, want %d", table, n, expected[table])
		}
	}

	users := repository.NewUserRepository(db)
	for _, u := range TestUsers() {
		hash, err := users.PasswordHashByEmail(ctx, u.Email)
		if errors.Is(err, sql.ErrNoRows) {
			rep.failf("user %s missing", u.Email)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("password hash %s: %w", u.Email, err)
		}
		ok := password.Check(hash, u.Password) && !password.Check(hash, u.Password+"-wrong")
		rep.Credentials[u.Email] = ok
		if !ok {
			rep.failf("user %s: stored hash does not match its password", u.Email)
		}
	}

	orphans, err := repository.NewAddressRepository(db).CountOrphans(ctx)
	if err != nil {
		return nil, fmt.Errorf("orphan addresses: %w", err)
	}
	rep.OrphanAddresses = orphans
	if orphans > 0 {
		rep.failf("%d addresses reference missing users", orphans)
	}

	minID, err := repository.NewCategoryRepository(db).MinID(ctx)
	if err != nil {
		return nil, fmt.Errorf("first category: %w", err)
	}
	rep.MinCategoryID = minID

	listings := repository.NewListingRepository(db)
	refs, err := listings.DistinctRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing refs: %w", err)
	}
	rep.ListingRefs = refs
	switch {
	case len(refs) > 1:
		rep.failf("listings reference %d distinct donor/address/category combinations, want 1", len(refs))
	case len(refs) == 1 && refs[0].CategoryID != minID:
		rep.failf("listings use category %d, first category is %d", refs[0].CategoryID, minID)
	}

	notAvailable, err := listings.CountNotInStatus(ctx, constants.ListingStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("listing status: %w", err)
	}
	rep.NotAvailable = notAvailable
	if notAvailable > 0 {
		rep.failf("%d listings are not %q", notAvailable, constants.ListingStatusAvailable)
	}

	if !rep.OK() {
		logger.Warn("Seed verification failed", zap.Strings("problems", rep.Problems))
		return rep, fmt.Errorf("%w: %s", domainerr.ErrVerificationFailed, strings.Join(rep.Problems, "; "))
	}
	logger.Info("Seed verified", zap.Any("counts", rep.Counts))
	return rep, nil
}
