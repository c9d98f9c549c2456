package repository

import (
	"context"

	"ratehub/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StoreFilter holds the independent substring filters for store listings.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
}

// StoreWithUserRating is the listing row for ordinary users: the aggregate
// over all ratings plus the caller's own rating, pulled in the same grouped
// query so the aggregate is never stale relative to the sort.
type StoreWithUserRating struct {
	ID                  int64           `gorm:"column:id"`
	Name                string          `gorm:"column:name"`
	Address             string          `gorm:"column:address"`
	OverallRating       decimal.Decimal `gorm:"column:overall_rating"`
	TotalRatingsCount   int64           `gorm:"column:total_ratings_count"`
	UserSubmittedRating *int            `gorm:"column:user_submitted_rating"`
}

// StoreWithAverage is the admin listing row.
type StoreWithAverage struct {
	ID           int64           `gorm:"column:id"`
	Name         string          `gorm:"column:name"`
	Email        string          `gorm:"column:email"`
	Address      string          `gorm:"column:address"`
	OwnerID      *int64          `gorm:"column:owner_id"`
	AvgRating    decimal.Decimal `gorm:"column:avg_rating"`
	RatingsCount int64           `gorm:"column:ratings_count"`
}

type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	FindByID(ctx context.Context, id int64) (*models.Store, error)
	ListForUser(ctx context.Context, userID int64, filter StoreFilter) ([]StoreWithUserRating, error)
	ListWithAverages(ctx context.Context, filter StoreFilter, sort Sort) ([]StoreWithAverage, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Store, error)
	OwnedBy(ctx context.Context, storeID, ownerID int64) (bool, error)
	DeleteWithRatings(ctx context.Context, storeID int64) error
	DeleteOwnedWithRatings(ctx context.Context, storeID, ownerID int64) error
	Count(ctx context.Context) (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) FindByID(ctx context.Context, id int64) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// ListForUser returns stores matching the filters with overall average, vote
// count and the caller's own rating, all from one grouped query. Stores with
// no ratings come back with a zero average and count, never NULL.
func (r *storeRepository) ListForUser(ctx context.Context, userID int64, filter StoreFilter) ([]StoreWithUserRating, error) {
	var rows []StoreWithUserRating
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id, s.name, s.address,
		       COALESCE(AVG(r.rating), 0) AS overall_rating,
		       COUNT(r.id) AS total_ratings_count,
		       MAX(CASE WHEN r.user_id = ? THEN r.rating END) AS user_submitted_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE s.name ILIKE ? AND s.address ILIKE ?
		GROUP BY s.id, s.name, s.address
		ORDER BY s.name ASC`,
		userID, like(filter.Name), like(filter.Address)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListWithAverages is the admin listing. The average is computed inside the
// same query that filters and sorts, so sorting by avg_rating always reflects
// current rows.
func (r *storeRepository) ListWithAverages(ctx context.Context, filter StoreFilter, sort Sort) ([]StoreWithAverage, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id,
		       COALESCE(AVG(r.rating), 0) AS avg_rating,
		       COUNT(r.id) AS ratings_count
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE s.name ILIKE ? AND s.email ILIKE ? AND s.address ILIKE ?
		GROUP BY s.id, s.name, s.email, s.address, s.owner_id
		ORDER BY ` + StoreOrderClause(sort)

	var rows []StoreWithAverage
	err := r.db.WithContext(ctx).
		Raw(query, like(filter.Name), like(filter.Email), like(filter.Address)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *storeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) OwnedBy(ctx context.Context, storeID, ownerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Store{}).
		Where("id = ? AND owner_id = ?", storeID, ownerID).
		Count(&count).Error
	return count > 0, err
}

// DeleteWithRatings removes a store and its dependent ratings in one
// transaction. There is no DB-level cascade: when the store row turns out not
// to exist, the rating deletes roll back with it and the call reports
// not-found with the ratings untouched.
func (r *storeRepository) DeleteWithRatings(ctx context.Context, storeID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", storeID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Store{}, storeID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteOwnedWithRatings is the owner-scoped variant: the store row delete is
// conditional on ownership, and a miss (wrong id or not the caller's store)
// rolls the whole transaction back.
func (r *storeRepository) DeleteOwnedWithRatings(ctx context.Context, storeID, ownerID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", storeID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND owner_id = ?", storeID, ownerID).Delete(&models.Store{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Store{}).Count(&count).Error
	return count, err
}
