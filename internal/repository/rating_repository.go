package repository

import (
	"context"
	"time"

	"ratehub/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreSummary is the on-demand aggregate for one store. AvgRating is
// coalesced to zero when no ratings exist; zero is not a legal star value, so
// it is unambiguous together with Total.
type StoreSummary struct {
	AvgRating decimal.Decimal `gorm:"column:avg_rating"`
	Total     int64           `gorm:"column:total"`
}

// StoreRatingDetail is one row of the owner's rater list.
type StoreRatingDetail struct {
	Name    string    `gorm:"column:name"`
	Email   string    `gorm:"column:email"`
	Rating  int       `gorm:"column:rating"`
	RatedAt time.Time `gorm:"column:rated_at"`
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	FindByStoreAndUser(ctx context.Context, storeID, userID int64) (*models.Rating, error)
	ListByStore(ctx context.Context, storeID int64) ([]StoreRatingDetail, error)
	StoreSummary(ctx context.Context, storeID int64) (*StoreSummary, error)
	OwnerAverage(ctx context.Context, ownerID int64) (decimal.NullDecimal, error)
	Count(ctx context.Context) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes a rating as a single atomic statement: insert, or update the
// existing (store,user) row detected through the composite unique index. Not
// a read-then-write, so two concurrent submissions by the same user cannot
// produce two rows or a lost update. The timestamp advances on every call,
// whether or not the stars changed.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	rating.RatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "rated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) FindByStoreAndUser(ctx context.Context, storeID, userID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND user_id = ?", storeID, userID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByStore returns the full rater detail list for a store, newest first.
func (r *ratingRepository) ListByStore(ctx context.Context, storeID int64) ([]StoreRatingDetail, error) {
	var rows []StoreRatingDetail
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.name, u.email, r.rating, r.rated_at
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = ?
		ORDER BY r.rated_at DESC`, storeID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// StoreSummary recomputes the mean and count from the source rows on every
// call; nothing is incrementally maintained, so the value cannot drift. A
// store with no ratings (or an unknown id) yields 0 / 0, not an error.
func (r *ratingRepository) StoreSummary(ctx context.Context, storeID int64) (*StoreSummary, error) {
	var summary StoreSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS total
		FROM ratings
		WHERE store_id = ?`, storeID).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// OwnerAverage is the mean over the ratings of every store the owner has.
// It stays NULL, not zero, when there is no data to average.
func (r *ratingRepository) OwnerAverage(ctx context.Context, ownerID int64) (decimal.NullDecimal, error) {
	var row struct {
		OwnerAvgRating decimal.NullDecimal `gorm:"column:owner_avg_rating"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT AVG(r.rating) AS owner_avg_rating
		FROM ratings r
		JOIN stores s ON s.id = r.store_id
		WHERE s.owner_id = ?`, ownerID).Scan(&row).Error
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return row.OwnerAvgRating, nil
}

func (r *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).Count(&count).Error
	return count, err
}
