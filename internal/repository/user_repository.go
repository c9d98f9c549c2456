package repository

import (
	"context"

	"ratehub/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserFilter holds the independent substring filters for user listings.
// All supplied filters must match; empty values match everything.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    string // exact match, skipped when empty
}

// UserWithOwnerAverage is the listing row shape: the user columns plus the
// mean rating across all stores the user owns. The average is NULL (not zero)
// when the user owns no stores or their stores have no ratings, so the
// projection layer can tell "no data" apart from a real value.
type UserWithOwnerAverage struct {
	ID             int64               `gorm:"column:id"`
	Name           string              `gorm:"column:name"`
	Email          string              `gorm:"column:email"`
	Address        string              `gorm:"column:address"`
	Role           models.Role         `gorm:"column:role"`
	OwnerAvgRating decimal.NullDecimal `gorm:"column:owner_avg_rating"`
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	List(ctx context.Context, filter UserFilter, sort Sort) ([]UserWithOwnerAverage, error)
	GetWithOwnerAverage(ctx context.Context, id int64) (*UserWithOwnerAverage, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	// return nil on error so a zero-value struct is never mistaken for a hit
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns users matching the filters, each with their owner average. The
// GROUP BY keeps users without stores or ratings as exactly one row apiece;
// the LEFT JOINs never drop or duplicate them.
func (r *userRepository) List(ctx context.Context, filter UserFilter, sort Sort) ([]UserWithOwnerAverage, error) {
	query := `
		SELECT u.id, u.name, u.email, u.address, u.role,
		       AVG(r.rating) AS owner_avg_rating
		FROM users u
		LEFT JOIN stores s ON s.owner_id = u.id
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE u.name ILIKE ? AND u.email ILIKE ? AND u.address ILIKE ?`
	args := []interface{}{like(filter.Name), like(filter.Email), like(filter.Address)}

	if filter.Role != "" {
		query += ` AND u.role = ?`
		args = append(args, filter.Role)
	}

	// ORDER BY comes from the allowlist only, never from raw caller input.
	query += `
		GROUP BY u.id, u.name, u.email, u.address, u.role
		ORDER BY ` + UserOrderClause(sort)

	var rows []UserWithOwnerAverage
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userRepository) GetWithOwnerAverage(ctx context.Context, id int64) (*UserWithOwnerAverage, error) {
	var row UserWithOwnerAverage
	result := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.name, u.email, u.address, u.role,
		       AVG(r.rating) AS owner_avg_rating
		FROM users u
		LEFT JOIN stores s ON s.owner_id = u.id
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE u.id = ?
		GROUP BY u.id, u.name, u.email, u.address, u.role`, id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// Delete removes a user row. Ratings submitted by the user are left in place;
// user deletion does not cascade.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
