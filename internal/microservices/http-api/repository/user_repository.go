package repository

import (
	"context"
	"fmt"
	"strings"

	"storerating/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// UserUpdate lists the user columns to change; nil fields are left alone.
type UserUpdate struct {
	Name  *string
	Email *string
	Role  *models.Role
}

func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Role == nil
}

func (u UserUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Role != nil {
		cols["role"] = *u.Role
	}
	return cols
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	List(ctx context.Context, params ListParams) ([]models.User, int64, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		// never hand back a zero-value user
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) List(ctx context.Context, params ListParams) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Table("users AS u")
	if strings.TrimSpace(params.Search) != "" {
		pattern := likePattern(params.Search)
		query = query.Where("LOWER(u.name) LIKE ? OR LOWER(u.email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	var users []models.User
	err := query.
		Select("u.*").
		Order(userSortColumns.orderBy(params.SortBy, params.SortOrder)).
		Order("u.id DESC").
		Scopes(paginate(params)).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, update UserUpdate) (*models.User, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(update.columns())
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user; stores and ratings go with it through ON DELETE CASCADE.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
