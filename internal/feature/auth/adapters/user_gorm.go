// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobpath_backend/internal/feature/auth/domain/entity"
	"jobpath_backend/internal/feature/auth/usecase"
)

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm instance with the given gorm.DB
// connection. Constructor for dependency injection.
//
// The connection must be opened with TranslateError enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey regardless of
// dialect.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create adds a user to the database.
// If a user with the same phone number already exists, it returns
// usecase.ErrPhoneAlreadyRegistered. The unique index makes two concurrent
// creates for the same number resolve to exactly one success.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrPhoneAlreadyRegistered
		}
		return err
	}
	return nil
}

// FindByPhone retrieves a user by normalized phone number.
// If the user does not exist, it returns usecase.ErrUserNotFound.
func (r *userGorm) FindByPhone(ctx context.Context, phoneNumber string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// If the user does not exist, it returns usecase.ErrUserNotFound.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
