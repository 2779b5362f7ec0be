package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace/internal/model"
)

var userPreloads = []string{"UserType", "Image", "Address"}

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByCode(ctx context.Context, code string) (*model.User, error)
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	List(ctx context.Context, opts ListOptions) ([]model.User, int64, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	DeleteMany(ctx context.Context, ids []uint) error
	CountFollowing(ctx context.Context, id uint) (int64, error)
	CountFollowers(ctx context.Context, id uint) (int64, error)
	ListUserTypes(ctx context.Context) ([]model.UserType, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) withPreloads(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, p := range userPreloads {
		tx = tx.Preload(p)
	}
	return tx
}

// Create inserts the user together with any embedded image or address.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.withPreloads(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail also returns soft-deleted users, whose email still holds the unique index.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Unscoped().Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByCode also returns soft-deleted users, whose code still holds the unique index.
func (r *userRepository) FindByCode(ctx context.Context, code string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Unscoped().Where("code = ?", code).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByLogin matches login against either the email or the access code.
func (r *userRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	var user model.User
	if err := r.withPreloads(ctx).
		Where("email = ? OR code = ?", login, login).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, opts ListOptions) ([]model.User, int64, error) {
	var count int64
	countQuery := r.db.WithContext(ctx).Model(&model.User{})
	if opts.Where != nil {
		countQuery = countQuery.Where(opts.Where.SQL, opts.Where.Args...)
	}
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	users := make([]model.User, 0)
	query := r.withPreloads(ctx)
	if opts.Where != nil {
		query = query.Where(opts.Where.SQL, opts.Where.Args...)
	}
	if len(opts.Order) == 0 {
		query = query.Order("id")
	}
	if err := opts.apply(query).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

// Update writes only the given columns.
func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.User{ID: id}).Updates(fields).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

// DeleteMany removes every listed user; ids that do not exist are ignored.
func (r *userRepository) DeleteMany(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.User{}).Error
}

// CountFollowing counts the users this user follows.
func (r *userRepository) CountFollowing(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).Where("from_user_id = ?", id).Count(&n).Error
	return n, err
}

// CountFollowers counts the users following this user.
func (r *userRepository) CountFollowers(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).Where("to_user_id = ?", id).Count(&n).Error
	return n, err
}

func (r *userRepository) ListUserTypes(ctx context.Context) ([]model.UserType, error) {
	types := make([]model.UserType, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
