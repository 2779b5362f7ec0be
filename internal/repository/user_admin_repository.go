package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace/internal/model"
)

const featureKeysQuery = `
SELECT user_admin_features.key
FROM user_admin_permission_features
JOIN user_admin_features ON user_admin_features.id = user_admin_permission_features.user_admin_feature_id
WHERE user_admin_permission_features.user_admin_permission_id = ?
AND user_admin_features.store_type_id = ?
AND user_admin_permission_features.deleted_at IS NULL
AND user_admin_features.deleted_at IS NULL
ORDER BY user_admin_features.id`

// UserAdminRepository reads the store-scoped admin grants of users.
type UserAdminRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]model.UserAdmin, error)
	FeatureKeys(ctx context.Context, permissionID, storeTypeID uint) ([]string, error)
}

type userAdminRepository struct {
	db *gorm.DB
}

// NewUserAdminRepository creates a new user admin repository.
func NewUserAdminRepository(db *gorm.DB) UserAdminRepository {
	return &userAdminRepository{db: db}
}

// withoutData leaves image payloads out of preloaded rows.
func withoutData(db *gorm.DB) *gorm.DB {
	return db.Omit("data")
}

// FindByUser loads every grant of the user with permission, store, store type
// and store profiles; image blobs are not fetched.
func (r *userAdminRepository) FindByUser(ctx context.Context, userID uint) ([]model.UserAdmin, error) {
	admins := make([]model.UserAdmin, 0)
	err := r.db.WithContext(ctx).
		Preload("Permission").
		Preload("Store").
		Preload("Store.StoreType").
		Preload("Store.Image", withoutData).
		Preload("Store.Profiles").
		Preload("Store.Profiles.Image", withoutData).
		Where("user_id = ?", userID).
		Order("id").
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// FeatureKeys lists the live feature keys a permission grants on one store type.
func (r *userAdminRepository) FeatureKeys(ctx context.Context, permissionID, storeTypeID uint) ([]string, error) {
	keys := make([]string, 0)
	if err := r.db.WithContext(ctx).Raw(featureKeysQuery, permissionID, storeTypeID).Scan(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
