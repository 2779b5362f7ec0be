package model

import (
	"time"

	"gorm.io/gorm"
)

// UserAdmin grants a user a permission set over one store.
type UserAdmin struct {
	ID                    uint `gorm:"primaryKey"`
	UserID                uint `gorm:"not null;index"`
	StoreID               uint `gorm:"not null;index"`
	UserAdminPermissionID uint `gorm:"not null;index"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`

	// Relations
	Store      *Store
	Permission *UserAdminPermission `gorm:"foreignKey:UserAdminPermissionID"`
}

// UserAdminPermission is a named permission set.
type UserAdminPermission struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"size:50;not null;index"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// UserAdminFeature is a capability that only applies to stores of one type.
type UserAdminFeature struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"size:50;not null"`
	Name        string `gorm:"size:255"`
	StoreTypeID uint   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// UserAdminPermissionFeature links permissions to features.
type UserAdminPermissionFeature struct {
	ID                    uint `gorm:"primaryKey"`
	UserAdminPermissionID uint `gorm:"not null;index"`
	UserAdminFeatureID    uint `gorm:"not null;index"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}
