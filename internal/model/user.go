package model

import (
	"time"

	"gorm.io/gorm"
)

// DefaultUserTypeID is the role given to accounts created without one (regular user).
const DefaultUserTypeID uint = 2

// DefaultPolicyID is the privacy policy / terms of use version accepted on sign up.
const DefaultPolicyID uint = 2

// User is an account. Follow counts are derived and never stored.
type User struct {
	ID              uint           `gorm:"primaryKey"`
	FirstName       string         `gorm:"size:255"`
	LastName        string         `gorm:"size:255"`
	Cpf             string         `gorm:"size:20"`
	Rg              string         `gorm:"size:20"`
	Email           string         `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    string         `json:"-" gorm:"size:255;not null"`
	Phone           string         `gorm:"size:30"`
	Code            *string        `gorm:"uniqueIndex;size:64"`
	UserTypeID      uint           `gorm:"not null;default:2;index"`
	StoreID         *uint          `gorm:"index"`
	ImageID         *uint
	AddressID       *uint
	PrivacyPolicyID uint           `gorm:"default:2"`
	TermUseID       uint           `gorm:"default:2"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	// Relations
	UserType *UserType
	Image    *Image
	Address  *Address
}

// UserType is a role; its Key is what capability checks compare against.
type UserType struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Key       string         `json:"key" gorm:"uniqueIndex;size:50;not null"`
	Name      string         `json:"name" gorm:"size:255"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// UserFollow is a directed follow edge between two users.
type UserFollow struct {
	ID         uint `gorm:"primaryKey"`
	FromUserID uint `gorm:"not null;index"`
	ToUserID   uint `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
