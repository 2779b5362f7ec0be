package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StoreType classifies stores; its Key also names the store's profile kind.
type StoreType struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Key       string         `json:"key" gorm:"uniqueIndex;size:50;not null"`
	Name      string         `json:"name" gorm:"size:255"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Store is a marketplace storefront.
type Store struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"size:255"`
	ImageID     *uint          `json:"-"`
	AddressID   *uint          `json:"address_id"`
	StoreTypeID *uint          `json:"store_type_id" gorm:"index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Image     *Image         `json:"image,omitempty"`
	Address   *Address       `json:"address,omitempty"`
	StoreType *StoreType     `json:"store_type,omitempty"`
	Services  []Service      `json:"services"`
	Profiles  []StoreProfile `json:"-"`
}

// StoreProfile carries the type-specific display data of a store. Kind matches
// the key of the store's type; a store may hold profiles of several kinds.
type StoreProfile struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	StoreID   uint           `json:"store_id" gorm:"not null;index"`
	Kind      string         `json:"kind" gorm:"size:50;not null;index"`
	Name      string         `json:"name" gorm:"size:255"`
	ImageID   *uint          `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Image *Image `json:"image,omitempty"`
}

// ServiceType classifies services.
type ServiceType struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Key       string         `json:"key" gorm:"size:50;index"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Service is something a store sells.
type Service struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"size:255;not null"`
	Description   string          `json:"description" gorm:"size:255"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null;default:0"`
	ImageID       *uint           `json:"image_id"`
	ServiceTypeID *uint           `json:"service_type_id" gorm:"index"`
	StoreID       uint            `json:"store_id" gorm:"not null;index"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	ServiceType *ServiceType `json:"service_type,omitempty"`
}
