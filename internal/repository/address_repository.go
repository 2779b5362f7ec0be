package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace/internal/model"
)

// AddressRepository defines address persistence operations.
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	FindByID(ctx context.Context, id uint) (*model.Address, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
}

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository.
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *addressRepository) FindByID(ctx context.Context, id uint) (*model.Address, error) {
	var address model.Address
	if err := r.db.WithContext(ctx).First(&address, id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Address{ID: id}).Updates(fields).Error
}
