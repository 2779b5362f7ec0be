package repository

import (
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// NewImageRepository creates a new image repository.
func NewImageRepository(db *gorm.DB) CRUDRepository[model.Image] {
	return NewCRUDRepository[model.Image](db)
}

// NewUserImageRepository creates a new gallery repository.
func NewUserImageRepository(db *gorm.DB) CRUDRepository[model.UserImage] {
	return NewCRUDRepository[model.UserImage](db, "Image")
}

// NewStoreTypeRepository creates a new store type repository.
func NewStoreTypeRepository(db *gorm.DB) CRUDRepository[model.StoreType] {
	return NewCRUDRepository[model.StoreType](db)
}

// NewStoreRepository creates a new store repository.
func NewStoreRepository(db *gorm.DB) CRUDRepository[model.Store] {
	return NewCRUDRepository[model.Store](db, "Image", "Address", "StoreType", "Services")
}

// NewServiceTypeRepository creates a new service type repository.
func NewServiceTypeRepository(db *gorm.DB) CRUDRepository[model.ServiceType] {
	return NewCRUDRepository[model.ServiceType](db)
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *gorm.DB) CRUDRepository[model.Service] {
	return NewCRUDRepository[model.Service](db, "ServiceType")
}

// NewPetTypeRepository creates a new pet type repository.
func NewPetTypeRepository(db *gorm.DB) CRUDRepository[model.PetType] {
	return NewCRUDRepository[model.PetType](db)
}

// NewBreedRepository creates a new breed repository.
func NewBreedRepository(db *gorm.DB) CRUDRepository[model.Breed] {
	return NewCRUDRepository[model.Breed](db, "PetType")
}

// ByPetType narrows a breed listing to one pet type.
func ByPetType(petTypeID uint) *Condition {
	return &Condition{SQL: "pet_type_id = ?", Args: []interface{}{petTypeID}}
}
