package service

import (
	"github.com/shopspring/decimal"

	"marketplace/internal/model"
)

// ImageInput is an embedded image payload.
type ImageInput struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

func (in *ImageInput) toModel() *model.Image {
	return &model.Image{Name: in.Name, MimeType: in.MimeType, Data: in.Data}
}

// RequiredImageInput is an image payload whose data must be present.
type RequiredImageInput struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data" validate:"required"`
}

func (in *RequiredImageInput) toModel() *model.Image {
	return &model.Image{Name: in.Name, MimeType: in.MimeType, Data: in.Data}
}

// AddressInput is an embedded address payload. Absent fields are left untouched
// on update.
type AddressInput struct {
	Street     *string  `json:"street"`
	Number     *string  `json:"number"`
	Complement *string  `json:"complement"`
	District   *string  `json:"district"`
	City       *string  `json:"city"`
	State      *string  `json:"state"`
	ZipCode    *string  `json:"zip_code"`
	Country    *string  `json:"country"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (in *AddressInput) toModel() *model.Address {
	return &model.Address{
		Street:     deref(in.Street),
		Number:     deref(in.Number),
		Complement: deref(in.Complement),
		District:   deref(in.District),
		City:       deref(in.City),
		State:      deref(in.State),
		ZipCode:    deref(in.ZipCode),
		Country:    deref(in.Country),
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}
}

func (in *AddressInput) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	setString(fields, "street", in.Street)
	setString(fields, "number", in.Number)
	setString(fields, "complement", in.Complement)
	setString(fields, "district", in.District)
	setString(fields, "city", in.City)
	setString(fields, "state", in.State)
	setString(fields, "zip_code", in.ZipCode)
	setString(fields, "country", in.Country)
	if in.Latitude != nil {
		fields["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		fields["longitude"] = *in.Longitude
	}
	return fields
}

// CreateUserInput is the sign-up payload.
type CreateUserInput struct {
	FirstName  string        `json:"first_name" validate:"required"`
	LastName   string        `json:"last_name"`
	Cpf        string        `json:"cpf"`
	Rg         string        `json:"rg"`
	Email      string        `json:"email" validate:"required"`
	Password   string        `json:"password" validate:"required"`
	Phone      string        `json:"phone"`
	Code       string        `json:"code"`
	UserTypeID uint          `json:"user_type_id"`
	StoreID    *uint         `json:"store_id"`
	Image      *ImageInput   `json:"image"`
	Address    *AddressInput `json:"address"`
}

// UpdateUserInput is a partial user update; nil fields are not written.
type UpdateUserInput struct {
	FirstName       *string       `json:"first_name"`
	LastName        *string       `json:"last_name"`
	Cpf             *string       `json:"cpf"`
	Rg              *string       `json:"rg"`
	Code            *string       `json:"code"`
	Email           *string       `json:"email"`
	Password        *string       `json:"password"`
	Phone           *string       `json:"phone"`
	UserTypeID      *uint         `json:"user_type_id"`
	StoreID         *uint         `json:"store_id"`
	PrivacyPolicyID *uint         `json:"privacy_policy_id"`
	TermUseID       *uint         `json:"term_use_id"`
	Image           *ImageInput   `json:"image"`
	Address         *AddressInput `json:"address"`
}

func (in *UpdateUserInput) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	setString(fields, "first_name", in.FirstName)
	setString(fields, "last_name", in.LastName)
	setString(fields, "cpf", in.Cpf)
	setString(fields, "rg", in.Rg)
	setString(fields, "email", in.Email)
	setString(fields, "phone", in.Phone)
	if in.Code != nil {
		if *in.Code == "" {
			fields["code"] = nil
		} else {
			fields["code"] = *in.Code
		}
	}
	setUint(fields, "user_type_id", in.UserTypeID)
	setUint(fields, "store_id", in.StoreID)
	setUint(fields, "privacy_policy_id", in.PrivacyPolicyID)
	setUint(fields, "term_use_id", in.TermUseID)
	return fields
}

// SignInInput carries credentials; Email also accepts the access code.
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ListUsersInput holds the raw list query parameters.
type ListUsersInput struct {
	Limit  int
	Offset int
	Query  string
	Order  string
	Filter string
}

// CreateStoreInput is the store payload.
type CreateStoreInput struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	StoreTypeID *uint         `json:"store_type_id"`
	Image       *ImageInput   `json:"image"`
	Address     *AddressInput `json:"address"`
}

// CreateUserImageInput is the gallery entry payload.
type CreateUserImageInput struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Image       *RequiredImageInput `json:"image" validate:"required"`
}

// CreateServiceTypeInput is the service type payload.
type CreateServiceTypeInput struct {
	Key  string `json:"key"`
	Name string `json:"name" validate:"required"`
}

// CreateServiceInput is the service payload.
type CreateServiceInput struct {
	Name          string           `json:"name" validate:"required"`
	Description   string           `json:"description"`
	Price         *decimal.Decimal `json:"price" validate:"required"`
	StoreID       uint             `json:"store_id" validate:"required"`
	ServiceTypeID *uint            `json:"service_type_id"`
	Image         *ImageInput      `json:"image"`
}

// CreatePetTypeInput is the pet type payload.
type CreatePetTypeInput struct {
	Name string `json:"name" validate:"required"`
}

// CreateBreedInput is the breed payload.
type CreateBreedInput struct {
	Name      string `json:"name" validate:"required"`
	PetTypeID uint   `json:"pet_type_id" validate:"required"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func setString(fields map[string]interface{}, column string, v *string) {
	if v != nil {
		fields[column] = *v
	}
}

func setUint(fields map[string]interface{}, column string, v *uint) {
	if v != nil {
		fields[column] = *v
	}
}
