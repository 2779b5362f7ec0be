package handler

import (
	"time"

	"marketplace/internal/model"
	"marketplace/internal/service"
)

// UserResponse is the public shape of a user. The password hash never appears.
type UserResponse struct {
	ID              uint            `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Cpf             string          `json:"cpf"`
	Rg              string          `json:"rg"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Code            *string         `json:"code"`
	UserTypeID      uint            `json:"user_type_id"`
	StoreID         *uint           `json:"store_id"`
	ImageID         *uint           `json:"image_id"`
	AddressID       *uint           `json:"address_id"`
	PrivacyPolicyID uint            `json:"privacy_policy_id"`
	TermUseID       uint            `json:"term_use_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	UserType        *model.UserType `json:"user_type,omitempty"`
	Image           *model.Image    `json:"image,omitempty"`
	Address         *model.Address  `json:"address,omitempty"`
	FollowNumber    *int64          `json:"follow_number,omitempty"`
	FollowedNumber  *int64          `json:"followed_number,omitempty"`
	Token           string          `json:"token,omitempty"`
}

func newUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Cpf:             u.Cpf,
		Rg:              u.Rg,
		Email:           u.Email,
		Phone:           u.Phone,
		Code:            u.Code,
		UserTypeID:      u.UserTypeID,
		StoreID:         u.StoreID,
		ImageID:         u.ImageID,
		AddressID:       u.AddressID,
		PrivacyPolicyID: u.PrivacyPolicyID,
		TermUseID:       u.TermUseID,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
		UserType:        u.UserType,
		Image:           u.Image,
		Address:         u.Address,
	}
}

func newProfileResponse(p *service.UserProfile) UserResponse {
	resp := newUserResponse(p.User)
	following, followers := p.FollowNumber, p.FollowedNumber
	resp.FollowNumber = &following
	resp.FollowedNumber = &followers
	return resp
}

// AdminSignInResponse is returned by sign-in when admin=true.
type AdminSignInResponse struct {
	User        UserResponse              `json:"user"`
	Permissions []service.PermissionGroup `json:"permissions"`
}

// ListResponse is the count-and-rows envelope of list endpoints.
type ListResponse struct {
	Count int64       `json:"count"`
	Rows  interface{} `json:"rows"`
}

// MessageResponse carries a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
