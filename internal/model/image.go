package model

import (
	"time"

	"gorm.io/gorm"
)

// Image is an encoded payload owned by whichever record references it.
type Image struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name,omitempty" gorm:"size:255"`
	MimeType  string         `json:"mime_type,omitempty" gorm:"size:100"`
	Data      string         `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Address is a postal location owned 1:1 by a user or a store.
type Address struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Street     string         `json:"street" gorm:"size:255"`
	Number     string         `json:"number" gorm:"size:30"`
	Complement string         `json:"complement" gorm:"size:255"`
	District   string         `json:"district" gorm:"size:255"`
	City       string         `json:"city" gorm:"size:255"`
	State      string         `json:"state" gorm:"size:100"`
	ZipCode    string         `json:"zip_code" gorm:"size:20"`
	Country    string         `json:"country" gorm:"size:100"`
	Latitude   *float64       `json:"latitude"`
	Longitude  *float64       `json:"longitude"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// UserImage is a gallery entry. It is not tied to a User despite the name.
type UserImage struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:255"`
	Description string         `json:"description" gorm:"type:text"`
	ImageID     *uint          `json:"image_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Image *Image `json:"image,omitempty"`
}
