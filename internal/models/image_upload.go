package models

import "time"

type ImageUpload struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AppointmentID *uint `json:"appointment_id"`

	ImagePath string `gorm:"size:500;not null" json:"image_path"`
	ImageType string `gorm:"size:50" json:"image_type"`

	CreatedAt time.Time `json:"created_at"`
}
