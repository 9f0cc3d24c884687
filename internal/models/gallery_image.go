package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ImageURL  string `gorm:"size:500;not null" json:"image_url"`
	Caption   string `gorm:"size:255" json:"caption"`
	ImageType string `gorm:"size:50;default:'portfolio'" json:"image_type"`

	PublicVisible bool `gorm:"default:true" json:"public_visible"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
