package backend

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vortexsites/barbershop-backend/internal/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore adapts the relational store to the facade's table-access
// capability.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&enquiries).Error
	if err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (s *gormStore) InsertEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	return s.db.WithContext(ctx).Create(enquiry).Error
}

func (s *gormStore) UpdateEnquiryStatus(ctx context.Context, id uint, status string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Enquiry{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormStore) ListVisibleGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := s.db.WithContext(ctx).
		Where("public_visible = ?", true).
		Order("uploaded_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (s *gormStore) InsertGalleryImage(ctx context.Context, img *models.GalleryImage) error {
	return s.db.WithContext(ctx).Create(img).Error
}

func (s *gormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
