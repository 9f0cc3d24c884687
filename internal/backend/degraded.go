package backend

import (
	"context"
	"io"

	"github.com/vortexsites/barbershop-backend/internal/models"
)

type degradedFacade struct{}

// NewDegraded returns the facade used when no live backend exists. Every
// operation is callable; reads come back empty, writes fail with
// ErrUnavailable, and nothing ever reaches the network.
func NewDegraded() Facade {
	return degradedFacade{}
}

func (degradedFacade) Login(context.Context, string, string) (*models.Session, error) {
	return nil, ErrUnavailable
}

func (degradedFacade) Logout(context.Context, string) error {
	return nil
}

func (degradedFacade) GetSession(context.Context, string) *models.Session {
	return nil
}

func (degradedFacade) GetEnquiries(context.Context) []models.Enquiry {
	return []models.Enquiry{}
}

func (degradedFacade) SubmitEnquiry(context.Context, *models.Enquiry) error {
	return ErrUnavailable
}

func (degradedFacade) UpdateEnquiryStatus(context.Context, uint, string) error {
	return ErrUnavailable
}

func (degradedFacade) GetGalleryImages(context.Context) []models.GalleryImage {
	return []models.GalleryImage{}
}

func (degradedFacade) UploadImage(context.Context, string, io.Reader) (*models.GalleryImage, error) {
	return nil, ErrUnavailable
}
