package backend

import (
	"context"
	"errors"
	"io"

	"github.com/vortexsites/barbershop-backend/internal/models"
)

// ErrUnavailable is what every degraded-mode write reports. Reads never
// return it: they collapse to empty results instead.
var ErrUnavailable = errors.New("backend unavailable")

// Facade is the one surface the site and the admin dashboard talk to. It is
// satisfied by exactly two implementations chosen at construction time: a
// live facade bound to real storage, sessions and tables, and a degraded
// stub used when any of those cannot be reached.
//
// The per-operation contract is asymmetric on purpose:
//
//   - GetEnquiries and GetGalleryImages never fail; store errors are logged
//     and collapsed to an empty slice, so callers cannot tell "no data" from
//     "fetch failed".
//   - SubmitEnquiry, UpdateEnquiryStatus and UploadImage always propagate
//     failures; the public form and the dashboard must show them.
//   - Logout always succeeds from the caller's point of view.
//   - GetSession returns nil for missing, expired or unreadable sessions.
type Facade interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, sessionID string) *models.Session

	GetEnquiries(ctx context.Context) []models.Enquiry
	SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) error
	UpdateEnquiryStatus(ctx context.Context, id uint, status string) error

	GetGalleryImages(ctx context.Context) []models.GalleryImage
	UploadImage(ctx context.Context, filename string, content io.Reader) (*models.GalleryImage, error)
}

// ObjectStorage is the object-store capability the live facade consumes.
type ObjectStorage interface {
	Upload(ctx context.Context, name string, content io.Reader, contentType string) error
	PublicURL(name string) string
}

// SessionStore holds sessions with expiry. Get returns (nil, nil) for a
// missing or expired session.
type SessionStore interface {
	Create(ctx context.Context, sess *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// Store is the table-access capability: enquiries, gallery rows and the
// user lookup behind Login.
type Store interface {
	ListEnquiries(ctx context.Context) ([]models.Enquiry, error)
	InsertEnquiry(ctx context.Context, enquiry *models.Enquiry) error
	UpdateEnquiryStatus(ctx context.Context, id uint, status string) error

	ListVisibleGalleryImages(ctx context.Context) ([]models.GalleryImage, error)
	InsertGalleryImage(ctx context.Context, img *models.GalleryImage) error

	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
