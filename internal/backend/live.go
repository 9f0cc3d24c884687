package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vortexsites/barbershop-backend/internal/models"
)

const (
	sessionTTL       = 24 * time.Hour
	defaultImageType = "portfolio"
)

var errInvalidCredentials = errors.New("invalid credentials")

type liveFacade struct {
	store    Store
	storage  ObjectStorage
	sessions SessionStore

	now func() time.Time
}

// NewLive binds the facade to a concrete capability set. All three are
// passed in so tests can substitute fakes.
func NewLive(store Store, storage ObjectStorage, sessions SessionStore) Facade {
	return &liveFacade{
		store:    store,
		storage:  storage,
		sessions: sessions,
		now:      time.Now,
	}
}

// --------------------------------------------------
// Authentication
// --------------------------------------------------

// Login deliberately reports one generic failure for both unknown email and
// wrong password; the REST login keeps the historical asymmetry instead.
func (f *liveFacade) Login(
	ctx context.Context,
	email string,
	password string,
) (*models.Session, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := f.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, errInvalidCredentials
	}

	sess := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: f.now().Add(sessionTTL),
	}

	if err := f.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

func (f *liveFacade) Logout(ctx context.Context, sessionID string) error {
	if sessionID != "" {
		if err := f.sessions.Delete(ctx, sessionID); err != nil {
			log.Println("logout: session delete failed:", err)
		}
	}
	return nil
}

func (f *liveFacade) GetSession(ctx context.Context, sessionID string) *models.Session {
	if sessionID == "" {
		return nil
	}

	sess, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		log.Println("get session failed:", err)
		return nil
	}
	if sess == nil || sess.Expired(f.now()) {
		return nil
	}
	return sess
}

// --------------------------------------------------
// Enquiries
// --------------------------------------------------

func (f *liveFacade) GetEnquiries(ctx context.Context) []models.Enquiry {
	enquiries, err := f.store.ListEnquiries(ctx)
	if err != nil {
		log.Println("list enquiries failed:", err)
		return []models.Enquiry{}
	}
	return enquiries
}

func (f *liveFacade) SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	if enquiry.Status == "" {
		enquiry.Status = models.EnquiryStatusNew
	}
	return f.store.InsertEnquiry(ctx, enquiry)
}

func (f *liveFacade) UpdateEnquiryStatus(ctx context.Context, id uint, status string) error {
	if !models.IsValidEnquiryStatus(status) {
		return fmt.Errorf("invalid enquiry status %q", status)
	}
	return f.store.UpdateEnquiryStatus(ctx, id, status)
}

// --------------------------------------------------
// Gallery
// --------------------------------------------------

func (f *liveFacade) GetGalleryImages(ctx context.Context) []models.GalleryImage {
	images, err := f.store.ListVisibleGalleryImages(ctx)
	if err != nil {
		log.Println("list gallery images failed:", err)
		return []models.GalleryImage{}
	}
	return images
}

// UploadImage runs the three-step sequence: store the object, resolve its
// public URL, insert the gallery row. A failure in step 1 or 3 aborts and
// propagates. A step-3 failure leaves the stored object behind; there is no
// compensating delete.
func (f *liveFacade) UploadImage(
	ctx context.Context,
	filename string,
	content io.Reader,
) (*models.GalleryImage, error) {

	name := objectName(f.now(), filename)

	if err := f.storage.Upload(ctx, name, content, contentTypeFor(filename)); err != nil {
		return nil, err
	}

	img := &models.GalleryImage{
		ImageURL:      f.storage.PublicURL(name),
		Caption:       filename,
		ImageType:     defaultImageType,
		PublicVisible: true,
	}

	if err := f.store.InsertGalleryImage(ctx, img); err != nil {
		return nil, err
	}

	return img, nil
}

// objectName prefixes the upload instant in milliseconds and replaces every
// whitespace rune with an underscore, keeping stored names collision-poor
// and free of unsafe characters.
func objectName(now time.Time, filename string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, filename)

	return fmt.Sprintf("%d_%s", now.UnixMilli(), clean)
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
