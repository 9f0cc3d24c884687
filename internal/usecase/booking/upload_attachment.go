package booking

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vortexsites/barbershop-backend/internal/audit"
	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/imaging"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

type UploadAttachmentInput struct {
	UserID        uint
	AppointmentID *uint
	ImageType     string
	Filename      string
	Content       io.Reader
}

type UploadAttachment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	dir   string
	now   func() time.Time
}

func NewUploadAttachment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	dir string,
) *UploadAttachment {
	return &UploadAttachment{
		repo:  repo,
		audit: audit,
		dir:   dir,
		now:   time.Now,
	}
}

// Execute stores the file under a millisecond-timestamp name, writes a webp
// thumbnail next to it, and records the reference row. The stored name keeps
// only the original extension; two uploads in the same millisecond would
// overwrite each other.
func (uc *UploadAttachment) Execute(
	ctx context.Context,
	in UploadAttachmentInput,
) (*models.ImageUpload, error) {

	if in.Content == nil {
		return nil, httperr.ErrBusiness(domain.CodeNoFile)
	}

	raw, err := io.ReadAll(in.Content)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidImage)
	}

	name := fmt.Sprintf("%d%s", uc.now().UnixMilli(), filepath.Ext(in.Filename))
	path := filepath.Join(uc.dir, name)

	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return nil, err
	}

	if err := uc.writeThumbnail(path, img); err != nil {
		// The original upload is intact, a missing thumbnail is tolerable.
		log.Printf("thumbnail write failed for %s: %v", path, err)
	}

	upload := &models.ImageUpload{
		UserID:        in.UserID,
		AppointmentID: in.AppointmentID,
		ImagePath:     path,
		ImageType:     in.ImageType,
	}

	if err := uc.repo.CreateImageUpload(ctx, upload); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "image_uploaded",
		Entity:   "image",
		EntityID: &upload.ID,
	})

	return upload, nil
}

func (uc *UploadAttachment) writeThumbnail(path string, img image.Image) error {
	f, err := os.Create(thumbnailPath(path))
	if err != nil {
		return err
	}
	defer f.Close()

	return imaging.EncodeWebP(f, imaging.Thumbnail(img))
}

func thumbnailPath(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + "_thumb.webp"
}
