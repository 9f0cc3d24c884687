package backend

import (
	"context"
	"io"
	"sort"

	"github.com/vortexsites/barbershop-backend/internal/models"
)

// --------------------------------------------------
// Fake table store
// --------------------------------------------------

type fakeStore struct {
	enquiries []models.Enquiry
	images    []models.GalleryImage
	users     map[string]*models.User

	listErr   error
	insertErr error
	nextID    uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*models.User{}}
}

func (s *fakeStore) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.Enquiry, len(s.enquiries))
	copy(out, s.enquiries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *fakeStore) InsertEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.nextID++
	enquiry.ID = s.nextID
	s.enquiries = append(s.enquiries, *enquiry)
	return nil
}

func (s *fakeStore) UpdateEnquiryStatus(ctx context.Context, id uint, status string) error {
	for i := range s.enquiries {
		if s.enquiries[i].ID == id {
			s.enquiries[i].Status = status
			return nil
		}
	}
	return s.insertErr
}

func (s *fakeStore) ListVisibleGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.GalleryImage
	for _, img := range s.images {
		if img.PublicVisible {
			out = append(out, img)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (s *fakeStore) InsertGalleryImage(ctx context.Context, img *models.GalleryImage) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.nextID++
	img.ID = s.nextID
	s.images = append(s.images, *img)
	return nil
}

func (s *fakeStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users[email], nil
}

// --------------------------------------------------
// Fake object storage
// --------------------------------------------------

type fakeStorage struct {
	objects   map[string][]byte
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Upload(ctx context.Context, name string, content io.Reader, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	s.objects[name] = data
	return nil
}

func (s *fakeStorage) PublicURL(name string) string {
	return "https://cdn.example.com/gallery-images/" + name
}

// --------------------------------------------------
// Fake session store
// --------------------------------------------------

type fakeSessions struct {
	sessions  map[string]*models.Session
	createErr error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]*models.Session{}}
}

func (s *fakeSessions) Create(ctx context.Context, sess *models.Session) error {
	if s.createErr != nil {
		return s.createErr
	}
	cp := *sess
	s.sessions[sess.ID] = &cp
	return nil
}

func (s *fakeSessions) Get(ctx context.Context, id string) (*models.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (s *fakeSessions) Delete(ctx context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}
