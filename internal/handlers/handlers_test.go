package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vortexsites/barbershop-backend/internal/dto"
	"github.com/vortexsites/barbershop-backend/internal/middleware"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newGetWithSession(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.SessionTokenHeader, token)
	return req
}

func newPatchWithSession(path, token, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionTokenHeader, token)
	return req
}

// asUser stands in for the JWT middleware in handler tests.
func asUser(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

// --------------------------------------------------
// Fake booking repository
// --------------------------------------------------

type stubRepo struct {
	users        map[string]*models.User
	appointments []models.Appointment
	nextID       uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: map[string]*models.User{}}
}

func (r *stubRepo) CreateUser(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Email] = user
	return nil
}

func (r *stubRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.users[email], nil
}

func (r *stubRepo) CreateBarber(ctx context.Context, barber *models.Barber) error {
	r.nextID++
	barber.ID = r.nextID
	return nil
}

func (r *stubRepo) ListBarbers(ctx context.Context) ([]dto.BarberListDTO, error) {
	return []dto.BarberListDTO{{ID: 1, Name: "Joe", Specialization: "fades", Rating: 4.8}}, nil
}

func (r *stubRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if existing.BarberID == ap.BarberID && existing.AppointmentTime.Equal(ap.AppointmentTime) {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *stubRepo) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]dto.AppointmentListDTO, error) {
	var out []dto.AppointmentListDTO
	for _, ap := range r.appointments {
		if ap.CustomerID == customerID {
			out = append(out, dto.AppointmentListDTO{
				ID:              ap.ID,
				BarberID:        ap.BarberID,
				BarberName:      "Joe",
				AppointmentTime: ap.AppointmentTime,
			})
		}
	}
	return out, nil
}

func (r *stubRepo) CreateImageUpload(ctx context.Context, upload *models.ImageUpload) error {
	r.nextID++
	upload.ID = r.nextID
	return nil
}

// --------------------------------------------------
// Fake facade
// --------------------------------------------------

type stubFacade struct {
	enquiries []models.Enquiry
	images    []models.GalleryImage
	sessions  map[string]*models.Session
	submitErr error
}

func newStubFacade() *stubFacade {
	return &stubFacade{sessions: map[string]*models.Session{}}
}

func (f *stubFacade) Login(ctx context.Context, email, password string) (*models.Session, error) {
	sess := &models.Session{ID: "s1", Email: email, Role: models.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *stubFacade) Logout(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *stubFacade) GetSession(ctx context.Context, sessionID string) *models.Session {
	return f.sessions[sessionID]
}

func (f *stubFacade) GetEnquiries(ctx context.Context) []models.Enquiry {
	return f.enquiries
}

func (f *stubFacade) SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	enquiry.ID = uint(len(f.enquiries) + 1)
	f.enquiries = append([]models.Enquiry{*enquiry}, f.enquiries...)
	return nil
}

func (f *stubFacade) UpdateEnquiryStatus(ctx context.Context, id uint, status string) error {
	for i := range f.enquiries {
		if f.enquiries[i].ID == id {
			f.enquiries[i].Status = status
		}
	}
	return nil
}

func (f *stubFacade) GetGalleryImages(ctx context.Context) []models.GalleryImage {
	return f.images
}

func (f *stubFacade) UploadImage(ctx context.Context, filename string, content io.Reader) (*models.GalleryImage, error) {
	img := models.GalleryImage{ID: 1, ImageURL: "https://cdn/x/" + filename, Caption: filename, PublicVisible: true}
	f.images = append(f.images, img)
	return &img, nil
}
