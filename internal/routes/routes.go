package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vortexsites/barbershop-backend/internal/audit"
	"github.com/vortexsites/barbershop-backend/internal/backend"
	"github.com/vortexsites/barbershop-backend/internal/config"
	"github.com/vortexsites/barbershop-backend/internal/handlers"
	infraRepo "github.com/vortexsites/barbershop-backend/internal/infra/repository"
	"github.com/vortexsites/barbershop-backend/internal/middleware"
	ucbooking "github.com/vortexsites/barbershop-backend/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, app backend.Facade) {

	// ------------------------------
	// Infra singletons
	// ------------------------------
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// Use cases
	// ------------------------------
	registerUC := ucbooking.NewRegister(bookingRepo, auditDispatcher)
	loginUC := ucbooking.NewLogin(bookingRepo, cfg.JWTSecret)
	createAppointmentUC := ucbooking.NewCreateAppointment(bookingRepo, auditDispatcher)
	listAppointmentsUC := ucbooking.NewListCustomerAppointments(bookingRepo)
	listBarbersUC := ucbooking.NewListBarbers(bookingRepo)
	uploadAttachmentUC := ucbooking.NewUploadAttachment(bookingRepo, auditDispatcher, cfg.UploadDir)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC, listAppointmentsUC)
	barberHandler := handlers.NewBarberHandler(listBarbersUC)
	uploadHandler := handlers.NewUploadHandler(uploadAttachmentUC)

	enquiryHandler := handlers.NewEnquiryHandler(app)
	galleryHandler := handlers.NewGalleryHandler(app)
	sessionHandler := handlers.NewSessionHandler(app)

	// Uploaded attachments are served straight from disk.
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		// ------------------------------
		// Booking API
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/barbers", barberHandler.List)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:userId", appointmentHandler.ListForCustomer)
			secured.POST("/upload", uploadHandler.Upload)
		}

		// ------------------------------
		// Facade: public site + admin dashboard
		// ------------------------------
		api.POST("/session/login", sessionHandler.Login)
		api.POST("/session/logout", sessionHandler.Logout)
		api.GET("/session", sessionHandler.Get)

		api.POST("/enquiries", enquiryHandler.Submit)
		api.GET("/gallery", galleryHandler.List)

		admin := api.Group("/")
		admin.Use(middleware.SessionMiddleware(app))
		{
			admin.GET("/enquiries", enquiryHandler.List)
			admin.PATCH("/enquiries/:id/status", enquiryHandler.UpdateStatus)
			admin.POST("/gallery/upload", galleryHandler.Upload)
		}
	}
}
