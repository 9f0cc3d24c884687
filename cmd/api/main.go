package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vortexsites/barbershop-backend/internal/backend"
	"github.com/vortexsites/barbershop-backend/internal/config"
	dbpkg "github.com/vortexsites/barbershop-backend/internal/db"
	"github.com/vortexsites/barbershop-backend/internal/middleware"
	"github.com/vortexsites/barbershop-backend/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	app := backend.Connect(cfg, db)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, app)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
