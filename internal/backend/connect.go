package backend

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/vortexsites/barbershop-backend/internal/config"
	"github.com/vortexsites/barbershop-backend/internal/session"
	"github.com/vortexsites/barbershop-backend/internal/storage"
)

// Connect builds the live facade against storage, sessions and the
// relational store. Any construction failure falls back to the degraded
// facade; callers always get a usable Facade and never a panic. The choice
// is made exactly once, here.
func Connect(cfg *config.Config, db *gorm.DB) Facade {
	if db == nil {
		log.Println("backend: no database handle, running degraded")
		return NewDegraded()
	}

	objStorage, err := storage.NewS3Storage(cfg)
	if err != nil {
		log.Println("backend: object storage unavailable, running degraded:", err)
		return NewDegraded()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Println("backend: session store unavailable, running degraded:", err)
		return NewDegraded()
	}

	log.Println("backend: connected")
	return NewLive(NewGormStore(db), objStorage, session.NewRedisStore(rdb))
}
