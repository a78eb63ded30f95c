package routes

import (
	"log"

	"jobboard/internal/config"
	"jobboard/internal/database"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, searchCache *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, searchCache, hub, logger)
}
