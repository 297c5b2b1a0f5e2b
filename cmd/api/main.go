package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberbook/barbershop-api/internal/config"
	dbpkg "github.com/barberbook/barbershop-api/internal/db"
	"github.com/barberbook/barbershop-api/internal/logger"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
