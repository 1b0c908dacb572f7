package main

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cannaconscious/booking-api/internal/config"
	dbpkg "github.com/cannaconscious/booking-api/internal/db"
	"github.com/cannaconscious/booking-api/internal/logging"
	"github.com/cannaconscious/booking-api/internal/middleware"
	"github.com/cannaconscious/booking-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	if cfg.AllowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}

	return corsCfg
}
