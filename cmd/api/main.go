package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/barber-slots/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-slots/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-slots/internal/infra/repository"
	"github.com/BruksfildServices01/barber-slots/internal/middleware"
	"github.com/BruksfildServices01/barber-slots/internal/routes"
	"github.com/BruksfildServices01/barber-slots/internal/scheduler"
	ucScheduling "github.com/BruksfildServices01/barber-slots/internal/usecase/scheduling"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	generateUC := ucScheduling.NewGenerateSlots(
		infraRepo.NewSchedulingGormRepository(db),
		time.Hour,
	)

	sched := scheduler.New(generateUC, time.Now)
	if err := sched.Start(cfg.SlotGenCron); err != nil {
		log.Fatalf("failed to start slot scheduler: %v", err)
	}
	defer sched.Stop()

	// first pass at boot so a restart mid-day fills the current windows
	go sched.RunOnce()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
