package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Pooji-A/travelitineraryproject/internal/database"
	"github.com/Pooji-A/travelitineraryproject/internal/handlers"
	"github.com/Pooji-A/travelitineraryproject/internal/middleware"
	"github.com/Pooji-A/travelitineraryproject/internal/monitoring"
	"github.com/Pooji-A/travelitineraryproject/internal/session"
	"github.com/Pooji-A/travelitineraryproject/internal/utils"
	"github.com/gin-gonic/gin"
)

const sessionCleanupInterval = time.Hour

func main() {
	if err := utils.EnsureJWTReady(); err != nil {
		log.Fatal("JWT configuration error:", err)
	}

	database.InitDB()
	defer database.CloseDB()
	database.CreateTables()

	sessions := session.NewStore(database.DB)
	handlers.SetSessionStore(sessions)
	handlers.SetMonitoringService(monitoring.NewService(time.Now()))

	go sessionCleanupLoop(sessions)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(monitoring.RequestMetricsMiddleware())

	router.GET("/health", handlers.HealthCheck)
	router.GET("/api/status", handlers.Status)

	auth := router.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.POST("/logout", middleware.AuthMiddleware(sessions), handlers.Logout)
	}

	api := router.Group("/api", middleware.AuthMiddleware(sessions))
	{
		api.GET("/itineraries", handlers.GetUserItineraries)
		api.POST("/itineraries", handlers.CreateItinerary)
		api.DELETE("/itineraries/:itinerary_id", handlers.DeleteItinerary)
		api.GET("/itineraries/export", handlers.ExportItineraries)
		api.GET("/suggestions", handlers.GetSuggestions)
		api.DELETE("/profile", handlers.DeleteProfile)
	}

	monitor := router.Group("/monitoring")
	{
		monitor.GET("/status", handlers.MonitorStatus)
		monitor.GET("/storage", handlers.MonitorStorage)
		monitor.GET("/connections", handlers.MonitorConnections)
		monitor.GET("/users", handlers.MonitorUsers)
		monitor.GET("/runtime", handlers.MonitorRuntime)
		monitor.GET("/all", handlers.MonitorAll)
		monitor.GET("/snapshot", handlers.MonitorSnapshot)
		monitor.DELETE("/users", handlers.MonitorDeleteUserByUsername)
	}

	addr := listenAddr()
	log.Println("Travel Planner API starting on", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

func sessionCleanupLoop(sessions *session.Store) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		deleted, err := sessions.CleanupExpired()
		if err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
			continue
		}
		if deleted > 0 {
			log.Printf("Cleaned up %d expired sessions", deleted)
		}
	}
}

func listenAddr() string {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
