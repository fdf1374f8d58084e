package main

import (
	"log"
	"os"

	"curelink-backend/internal/config"
	"curelink-backend/internal/middleware"
	"curelink-backend/internal/routes"
	"curelink-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Connect DB
	config.ConnectDB()

	// Init Firebase (opsional, no-op kalau credential ga ada)
	utils.InitFCM()

	// 3. Init Router
	r := gin.Default()

	// 4. Pasang Middleware Global
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// 5. Setup Routes
	routes.SetupRoutes(r)

	// 6. Health Check
	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "CureLink API OK!", nil)
	})

	// 7. Run Server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server berjalan di port " + port)
	r.Run(":" + port)
}
