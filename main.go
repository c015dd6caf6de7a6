package main

import (
	"log"
	"os"

	"cryptolab-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	config.AllowCredentials = true
	router.Use(cors.New(config))

	cipherHandler := handlers.NewCipherHandler()

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		caesar := api.Group("/caesar")
		{
			caesar.POST("/encrypt", cipherHandler.CaesarEncrypt)
			caesar.POST("/decrypt", cipherHandler.CaesarDecrypt)
			caesar.GET("/mapping/:shift", cipherHandler.CaesarMapping)
		}

		affine := api.Group("/affine")
		{
			affine.POST("/encrypt", cipherHandler.AffineEncrypt)
			affine.POST("/decrypt", cipherHandler.AffineDecrypt)
			affine.GET("/valid-keys", cipherHandler.AffineValidKeys)
			affine.GET("/mapping/:a/:b", cipherHandler.AffineMapping)
		}

		playfair := api.Group("/playfair")
		{
			playfair.POST("/encrypt", cipherHandler.PlayfairEncrypt)
			playfair.POST("/decrypt", cipherHandler.PlayfairDecrypt)
			playfair.GET("/matrix/:keyword", cipherHandler.PlayfairMatrix)
		}

		hill := api.Group("/hill")
		{
			hill.POST("/encrypt", cipherHandler.HillEncrypt)
			hill.POST("/decrypt", cipherHandler.HillDecrypt)
			hill.POST("/validate", cipherHandler.HillValidate)
			hill.POST("/crack", cipherHandler.HillCrack)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/caesar/encrypt       - Caesar cipher encryption")
	log.Printf("  POST /api/v1/caesar/decrypt       - Caesar cipher decryption")
	log.Printf("  GET  /api/v1/caesar/mapping/:shift - Alphabet mapping for a shift")
	log.Printf("  POST /api/v1/affine/encrypt       - Affine cipher encryption")
	log.Printf("  POST /api/v1/affine/decrypt       - Affine cipher decryption")
	log.Printf("  GET  /api/v1/affine/valid-keys    - Valid multiplicative keys")
	log.Printf("  GET  /api/v1/affine/mapping/:a/:b - Alphabet mapping for a key pair")
	log.Printf("  POST /api/v1/playfair/encrypt     - Playfair cipher encryption")
	log.Printf("  POST /api/v1/playfair/decrypt     - Playfair cipher decryption")
	log.Printf("  GET  /api/v1/playfair/matrix/:keyword - 5x5 key square preview")
	log.Printf("  POST /api/v1/hill/encrypt         - Hill cipher encryption")
	log.Printf("  POST /api/v1/hill/decrypt         - Hill cipher decryption")
	log.Printf("  POST /api/v1/hill/validate        - Key matrix validation")
	log.Printf("  POST /api/v1/hill/crack           - Known plaintext key recovery")
	log.Printf("  GET  /api/v1/health               - Health check")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
