package main

import (
	_ "polymesh/docs"
	"polymesh/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PolyMesh API
// @version         1.0
// @description     Window mesh quotes, M-Pesa payments and installations for PolyMesh Kenya.

// @contact.name   PolyMesh Support
// @contact.email  support@polymesh.co.ke

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
