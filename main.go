package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/dewrapsquare/dewrap-api/initializers"
	"github.com/dewrapsquare/dewrap-api/routes"
	"github.com/dewrapsquare/dewrap-api/services"
	"github.com/dewrapsquare/dewrap-api/workers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	initializers.LoadEnv()

	db, err := initializers.ConnectToDB()
	if err != nil {
		log.Fatal(err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal(err)
	}

	carts := services.NewCartService()
	recovery := services.NewRecoveryService(services.NewGormRecoverySlot(db))
	gateway := services.NewPaystackService()
	whatsapp := services.NewWhatsAppService()
	orders := services.NewOrderService(carts, recovery, gateway, whatsapp)

	cleanup := workers.NewCleanupWorker(carts, recovery)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cleanup.Start(ctx)

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5500"
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL, "https://www.dewrapsquare.com"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.MenuRoutes(server, db)
	routes.CartRoutes(server, carts)
	routes.OrderRoutes(server, orders)

	server.Run()
}
