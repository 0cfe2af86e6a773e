// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"lumina-store/controllers"
	"lumina-store/routes"
	"lumina-store/stores"
	"lumina-store/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("ACCESS_TOKEN_SECRET"))

	// Initialize EmailService (nil when unconfigured)
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize stores
	userStore := stores.NewMongoUserStore(client)
	productStore := stores.NewMongoProductStore(client)
	orderStore := stores.NewMongoOrderStore(client)
	paymentStore := stores.NewMongoPaymentStore(client)

	// Initialize controllers
	userController := controllers.NewUserController(userStore)
	productController := controllers.NewProductController(productStore)
	orderController := controllers.NewOrderController(orderStore)
	paymentController := controllers.NewPaymentController(paymentStore, orderStore, utils.NewStripeGateway(), emailService)
	statsController := controllers.NewStatsController(userStore, productStore, paymentStore)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userStore, userController, productController, orderController, paymentController, statsController)

	// CORS for browser clients, plus access logging
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	handler := handlers.LoggingHandler(os.Stdout, cors(router))

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
