// routes/routes.go
package routes

import (
	"net/http"

	"lumina-store/controllers"
	"lumina-store/middleware"
	"lumina-store/stores"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, users stores.UserStore, userController *controllers.UserController, productController *controllers.ProductController, orderController *controllers.OrderController, paymentController *controllers.PaymentController, statsController *controllers.StatsController) {
	// Public routes
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello luminaStore!"))
	}).Methods("GET")
	router.HandleFunc("/jwt", userController.IssueToken).Methods("POST")
	router.HandleFunc("/user", userController.Register).Methods("POST")
	router.HandleFunc("/clothes", productController.GetProducts).Methods("GET")
	router.HandleFunc("/clothes/category/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/clothes/category/{id}", productController.UpdateProduct).Methods("PATCH")
	router.HandleFunc("/order", orderController.PlaceOrder).Methods("POST")
	router.HandleFunc("/order/{id}", orderController.DeleteOrder).Methods("DELETE")
	router.HandleFunc("/order-statistics", statsController.OrderStatistics).Methods("GET")

	// Authenticated routes
	authed := router.NewRoute().Subrouter()
	authed.Use(middleware.AuthMiddleware)
	authed.HandleFunc("/user/admin/{email}", userController.CheckAdmin).Methods("GET")
	authed.HandleFunc("/order", orderController.GetOrders).Methods("GET")
	authed.HandleFunc("/create-payment-intent", paymentController.CreatePaymentIntent).Methods("POST")
	authed.HandleFunc("/payment/{email}", paymentController.GetPayments).Methods("GET")
	authed.HandleFunc("/payment", paymentController.Settle).Methods("POST")

	// Admin routes
	admin := router.NewRoute().Subrouter()
	admin.Use(middleware.AuthMiddleware, middleware.RequireAdmin(users))
	admin.HandleFunc("/user", userController.ListUsers).Methods("GET")
	admin.HandleFunc("/user/admin/{id}", userController.MakeAdmin).Methods("PATCH")
	admin.HandleFunc("/user/{id}", userController.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/clothes", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/clothes/{id}", productController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/admin-statistics", statsController.AdminStatistics).Methods("GET")
}
