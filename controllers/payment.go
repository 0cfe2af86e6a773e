package controllers

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"time"

	"lumina-store/middleware"
	"lumina-store/models"
	"lumina-store/stores"
	"lumina-store/utils"

	"github.com/gorilla/mux"
)

// PaymentController handles payment intents and settlement
type PaymentController struct {
	Payments     stores.PaymentStore
	Orders       stores.OrderStore
	Gateway      utils.PaymentGateway
	EmailService *utils.EmailService
}

// NewPaymentController creates a new PaymentController. emailService may be
// nil when mail is disabled.
func NewPaymentController(payments stores.PaymentStore, orders stores.OrderStore, gateway utils.PaymentGateway, emailService *utils.EmailService) *PaymentController {
	return &PaymentController{
		Payments:     payments,
		Orders:       orders,
		Gateway:      gateway,
		EmailService: emailService,
	}
}

// CreatePaymentIntent requests a gateway payment intent for the submitted
// price and returns the client secret. The amount is converted to minor
// currency units.
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || body.Price <= 0 {
		respondError(w, http.StatusBadRequest, "invalid price")
		return
	}

	amount := int64(math.Round(body.Price * 100))
	clientSecret, err := pc.Gateway.CreateIntent(amount)
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		respondError(w, http.StatusInternalServerError, "error creating payment intent")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// Settle records a payment and clears the orders it covers. There is no
// compensating transaction: a failed order cleanup after a recorded payment
// surfaces as a 500 carrying the payment id.
func (pc *PaymentController) Settle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	var payment models.Payment
	err := json.NewDecoder(r.Body).Decode(&payment)
	if err != nil || payment.Email == "" {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if payment.Email != claims.Email {
		respondError(w, http.StatusForbidden, "forbidden access")
		return
	}
	payment.Date = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	insertedID, err := pc.Payments.Insert(ctx, payment)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error recording payment")
		return
	}

	deleted, err := pc.Orders.DeleteByIDs(ctx, payment.OrderProducts)
	if err != nil {
		log.Printf("Payment %s recorded but order cleanup failed: %v", insertedID, err)
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":      true,
			"message":    "payment recorded but orders not cleared",
			"insertedId": insertedID,
		})
		return
	}

	if pc.EmailService != nil {
		go func(email string, price float64, count int) {
			if err := pc.EmailService.SendPaymentConfirmationEmail(email, price, count); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(payment.Email, payment.Price, len(payment.OrderProducts))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"insertedId":   insertedID,
		"deletedCount": deleted,
	})
}

// GetPayments lists the payments recorded for an email. The path email must
// match the token email.
func (pc *PaymentController) GetPayments(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	email := mux.Vars(r)["email"]
	if email != claims.Email {
		respondError(w, http.StatusForbidden, "forbidden access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payments, err := pc.Payments.ListByEmail(ctx, email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error fetching payments")
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}

	respondJSON(w, http.StatusOK, payments)
}
