package controllers

import (
	"context"
	"net/http"
	"time"

	"lumina-store/models"
	"lumina-store/stores"
)

// StatsController serves the aggregate reporting endpoints
type StatsController struct {
	Users    stores.UserStore
	Products stores.ProductStore
	Payments stores.PaymentStore
}

// NewStatsController creates a new StatsController
func NewStatsController(users stores.UserStore, products stores.ProductStore, payments stores.PaymentStore) *StatsController {
	return &StatsController{
		Users:    users,
		Products: products,
		Payments: payments,
	}
}

// AdminStatistics returns collection counts and total revenue (Admin only)
func (sc *StatsController) AdminStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	users, err := sc.Users.Count(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error computing statistics")
		return
	}
	products, err := sc.Products.Count(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error computing statistics")
		return
	}
	payments, err := sc.Payments.Count(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error computing statistics")
		return
	}
	revenue, err := sc.Payments.TotalRevenue(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error computing statistics")
		return
	}

	respondJSON(w, http.StatusOK, models.AdminStats{
		Users:    users,
		Products: products,
		Payments: payments,
		Revenue:  revenue,
	})
}

// OrderStatistics returns the per-category order and revenue breakdown
func (sc *StatsController) OrderStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	stats, err := sc.Payments.CategoryBreakdown(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error computing statistics")
		return
	}
	if stats == nil {
		stats = []models.CategoryStat{}
	}

	respondJSON(w, http.StatusOK, stats)
}
