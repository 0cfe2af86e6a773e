package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"lumina-store/middleware"
	"lumina-store/models"
	"lumina-store/stores"
	"lumina-store/utils"

	"github.com/gorilla/mux"
)

// UserController handles identity and token requests
type UserController struct {
	Users stores.UserStore
}

// NewUserController creates a new UserController
func NewUserController(users stores.UserStore) *UserController {
	return &UserController{
		Users: users,
	}
}

// IssueToken signs a session token for the submitted identity claim
func (uc *UserController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var claim struct {
		Email string `json:"email"`
	}
	err := json.NewDecoder(r.Body).Decode(&claim)
	if err != nil || claim.Email == "" {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	token, err := utils.GenerateToken(claim.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error generating token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ListUsers retrieves all identities (Admin only)
func (uc *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	users, err := uc.Users.List(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error fetching users")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	respondJSON(w, http.StatusOK, users)
}

// Register stores a new identity unless the email is already registered
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	err := json.NewDecoder(r.Body).Decode(&user)
	if err != nil || user.Email == "" {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err = uc.Users.FindByEmail(ctx, user.Email)
	if err == nil {
		respondJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
		return
	}
	if !errors.Is(err, stores.ErrNotFound) {
		respondError(w, http.StatusInternalServerError, "database error")
		return
	}

	if user.Role == "" {
		user.Role = "user"
	}
	id, err := uc.Users.Insert(ctx, user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error creating user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// CheckAdmin reports whether the given email holds the admin role. A path
// email that differs from the token email answers {admin:false} without a
// store read.
func (uc *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	email := mux.Vars(r)["email"]
	if claims.Email != email {
		respondJSON(w, http.StatusOK, map[string]bool{"admin": false})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Users.FindByEmail(ctx, email)
	if errors.Is(err, stores.ErrNotFound) {
		respondJSON(w, http.StatusOK, map[string]bool{"admin": false})
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "database error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"admin": user.Role == "admin"})
}

// MakeAdmin elevates an identity to the admin role (Admin only)
func (uc *UserController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	modified, err := uc.Users.PromoteToAdmin(ctx, id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

// DeleteUser removes an identity (Admin only)
func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deleted, err := uc.Users.Delete(ctx, id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
