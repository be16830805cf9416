package controllers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"store-management/middleware"
	"store-management/models"
	"store-management/store"
	"store-management/utils"
)

// UserController handles portal account requests: registration, login
// and profile lookup for the role-gated front-end portals.
type UserController struct {
	Store  store.UserStore
	Logger *logrus.Logger
}

// NewUserController creates a new UserController.
func NewUserController(s store.Store, logger *logrus.Logger) *UserController {
	return &UserController{Store: s.Users(), Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register handles portal account registration.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "password is required")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.Logger.WithError(err).Error("password hashing failed")
		respondWithError(w, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     req.Role,
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := uc.Store.CreateUser(ctx, &user)
	if err != nil {
		respondWithStoreError(w, uc.Logger, err, "User")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles portal authentication and returns a role-carrying JWT.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds loginRequest
	if err := decodeBody(r, &creds); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := uc.Store.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		uc.Logger.WithError(err).Error("token generation failed")
		respondWithError(w, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"token": token, "role": user.Role})
}

// GetProfile retrieves the authenticated user's profile.
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := uc.Store.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		respondWithStoreError(w, uc.Logger, err, "User")
		return
	}

	user.Password = ""
	respondWithJSON(w, http.StatusOK, user)
}

// GetUsers lists all portal accounts (admin only).
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	users, err := uc.Store.ListUsers(ctx)
	if err != nil {
		respondWithStoreError(w, uc.Logger, err, "User")
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	if users == nil {
		users = []models.User{}
	}
	respondWithJSON(w, http.StatusOK, users)
}
