package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
	"github.com/sbilibin2017/lightbnb-gateway/internal/validation"
)

// UserRegisterer defines the interface that the registration service must implement.
type UserRegisterer interface {
	Register(ctx context.Context, user models.NewUser) (*models.User, error)
}

// UserGetter defines the interface that the user lookup service must implement.
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Name
	// required: true
	// default: Jane Doe
	Name string `json:"name" validate:"required,max=255"`

	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

func (r RegisterRequest) Validate() error {
	return validation.Struct(r)
}

// NewRegisterUserHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user. Emails are unique regardless of case.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} models.User "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /users [post]
func NewRegisterUserHandler(svc UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), models.NewUser{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewGetUserHandler returns an HTTP handler that looks a user up by id.
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeBadRequest(w, "Invalid id")
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewFindUserHandler returns an HTTP handler that looks a user up by email.
// @Summary Find a user by email
// @Description Email comparison ignores case.
// @Tags users
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Missing email"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users [get]
func NewFindUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			writeBadRequest(w, "Email is required")
			return
		}

		user, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
