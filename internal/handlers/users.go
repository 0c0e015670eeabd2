package handlers

//go:generate mockgen -source=users.go -destination=mock_users_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// UserCreator registers users.
type UserCreator interface {
	Create(ctx context.Context, username, email string) (*models.User, error)
}

// UserLister lists users with their visit counts.
type UserLister interface {
	List(ctx context.Context) ([]models.UserView, error)
}

// UserGetter returns a single user by id.
type UserGetter interface {
	Get(ctx context.Context, id string) (*models.UserView, error)
}

// UserVisitLister lists the visits of a user.
type UserVisitLister interface {
	Visits(ctx context.Context, id string) ([]models.UserVisit, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// default: buzz
	Username string `json:"username"`

	// Email, unique across users
	// required: true
	// default: buzz@gatech.edu
	Email string `json:"email"`
}

// CreateUserResponse represents a newly created user
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	User *models.User `json:"user"`
}

// UserResponse represents a single user with its visit count
// swagger:model UserResponse
type UserResponse struct {
	User *models.UserView `json:"user"`
}

// UsersResponse represents the user list
// swagger:model UsersResponse
type UsersResponse struct {
	Users []models.UserView `json:"users"`
}

// UserVisitsResponse represents the visits of a user
// swagger:model UserVisitsResponse
type UserVisitsResponse struct {
	Visits []models.UserVisit `json:"visits"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create user
// @Description Creates a user. Emails are unique.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} handlers.CreateUserResponse "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Username and email required / Email exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Username and email required")
			return
		}

		user, err := svc.Create(r.Context(), req.Username, req.Email)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, CreateUserResponse{User: user})
	}
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns every user with visit_count
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UsersResponse "Users"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, UsersResponse{Users: users})
	}
}

// NewGetUserHandler returns an HTTP handler for a single user.
// @Summary Get user
// @Description Returns a user with visit_count
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserResponse "User"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}

// NewUserVisitsHandler returns an HTTP handler listing the visits of a user.
// @Summary List user visits
// @Description Returns the visits of a user joined with their landmarks. Unknown ids yield an empty list.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserVisitsResponse "Visits"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id}/visits [get]
func NewUserVisitsHandler(svc UserVisitLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visits, err := svc.Visits(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, UserVisitsResponse{Visits: visits})
	}
}
