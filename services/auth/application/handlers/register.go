// Package handlers holds the auth HTTP handlers. Account storage is not
// implemented yet; register and login are stubs that mint identities so the
// session flow and the rest of the API can be exercised end to end.
package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/coffeemarket/pkg/httpx"
	pkgvalidator "github.com/ghuser/coffeemarket/pkg/validator"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"roaster@example.com"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Name     string `json:"name"     validate:"required,min=2,max=255" example:"Ada Roaster"`
} // @name RegisterRequest

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Email     string    `json:"email"      example:"roaster@example.com"`
	Name      string    `json:"name"       example:"Ada Roaster"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name RegisterResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"authentication required"`
} // @name AuthErrorResponse

// RegisterHandler handles POST /auth/register requests.
type RegisterHandler struct{}

// NewRegisterHandler returns a RegisterHandler.
func NewRegisterHandler() *RegisterHandler {
	return &RegisterHandler{}
}

// Execute registers a new account.
//
//	@Summary		Register
//	@Description	Registers a new account
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	RegisterResponse
//	@Failure		400		{object}	AuthErrorResponse
//	@Router			/auth/register [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	httpx.JSON(w, http.StatusCreated, RegisterResponse{
		ID:        uuid.New(),
		Email:     req.Email,
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	})
}
