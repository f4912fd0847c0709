package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/coffeemarket/pkg/auth"
	"github.com/ghuser/coffeemarket/pkg/httpx"
	"github.com/ghuser/coffeemarket/pkg/logger"
	pkgvalidator "github.com/ghuser/coffeemarket/pkg/validator"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"roaster@example.com"`
	Password string `json:"password" validate:"required"`
} // @name LoginRequest

// LoginResponse is returned on successful login.
type LoginResponse struct {
	UserID uuid.UUID `json:"user_id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Email  string    `json:"email"   example:"roaster@example.com"`
} // @name LoginResponse

// LoginHandler handles POST /auth/login requests.
type LoginHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewLoginHandler returns a LoginHandler backed by the given session store.
func NewLoginHandler(store sessions.Store, log logger.Logger) *LoginHandler {
	return &LoginHandler{store: store, log: log}
}

// Execute authenticates a user and establishes a session. Credential
// verification is stubbed: any well-formed credentials are accepted and a
// fresh identity is minted.
//
//	@Summary		Login
//	@Description	Authenticates a user and sets the session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	AuthErrorResponse
//	@Failure		500		{object}	AuthErrorResponse
//	@Router			/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	userID := uuid.New()
	if err := auth.SignIn(h.store, w, r, userID); err != nil {
		h.log.ErrorContext(r.Context(), "establish session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "could not establish session")
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{UserID: userID, Email: req.Email})
}
