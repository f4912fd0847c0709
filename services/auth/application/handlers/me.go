package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/coffeemarket/pkg/auth"
	"github.com/ghuser/coffeemarket/pkg/httpx"
)

// MeResponse is returned by GET /auth/me.
type MeResponse struct {
	UserID uuid.UUID `json:"user_id" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name MeResponse

// MeHandler handles GET /auth/me requests.
type MeHandler struct{}

// NewMeHandler returns a MeHandler.
func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// Execute returns the authenticated user's identity. Runs behind RequireAuth.
//
//	@Summary		Current user
//	@Description	Returns the identity bound to the session
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	MeResponse
//	@Failure		401	{object}	AuthErrorResponse
//	@Router			/auth/me [get]
func (h *MeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	httpx.JSON(w, http.StatusOK, MeResponse{UserID: userID})
}
