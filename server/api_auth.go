package repairshopserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	identitytypes "github.com/oficinapp/repairshop-api/internal/domains/identity/application/types"
	identityports "github.com/oficinapp/repairshop-api/internal/domains/identity/ports"
)

// AuthAPI exposes the login endpoint.
type AuthAPI struct {
	service identityports.Service
}

// NewAuthAPI wires the identity service into the transport layer.
func NewAuthAPI(service identityports.Service) AuthAPI {
	return AuthAPI{service: service}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Identity  identityView `json:"identity"`
}

type identityView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Post /api/auth/login
// Exchange credentials for a session token
func (api *AuthAPI) Login(c *gin.Context) {
	var payload loginPayload
	if err := bindStrict(c, &payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	session, err := api.service.Authenticate(c.Request.Context(), identitytypes.LoginInput{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Identity: identityView{
			ID:    session.Identity.ID,
			Email: session.Identity.Email,
			Role:  string(session.Identity.Role),
		},
	})
}
