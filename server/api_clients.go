package repairshopserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oficinapp/repairshop-api/internal/access"
	clienttypes "github.com/oficinapp/repairshop-api/internal/domains/clients/application/types"
	clientdomain "github.com/oficinapp/repairshop-api/internal/domains/clients/domain"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

// ClientsAPI exposes the client directory endpoints.
type ClientsAPI struct {
	facade *access.Facade
}

// NewClientsAPI wires the access facade into the transport layer.
func NewClientsAPI(facade *access.Facade) ClientsAPI {
	return ClientsAPI{facade: facade}
}

type createClientPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type updateClientPayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type clientView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toClientView(stored *projection.Projection[*clientdomain.Client]) clientView {
	client := stored.Entity
	return clientView{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		CreatedAt: stored.Metadata.CreatedAt,
		UpdatedAt: stored.Metadata.UpdatedAt,
	}
}

// Get /api/clients
// List clients
func (api *ClientsAPI) ListClients(c *gin.Context) {
	result, err := api.facade.ListClients(c.Request.Context(), CallerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := make([]clientView, 0, len(result))
	for _, stored := range result {
		views = append(views, toClientView(stored))
	}
	c.JSON(http.StatusOK, views)
}

// Get /api/clients/:id
// Fetch one client
func (api *ClientsAPI) GetClient(c *gin.Context) {
	stored, err := api.facade.GetClient(c.Request.Context(), CallerFromContext(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClientView(stored))
}

// Post /api/clients
// Register a client
func (api *ClientsAPI) CreateClient(c *gin.Context) {
	var payload createClientPayload
	if err := bindStrict(c, &payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := clienttypes.CreateClientInput{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	}
	stored, err := api.facade.CreateClient(c.Request.Context(), CallerFromContext(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toClientView(stored))
}

// Put /api/clients/:id
// Update a client
func (api *ClientsAPI) UpdateClient(c *gin.Context) {
	var payload updateClientPayload
	if err := bindStrict(c, &payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := clienttypes.UpdateClientInput{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	}
	stored, err := api.facade.UpdateClient(c.Request.Context(), CallerFromContext(c), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClientView(stored))
}

// Delete /api/clients/:id
// Remove a client
func (api *ClientsAPI) DeleteClient(c *gin.Context) {
	if err := api.facade.DeleteClient(c.Request.Context(), CallerFromContext(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
