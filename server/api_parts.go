package repairshopserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oficinapp/repairshop-api/internal/access"
	catalogtypes "github.com/oficinapp/repairshop-api/internal/domains/catalog/application/types"
	catalogdomain "github.com/oficinapp/repairshop-api/internal/domains/catalog/domain"
	"github.com/oficinapp/repairshop-api/internal/shared/projection"
)

// PartsAPI exposes the catalog endpoints.
type PartsAPI struct {
	facade *access.Facade
}

// NewPartsAPI wires the access facade into the transport layer.
func NewPartsAPI(facade *access.Facade) PartsAPI {
	return PartsAPI{facade: facade}
}

type createPartPayload struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	UnitPrice     float64 `json:"unitPrice"`
	StockQuantity int     `json:"stockQuantity"`
	Description   string  `json:"description"`
}

type updatePartPayload struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	UnitPrice     *float64 `json:"unitPrice"`
	StockQuantity *int     `json:"stockQuantity"`
	Description   *string  `json:"description"`
}

type partView struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	UnitPrice     float64   `json:"unitPrice"`
	StockQuantity int       `json:"stockQuantity"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toPartView(stored *projection.Projection[*catalogdomain.Part]) partView {
	part := stored.Entity
	return partView{
		ID:            part.ID,
		Name:          part.Name,
		Category:      part.Category,
		UnitPrice:     part.UnitPrice,
		StockQuantity: part.StockQuantity,
		Description:   part.Description,
		CreatedAt:     stored.Metadata.CreatedAt,
		UpdatedAt:     stored.Metadata.UpdatedAt,
	}
}

// Get /api/parts
// List catalog parts
func (api *PartsAPI) ListParts(c *gin.Context) {
	result, err := api.facade.ListParts(c.Request.Context(), CallerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := make([]partView, 0, len(result))
	for _, stored := range result {
		views = append(views, toPartView(stored))
	}
	c.JSON(http.StatusOK, views)
}

// Get /api/parts/:id
// Fetch one part
func (api *PartsAPI) GetPart(c *gin.Context) {
	stored, err := api.facade.GetPart(c.Request.Context(), CallerFromContext(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPartView(stored))
}

// Post /api/parts
// Create a part
func (api *PartsAPI) CreatePart(c *gin.Context) {
	var payload createPartPayload
	if err := bindStrict(c, &payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := catalogtypes.CreatePartInput{
		Name:          payload.Name,
		Category:      payload.Category,
		UnitPrice:     payload.UnitPrice,
		StockQuantity: payload.StockQuantity,
		Description:   payload.Description,
	}
	stored, err := api.facade.CreatePart(c.Request.Context(), CallerFromContext(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPartView(stored))
}

// Put /api/parts/:id
// Update a part
func (api *PartsAPI) UpdatePart(c *gin.Context) {
	var payload updatePartPayload
	if err := bindStrict(c, &payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := catalogtypes.UpdatePartInput{
		Name:          payload.Name,
		Category:      payload.Category,
		UnitPrice:     payload.UnitPrice,
		StockQuantity: payload.StockQuantity,
		Description:   payload.Description,
	}
	stored, err := api.facade.UpdatePart(c.Request.Context(), CallerFromContext(c), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPartView(stored))
}

// Delete /api/parts/:id
// Remove a part
func (api *PartsAPI) DeletePart(c *gin.Context) {
	if err := api.facade.DeletePart(c.Request.Context(), CallerFromContext(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
