package repairshopserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oficinapp/repairshop-api/internal/access"
	orderstypes "github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
)

// OrdersAPI exposes the service order endpoints.
type OrdersAPI struct {
	facade *access.Facade
}

// NewOrdersAPI wires the access facade into the transport layer.
func NewOrdersAPI(facade *access.Facade) OrdersAPI {
	return OrdersAPI{facade: facade}
}

type lineItemPayload struct {
	PartID   string `json:"partId"`
	Quantity int    `json:"quantity"`
}

type createOrderPayload struct {
	ClientID    string            `json:"clientId"`
	LineItems   []lineItemPayload `json:"lineItems"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
}

type updateOrderPayload struct {
	ClientID    *string            `json:"clientId"`
	LineItems   *[]lineItemPayload `json:"lineItems"`
	Description *string            `json:"description"`
	Status      *string            `json:"status"`
}

type clientSummaryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type partSummaryView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unitPrice"`
}

type lineItemView struct {
	PartID   string           `json:"partId"`
	Quantity int              `json:"quantity"`
	Part     *partSummaryView `json:"part"`
}

type orderView struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"clientId"`
	Client      *clientSummaryView `json:"client"`
	LineItems   []lineItemView     `json:"lineItems"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func toOrderView(view *orderstypes.OrderView) orderView {
	out := orderView{
		ID:          view.Order.ID,
		ClientID:    view.Order.ClientID,
		Description: view.Order.Description,
		Status:      string(view.Order.Status),
		CreatedAt:   view.Metadata.CreatedAt,
		UpdatedAt:   view.Metadata.UpdatedAt,
	}
	if view.Client != nil {
		out.Client = &clientSummaryView{
			ID:    view.Client.ID,
			Name:  view.Client.Name,
			Email: view.Client.Email,
			Phone: view.Client.Phone,
		}
	}
	out.LineItems = make([]lineItemView, 0, len(view.Lines))
	for _, line := range view.Lines {
		item := lineItemView{PartID: line.PartID, Quantity: line.Quantity}
		if line.Part != nil {
			item.Part = &partSummaryView{
				ID:        line.Part.ID,
				Name:      line.Part.Name,
				Category:  line.Part.Category,
				UnitPrice: line.Part.UnitPrice,
			}
		}
		out.LineItems = append(out.LineItems, item)
	}
	return out
}

func toLineItemInputs(payload []lineItemPayload) []orderstypes.LineItemInput {
	items := make([]orderstypes.LineItemInput, 0, len(payload))
	for _, item := range payload {
		items = append(items, orderstypes.LineItemInput{PartID: item.PartID, Quantity: item.Quantity})
	}
	return items
}

// Get /api/orders
// List orders visible to the caller
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	result, err := api.facade.ListOrders(c.Request.Context(), CallerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := make([]orderView, 0, len(result))
	for _, view := range result {
		views = append(views, toOrderView(view))
	}
	c.JSON(http.StatusOK, views)
}

// Get /api/orders/:id
// Fetch one order with references resolved
func (api *OrdersAPI) GetOrder(c *gin.Context) {
	view, err := api.facade.GetOrder(c.Request.Context(), CallerFromContext(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(view))
}

// Post /api/orders
// Open a service order
func (api *OrdersAPI) CreateOrder(c *gin.Context) {
	var payload createOrderPayload
	if err := bindStrict(c, &payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := orderstypes.CreateOrderInput{
		ClientID:    payload.ClientID,
		LineItems:   toLineItemInputs(payload.LineItems),
		Description: payload.Description,
		Status:      payload.Status,
	}
	view, err := api.facade.CreateOrder(c.Request.Context(), CallerFromContext(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderView(view))
}

// Put /api/orders/:id
// Update a service order
func (api *OrdersAPI) UpdateOrder(c *gin.Context) {
	var payload updateOrderPayload
	if err := bindStrict(c, &payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := orderstypes.UpdateOrderInput{
		ClientID:    payload.ClientID,
		Description: payload.Description,
		Status:      payload.Status,
	}
	if payload.LineItems != nil {
		items := toLineItemInputs(*payload.LineItems)
		input.LineItems = &items
	}
	view, err := api.facade.UpdateOrder(c.Request.Context(), CallerFromContext(c), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(view))
}

// Delete /api/orders/:id
// Remove a service order
func (api *OrdersAPI) DeleteOrder(c *gin.Context) {
	if err := api.facade.DeleteOrder(c.Request.Context(), CallerFromContext(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
