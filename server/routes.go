package repairshopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityports "github.com/oficinapp/repairshop-api/internal/domains/identity/ports"
)

// ApiHandleFunctions groups the handler sets served by the router.
type ApiHandleFunctions struct {
	AuthAPI    AuthAPI
	PartsAPI   PartsAPI
	ClientsAPI ClientsAPI
	OrdersAPI  OrdersAPI
}

// NewRouter builds the gin engine with the login endpoint open and every
// other route behind the bearer-token middleware. Extra middlewares (otelgin,
// recovery customization) are appended before the routes are bound.
func NewRouter(handlers ApiHandleFunctions, identity identityports.Service, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	for _, middleware := range middlewares {
		if middleware != nil {
			router.Use(middleware)
		}
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/auth/login", handlers.AuthAPI.Login)

	secured := api.Group("")
	secured.Use(AuthMiddleware(identity))

	secured.GET("/parts", handlers.PartsAPI.ListParts)
	secured.POST("/parts", handlers.PartsAPI.CreatePart)
	secured.GET("/parts/:id", handlers.PartsAPI.GetPart)
	secured.PUT("/parts/:id", handlers.PartsAPI.UpdatePart)
	secured.DELETE("/parts/:id", handlers.PartsAPI.DeletePart)

	secured.GET("/clients", handlers.ClientsAPI.ListClients)
	secured.POST("/clients", handlers.ClientsAPI.CreateClient)
	secured.GET("/clients/:id", handlers.ClientsAPI.GetClient)
	secured.PUT("/clients/:id", handlers.ClientsAPI.UpdateClient)
	secured.DELETE("/clients/:id", handlers.ClientsAPI.DeleteClient)

	secured.GET("/orders", handlers.OrdersAPI.ListOrders)
	secured.POST("/orders", handlers.OrdersAPI.CreateOrder)
	secured.GET("/orders/:id", handlers.OrdersAPI.GetOrder)
	secured.PUT("/orders/:id", handlers.OrdersAPI.UpdateOrder)
	secured.DELETE("/orders/:id", handlers.OrdersAPI.DeleteOrder)

	return router
}
