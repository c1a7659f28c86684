package repairshopserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinapp/repairshop-api/internal/access"
	catalogapp "github.com/oficinapp/repairshop-api/internal/domains/catalog/application"
	catalogports "github.com/oficinapp/repairshop-api/internal/domains/catalog/ports"
	clientsapp "github.com/oficinapp/repairshop-api/internal/domains/clients/application"
	clientports "github.com/oficinapp/repairshop-api/internal/domains/clients/ports"
	identityports "github.com/oficinapp/repairshop-api/internal/domains/identity/ports"
	ordersapp "github.com/oficinapp/repairshop-api/internal/domains/orders/application"
	ordersports "github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
	apierrors "github.com/oficinapp/repairshop-api/internal/shared/errors"
)

// responder maps the service error taxonomy onto RFC 7807 responses:
// authentication failures to 401, permission denials to 403, missing
// resources to 404, rejected input to 400, everything else to 500.
var responder = apierrors.NewChainedResponder("",
	func(err error) (apierrors.ProblemDetail, bool) {
		if errors.Is(err, access.ErrUnauthenticated) || errors.Is(err, identityports.ErrInvalidToken) {
			return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
		}
		return apierrors.ProblemDetail{}, false
	},
	func(err error) (apierrors.ProblemDetail, bool) {
		if errors.Is(err, identityports.ErrInvalidCredentials) {
			return apierrors.ErrUnauthorized.WithDetail("invalid credentials"), true
		}
		return apierrors.ProblemDetail{}, false
	},
	func(err error) (apierrors.ProblemDetail, bool) {
		if errors.Is(err, access.ErrForbidden) {
			return apierrors.ErrForbidden.WithDetail(err.Error()), true
		}
		return apierrors.ProblemDetail{}, false
	},
	func(err error) (apierrors.ProblemDetail, bool) {
		if errors.Is(err, catalogports.ErrNotFound) || errors.Is(err, clientports.ErrNotFound) || errors.Is(err, ordersports.ErrNotFound) {
			return apierrors.ErrNotFound.WithDetail(err.Error()), true
		}
		return apierrors.ProblemDetail{}, false
	},
	func(err error) (apierrors.ProblemDetail, bool) {
		if errors.Is(err, catalogapp.ErrInvalidInput) || errors.Is(err, clientsapp.ErrInvalidInput) || errors.Is(err, ordersapp.ErrInvalidInput) {
			return apierrors.ErrValidation.WithDetail(err.Error()), true
		}
		return apierrors.ProblemDetail{}, false
	},
)

func respondServiceError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}

func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	case http.StatusUnauthorized:
		problem = apierrors.ErrUnauthorized.WithDetail(err.Error())
	case http.StatusForbidden:
		problem = apierrors.ErrForbidden.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	apierrors.Respond(c, problem)
}
