package httpserver

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"tshirtshop/internal/apierror"
	"tshirtshop/internal/domain"
	cartsvc "tshirtshop/internal/service/cart"
	customersvc "tshirtshop/internal/service/customer"
	ordersvc "tshirtshop/internal/service/order"
	reviewsvc "tshirtshop/internal/service/review"
)

// errorEnvelope is the body of every failing response.
type errorEnvelope struct {
	Error *apierror.Error `json:"error"`
}

func respondError(c *gin.Context, err *apierror.Error) {
	c.AbortWithStatusJSON(err.Status, errorEnvelope{Error: err})
}

// respondServiceError translates service-layer sentinels into the wire
// envelope. Anything unrecognized is logged and reported as a 500.
func respondServiceError(c *gin.Context, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, customersvc.ErrEmailExists):
		respondError(c, apierror.Conflict(apierror.CodeEmailExists, "The email already exists.", "email"))
	case errors.Is(err, customersvc.ErrEmailNotFound):
		respondError(c, apierror.NotFound(apierror.CodeEmailNotFound, "The email doesn't exist.", "email"))
	case errors.Is(err, customersvc.ErrInvalidCredentials):
		respondError(c, apierror.Unauthorized(apierror.CodeInvalidCredentials, "Email or Password is invalid.", ""))
	case errors.Is(err, cartsvc.ErrProductNotFound), errors.Is(err, reviewsvc.ErrProductNotFound):
		respondError(c, apierror.NotFound(apierror.CodeFieldInvalid, "Product with this ID does not exist.", "product_id"))
	case errors.Is(err, cartsvc.ErrInvalidQuantity):
		respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Quantity must be a positive integer.", "quantity"))
	case errors.Is(err, ordersvc.ErrInvalidTotalAmount):
		respondError(c, apierror.BadRequest(apierror.CodeOrderAmount, "Total amount must be a non-negative number.", "total_amount"))
	case errors.Is(err, ordersvc.ErrInvalidUnitCost):
		respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Unit cost must be a non-negative number.", "unit_cost"))
	case errors.Is(err, ordersvc.ErrNotOwner):
		respondError(c, apierror.NotFound(apierror.CodeOrderNotFound, "Order with this ID does not exist.", "order_id"))
	case errors.Is(err, reviewsvc.ErrInvalidRating):
		respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Rating must be an integer between 1 and 5.", "rating"))
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, apierror.NotFound(apierror.CodeFieldInvalid, "Record with this ID does not exist.", "id"))
	default:
		logger.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, apierror.Internal())
	}
}
