package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tshirtshop/internal/apierror"
	ordersvc "tshirtshop/internal/service/order"
)

type createDetailsRequest struct {
	Items []ordersvc.DetailInput `json:"order_items"`
}

// createOrderHandler find-or-creates the customer's single open order.
func createOrderHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ordersvc.CreateInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}

		order, err := svc.Create(c.Request.Context(), customerID(c), req)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order_id": order.ID})
	}
}

func createOrderDetailsHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, apiErr := pathInt(c, "order_id")
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		var req createDetailsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}
		if len(req.Items) == 0 {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "The field order_items is empty.", "order_items"))
			return
		}

		details, err := svc.CreateDetails(c.Request.Context(), customerID(c), orderID, req.Items)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, details)
	}
}

func listOrdersHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListForCustomer(c.Request.Context(), customerID(c))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// orderSummaryHandler returns an order's detail rows, but only to the
// customer who placed it.
func orderSummaryHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, apiErr := pathInt(c, "order_id")
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}

		summary, err := svc.GetSummary(c.Request.Context(), customerID(c), orderID)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
