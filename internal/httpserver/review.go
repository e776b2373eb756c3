package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tshirtshop/internal/apierror"
	reviewsvc "tshirtshop/internal/service/review"
)

func postReviewHandler(svc ReviewService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, apiErr := pathInt(c, "product_id")
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		var req reviewsvc.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}

		review, err := svc.Upsert(c.Request.Context(), customerID(c), productID, req)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

func listReviewsHandler(svc ReviewService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, apiErr := pathInt(c, "product_id")
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		reviews, err := svc.ListByProduct(c.Request.Context(), productID)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
