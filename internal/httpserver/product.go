package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultProductLimit = 20
	maxProductLimit     = 100
)

func getProductHandler(catalog ProductCatalog, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, apiErr := pathInt(c, "product_id")
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		product, err := catalog.GetByID(c.Request.Context(), productID)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func listProductsHandler(catalog ProductCatalog, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultProductLimit)))
		if err != nil || limit <= 0 || limit > maxProductLimit {
			limit = defaultProductLimit
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		products, err := catalog.List(c.Request.Context(), limit, offset)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
