package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tshirtshop/internal/apierror"
	"tshirtshop/internal/domain"
	cartsvc "tshirtshop/internal/service/cart"
)

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func pathInt(c *gin.Context, name string) (int, *apierror.Error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apierror.BadRequest(apierror.CodeFieldInvalid, "The ID is not a number.", name)
	}
	return v, nil
}

func generateCartIDHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cart_id": svc.GenerateCartID()})
	}
}

// addToCartHandler stores a cart line. Re-adding the same product with
// the same attributes is reported as 208 with the existing row.
func addToCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartsvc.AddInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}
		if req.CartID == "" {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "The field cart_id is empty.", "cart_id"))
			return
		}

		item, created, err := svc.AddItem(c.Request.Context(), req)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		status := http.StatusCreated
		if !created {
			status = http.StatusAlreadyReported
		}
		c.JSON(status, item)
	}
}

func listCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := svc.ListItems(c.Request.Context(), c.Param("cart_id"))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

func updateCartItemHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, apiErr := pathInt(c, "item_id")
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}

		item, err := svc.UpdateQuantity(c.Request.Context(), itemID, req.Quantity)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func removeCartItemHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, apiErr := pathInt(c, "item_id")
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		if err := svc.RemoveItem(c.Request.Context(), itemID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, apierror.NotFound(apierror.CodeCartItemNotFound, "Cart item with this ID does not exist.", "item_id"))
				return
			}
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart."})
	}
}

func emptyCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Empty(c.Request.Context(), c.Param("cart_id")); err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, []struct{}{})
	}
}
