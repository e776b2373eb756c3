package httpserver

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires all shop routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.Customers == nil || deps.Cart == nil || deps.Orders == nil ||
		deps.Reviews == nil || deps.Products == nil || deps.Tokens == nil {
		return nil, fmt.Errorf("httpserver: missing dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), requestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	for _, origin := range deps.CORSAllowOrigins {
		if origin != "*" && origin != "" {
			corsCfg.AllowAllOrigins = false
		}
	}
	if !corsCfg.AllowAllOrigins {
		corsCfg.AllowOrigins = deps.CORSAllowOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "token")
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/customers", signupHandler(deps.Customers, logger))
	router.POST("/customers/login", loginHandler(deps.Customers, logger))

	for _, provider := range deps.Providers {
		router.GET("/customers/"+provider.Name(), oauthStartHandler(provider, logger))
		router.GET("/auth/"+provider.Name()+"/redirect", oauthRedirectHandler(provider, deps.Customers, logger))
	}

	router.GET("/shoppingcart/generateUniqueId", generateCartIDHandler(deps.Cart))
	router.POST("/shoppingcart/add", addToCartHandler(deps.Cart, logger))
	router.GET("/shoppingcart/:cart_id", listCartHandler(deps.Cart, logger))
	router.PUT("/shoppingcart/update/:item_id", updateCartItemHandler(deps.Cart, logger))
	router.DELETE("/shoppingcart/empty/:cart_id", emptyCartHandler(deps.Cart, logger))
	router.DELETE("/shoppingcart/removeProduct/:item_id", removeCartItemHandler(deps.Cart, logger))

	router.GET("/products", listProductsHandler(deps.Products, logger))
	router.GET("/products/:product_id", getProductHandler(deps.Products, logger))
	router.GET("/products/:product_id/reviews", listReviewsHandler(deps.Reviews, logger))

	authed := router.Group("/", tokenPresent(), tokenValid(deps.Tokens))
	authed.GET("/customers", profileHandler(deps.Customers, logger))
	authed.PUT("/customer", updateProfileHandler(deps.Customers, logger))
	authed.PUT("/customer/address", updateAddressHandler(deps.Customers, logger))
	authed.PUT("/customer/creditCard", updateCreditCardHandler(deps.Customers, logger))
	authed.POST("/orders", createOrderHandler(deps.Orders, logger))
	authed.POST("/orders/:order_id/details", createOrderDetailsHandler(deps.Orders, logger))
	authed.GET("/orders/inCustomer", listOrdersHandler(deps.Orders, logger))
	authed.GET("/orders/:order_id", orderSummaryHandler(deps.Orders, logger))
	authed.POST("/products/:product_id/reviews", postReviewHandler(deps.Reviews, logger))

	return router, nil
}
