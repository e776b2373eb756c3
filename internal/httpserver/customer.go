package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tshirtshop/internal/apierror"
	"tshirtshop/internal/domain"
	customersvc "tshirtshop/internal/service/customer"
	"tshirtshop/internal/token"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	DayPhone *string `json:"day_phone"`
	EvePhone *string `json:"eve_phone"`
	MobPhone *string `json:"mob_phone"`
}

type addressRequest struct {
	Address1         *string `json:"address_1"`
	Address2         *string `json:"address_2"`
	City             *string `json:"city"`
	Region           *string `json:"region"`
	PostalCode       *string `json:"postal_code"`
	Country          *string `json:"country"`
	ShippingRegionID *int    `json:"shipping_region_id"`
}

type creditCardRequest struct {
	CreditCard string `json:"credit_card"`
}

// authResponse is the body returned by every endpoint that hands out an
// access token.
type authResponse struct {
	Customer    domain.Customer `json:"customer"`
	AccessToken string          `json:"accessToken"`
	ExpiresIn   string          `json:"expiresIn"`
}

// publicCustomer strips stored secrets for the wire: the credit card is
// masked down to its last four digits.
func publicCustomer(c *domain.Customer) domain.Customer {
	out := *c
	out.CreditCard = customersvc.MaskCreditCard(out.CreditCard)
	return out
}

func signupHandler(svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}
		if apiErr := checkSignup(req); apiErr != nil {
			respondError(c, apiErr)
			return
		}

		customer, accessToken, err := svc.Signup(c.Request.Context(), customersvc.SignupInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, authResponse{
			Customer:    publicCustomer(customer),
			AccessToken: accessToken,
			ExpiresIn:   token.ExpiresIn,
		})
	}
}

func loginHandler(svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}
		if apiErr := checkLogin(req); apiErr != nil {
			respondError(c, apiErr)
			return
		}

		customer, accessToken, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, authResponse{
			Customer:    publicCustomer(customer),
			AccessToken: accessToken,
			ExpiresIn:   token.ExpiresIn,
		})
	}
}

func profileHandler(svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, err := svc.GetProfile(c.Request.Context(), customerID(c))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, publicCustomer(customer))
	}
}

func updateProfileHandler(svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}
		if req.Email != nil && !emailPattern.MatchString(*req.Email) {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "The email is invalid.", "email"))
			return
		}

		customer, err := svc.UpdateProfile(c.Request.Context(), customerID(c), customersvc.ProfileInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			DayPhone: req.DayPhone,
			EvePhone: req.EvePhone,
			MobPhone: req.MobPhone,
		})
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, publicCustomer(customer))
	}
}

func updateAddressHandler(svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}

		customer, err := svc.UpdateAddress(c.Request.Context(), customerID(c), customersvc.AddressInput{
			Address1:         req.Address1,
			Address2:         req.Address2,
			City:             req.City,
			Region:           req.Region,
			PostalCode:       req.PostalCode,
			Country:          req.Country,
			ShippingRegionID: req.ShippingRegionID,
		})
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, publicCustomer(customer))
	}
}

func updateCreditCardHandler(svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req creditCardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeFieldInvalid, "Request body is not valid JSON.", ""))
			return
		}
		if apiErr := checkCreditCard(req.CreditCard); apiErr != nil {
			respondError(c, apiErr)
			return
		}

		customer, err := svc.UpdateCreditCard(c.Request.Context(), customerID(c), req.CreditCard)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, publicCustomer(customer))
	}
}
