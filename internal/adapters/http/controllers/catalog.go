package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/glowin/internal/adapters/http/handlers"
	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/service"
)

type CatalogController struct {
	productService *service.ProductService
}

func NewCatalogController(productService *service.ProductService) *CatalogController {
	return &CatalogController{productService: productService}
}

// List godoc
// @Summary     List catalog products
// @Description Returns the catalog, filtered by a case-insensitive match on the product name
// @Tags        catalog
// @Produce     json
// @Param       q   query    string false "Name filter"
// @Success     200 {array}  ProductResponse
// @Router      /api/v1/catalog [get]
func (cc *CatalogController) List(c *gin.Context) {
	products := cc.productService.Search(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, NewProductResponses(products))
}

// Get godoc
// @Summary     Get product by name
// @Description Returns a single catalog product
// @Tags        catalog
// @Produce     json
// @Param       name path     string true "Product name"
// @Success     200  {object} ProductResponse
// @Failure     404  {object} handlers.ErrorResponse
// @Router      /api/v1/catalog/{name} [get]
func (cc *CatalogController) Get(c *gin.Context) {
	product, err := cc.productService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(*product))
}

// PaymentMethods godoc
// @Summary     List payment methods
// @Description Returns the selectable payment methods and the suggested promo codes
// @Tags        catalog
// @Produce     json
// @Success     200 {object} PaymentMethodsResponse
// @Router      /api/v1/payment-methods [get]
func (cc *CatalogController) PaymentMethods(c *gin.Context) {
	methods := cc.productService.PaymentMethods(c.Request.Context())
	response := PaymentMethodsResponse{
		Methods:    make([]PaymentMethodResponse, len(methods)),
		PromoCodes: []string{},
	}
	for i, m := range methods {
		response.Methods[i] = PaymentMethodResponse{
			Code:         string(m.Code),
			Title:        m.Title,
			Providers:    m.Providers,
			Icon:         NewIconResponse(m.Icon),
			RequiresCard: m.Code.RequiresCard(),
		}
	}
	for _, code := range domain.SuggestedPromoCodes() {
		response.PromoCodes = append(response.PromoCodes, string(code))
	}
	c.JSON(http.StatusOK, response)
}
