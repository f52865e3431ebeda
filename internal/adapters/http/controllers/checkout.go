package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/glowin/internal/adapters/http/handlers"
	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/dto"
	"github.com/rafaelleal24/glowin/internal/core/service"
	"github.com/rafaelleal24/glowin/internal/core/serviceerrors"
)

type CheckoutController struct {
	checkoutService *service.CheckoutService
}

func NewCheckoutController(checkoutService *service.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// Quote godoc
// @Summary     Order summary
// @Description Prices the session's cart with the member discount and an optional promo code
// @Tags        checkout
// @Produce     json
// @Param       id    path     string true  "Session ID"
// @Param       promo query    string false "Promo code"
// @Success     200   {object} QuoteResponse
// @Failure     400   {object} handlers.ErrorResponse
// @Failure     404   {object} handlers.ErrorResponse
// @Failure     422   {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id}/checkout [get]
func (cc *CheckoutController) Quote(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	quote, err := cc.checkoutService.Quote(c.Request.Context(), id, c.Query("promo"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewQuoteResponse(*quote))
}

// Pay godoc
// @Summary     Pay for the cart
// @Description Simulates a payment for the session's cart and records a receipt. Supports idempotent retries
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Param       id              path     string         true  "Session ID"
// @Param       Idempotency-Key header   string         false "Idempotency key"
// @Param       request         body     dto.PayRequest true  "Payment form"
// @Success     201             {object} PayResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id}/checkout [post]
func (cc *CheckoutController) Pay(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var request dto.PayRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	request.SessionID = string(id)

	result, err := cc.checkoutService.Pay(c.Request.Context(), c.GetHeader("Idempotency-Key"), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, PayResponse{
		Receipt:   NewReceiptResponse(result.Receipt),
		NextRoute: string(result.NextRoute),
	})
}

// Cancel godoc
// @Summary     Leave checkout
// @Description Abandons the payment screen. The cart is kept as is
// @Tags        checkout
// @Produce     json
// @Param       id  path     string true "Session ID"
// @Success     200 {object} NavigationResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id}/checkout/cancel [post]
func (cc *CheckoutController) Cancel(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	route, err := cc.checkoutService.Cancel(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NavigationResponse{NextRoute: string(route)})
}

// ListReceipts godoc
// @Summary     List session receipts
// @Description Returns the most recent receipts recorded for a session, newest first
// @Tags        receipts
// @Produce     json
// @Param       id  path     string true "Session ID"
// @Success     200 {array}  ReceiptResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id}/receipts [get]
func (cc *CheckoutController) ListReceipts(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	receipts, err := cc.checkoutService.ListReceipts(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	response := make([]ReceiptResponse, len(receipts))
	for i, r := range receipts {
		response[i] = NewReceiptResponse(r)
	}
	c.JSON(http.StatusOK, response)
}

// GetReceipt godoc
// @Summary     Get receipt by ID
// @Description Returns a single payment receipt
// @Tags        receipts
// @Produce     json
// @Param       id  path     string true "Receipt ID"
// @Success     200 {object} ReceiptResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/receipts/{id} [get]
func (cc *CheckoutController) GetReceipt(c *gin.Context) {
	receipt, err := cc.checkoutService.GetReceipt(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewReceiptResponse(receipt))
}
