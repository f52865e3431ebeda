package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rafaelleal24/glowin/internal/adapters/http/handlers"
	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/dto"
	"github.com/rafaelleal24/glowin/internal/core/service"
	"github.com/rafaelleal24/glowin/internal/core/serviceerrors"
)

type SessionController struct {
	sessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// sessionIDParam reads the :id path parameter, answering 400 when it is not a session id.
func sessionIDParam(c *gin.Context) (domain.ID, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid session ID"))
		return "", false
	}
	return domain.ID(id), true
}

// Create godoc
// @Summary     Start a shopping session
// @Description Creates an anonymous session with an empty cart and wishlist
// @Tags        sessions
// @Produce     json
// @Success     201 {object} SessionResponse
// @Failure     429 {object} handlers.ErrorResponse
// @Router      /api/v1/sessions [post]
func (sc *SessionController) Create(c *gin.Context) {
	id, snap := sc.sessionService.Create(c.Request.Context())
	c.JSON(http.StatusCreated, NewSessionResponse(id, snap))
}

// Get godoc
// @Summary     Get session state
// @Description Returns the cart, wishlist and totals of a session
// @Tags        sessions
// @Produce     json
// @Param       id  path     string true "Session ID"
// @Success     200 {object} SessionResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id} [get]
func (sc *SessionController) Get(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	snap, err := sc.sessionService.Snapshot(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSessionResponse(id, snap))
}

// Search godoc
// @Summary     Search the catalog within a session
// @Description Filters the catalog by product name for the session's home screen
// @Tags        sessions
// @Produce     json
// @Param       id  path     string true  "Session ID"
// @Param       q   query    string false "Name filter"
// @Success     200 {array}  ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id}/catalog [get]
func (sc *SessionController) Search(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	products, err := sc.sessionService.Search(c.Request.Context(), id, c.Query("q"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponses(products))
}

// ToggleWishlist godoc
// @Summary     Toggle a wishlist entry
// @Description Likes the product when absent from the wishlist, unlikes it otherwise
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       id      path     string             true "Session ID"
// @Param       request body     dto.ProductRequest true "Product"
// @Success     200     {object} WishlistToggleResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id}/wishlist/toggle [post]
func (sc *SessionController) ToggleWishlist(c *gin.Context) {
	id, request, ok := bindProductRequest(c)
	if !ok {
		return
	}
	snap, liked, err := sc.sessionService.ToggleWishlist(c.Request.Context(), id, request.Product)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, WishlistToggleResponse{SessionResponse: NewSessionResponse(id, snap), Liked: liked})
}

// AddToCart godoc
// @Summary     Add a product to the cart
// @Description Adds one unit, creating the cart line when needed
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       id      path     string             true "Session ID"
// @Param       request body     dto.ProductRequest true "Product"
// @Success     200     {object} SessionResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id}/cart/items [post]
func (sc *SessionController) AddToCart(c *gin.Context) {
	sc.cartMutation(c, sc.sessionService.AddToCart)
}

// IncreaseQuantity godoc
// @Summary     Increase a cart line
// @Description Adds one unit to an existing line. Products not in the cart are left alone
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       id      path     string             true "Session ID"
// @Param       request body     dto.ProductRequest true "Product"
// @Success     200     {object} SessionResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id}/cart/items/increase [post]
func (sc *SessionController) IncreaseQuantity(c *gin.Context) {
	sc.cartMutation(c, sc.sessionService.IncreaseQuantity)
}

// DecreaseQuantity godoc
// @Summary     Decrease a cart line
// @Description Removes one unit; the line is dropped when its quantity reaches zero
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       id      path     string             true "Session ID"
// @Param       request body     dto.ProductRequest true "Product"
// @Success     200     {object} SessionResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/sessions/{id}/cart/items/decrease [post]
func (sc *SessionController) DecreaseQuantity(c *gin.Context) {
	sc.cartMutation(c, sc.sessionService.DecreaseQuantity)
}

type cartMutationFunc func(ctx context.Context, id domain.ID, product string) (service.Snapshot, error)

func (sc *SessionController) cartMutation(c *gin.Context, mutate cartMutationFunc) {
	id, request, ok := bindProductRequest(c)
	if !ok {
		return
	}
	snap, err := mutate(c.Request.Context(), id, request.Product)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSessionResponse(id, snap))
}

func bindProductRequest(c *gin.Context) (domain.ID, dto.ProductRequest, bool) {
	var request dto.ProductRequest
	id, ok := sessionIDParam(c)
	if !ok {
		return "", request, false
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return "", request, false
	}
	return id, request, true
}
