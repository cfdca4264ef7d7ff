package api

import (
	"errors"
	"net/http"

	reqdto "levelup-store/internal/handler/dto/request"
	resdto "levelup-store/internal/handler/dto/response"
	"levelup-store/internal/handler/httperr"
	"levelup-store/internal/handler/middleware"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
}

func NewCartHandler(cmds commands.CartCommands) *CartHandler {
	return &CartHandler{cmds: cmds}
}

// @Summary Get cart
// @Description Return the authenticated user's cart with the priced quote
// @Tags carrito
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /carrito [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	view, err := h.cmds.Get(c.Request.Context(), userID, middleware.GetDescuentoDuoc(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add one unit of a product; quantities already at stock stay unchanged
// @Tags carrito
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Add item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carrito/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.AddItem(c.Request.Context(), userID, req.ProductoID); err != nil {
		if isNotFound(err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add item", nil)
		return
	}

	h.respondWithCart(c, userID)
}

// @Summary Remove cart item
// @Description Drop a product line entirely; removing an absent line is a no-op
// @Tags carrito
// @Produce json
// @Security BearerAuth
// @Param productoId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /carrito/items/{productoId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	productID, err := uuid.Parse(c.Param("productoId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid productoId", nil)
		return
	}

	if err := h.cmds.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove item", nil)
		return
	}

	h.respondWithCart(c, userID)
}

// @Summary Clear cart
// @Tags carrito
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /carrito [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	if err := h.cmds.Clear(c.Request.Context(), userID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear cart", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout cart
// @Description Turn the cart into a boleta; the cart survives any failure
// @Tags carrito
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replay-safe retry key (UUID)"
// @Param request body reqdto.CartCheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /carrito/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	idemKey, err := parseIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key", nil)
		return
	}

	result, err := h.cmds.Checkout(c.Request.Context(), userID, middleware.GetDescuentoDuoc(c), req.MetodoPago, idemKey)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
		case errors.Is(err, errs.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", nil)
		case errors.Is(err, errs.ErrIdempotencyInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Checkout already in progress", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Checkout failed", nil)
		}
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCheckoutResult(result))
}

func (h *CartHandler) respondWithCart(c *gin.Context, userID uuid.UUID) {
	view, err := h.cmds.Get(c.Request.Context(), userID, middleware.GetDescuentoDuoc(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func parseIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
